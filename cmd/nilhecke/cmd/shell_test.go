package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nilhecke/odd"
	"github.com/katalvlaran/nilhecke/operator"
)

// TestApplyOperator_Dispatch maps operator tokens onto the families.
func TestApplyOperator_Dispatch(t *testing.T) {
	p, err := odd.Parse("1 1")
	require.NoError(t, err, "fixture must parse")

	got, err := applyOperator(p, "s1")
	require.NoError(t, err, "s1 must dispatch to the simple family")
	assert.Equal(t, "1", got.Key(), "s1 applied to x_1 yields the constant 1")

	got, err = applyOperator(p, "d2")
	require.NoError(t, err, "d2 must dispatch to the difference family")
	assert.Equal(t, "1", got.Key(), "d2 applied to x_1 yields the constant 1")

	_, err = applyOperator(p, "b1")
	assert.NoError(t, err, "b1 must dispatch to the boundary family")
}

// TestApplyOperator_Rejects covers malformed tokens and strand
// violations.
func TestApplyOperator_Rejects(t *testing.T) {
	p, err := odd.Parse("1 1")
	require.NoError(t, err, "fixture must parse")

	_, err = applyOperator(p, "s")
	assert.Error(t, err, "a bare family letter is malformed")

	_, err = applyOperator(p, "sx")
	assert.Error(t, err, "a non-numeric strand is malformed")

	_, err = applyOperator(p, "q1")
	assert.Error(t, err, "an unknown family letter is rejected")

	_, err = applyOperator(p, "d1")
	assert.ErrorIs(t, err, operator.ErrInvalidStrand, "d1 violates the difference minimum")
}
