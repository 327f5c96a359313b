package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nilhecke/internal/buildinfo"
	"github.com/katalvlaran/nilhecke/odd"
	"github.com/katalvlaran/nilhecke/operator"
	"github.com/katalvlaran/nilhecke/schubert"
)

// shell bundles the interactive loop's reader so prompts and input
// share one scanner across dispatched functions.
type shell struct {
	in *bufio.Scanner
}

func runShell(cmd *cobra.Command, args []string) error {
	fmt.Printf("This is nilhecke %s.\n", buildinfo.Get().String())

	s := &shell{in: bufio.NewScanner(os.Stdin)}
	for {
		fmt.Println()
		line, err := s.prompt("function:")
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch line {
		case "print":
			s.report(s.print())
		case "add":
			s.report(s.add())
		case "mul":
			s.report(s.mul())
		case "p":
			s.report(s.applyWord())
		case "schud":
			s.report(s.closure())
		case "", "quit", "bye":
			fmt.Println("Bye!")

			return nil
		default:
			fmt.Println("unknown function")
		}
	}
	fmt.Println("Bye!")

	return nil
}

// report prints a dispatched function's failure and keeps the loop
// alive; parse and strand errors are user input, not shell faults.
func (s *shell) report(err error) {
	if err != nil && err != io.EOF {
		printError("command failed", err)
	}
}

// prompt prints the prompt, then reads and trims one input line.
func (s *shell) prompt(p string) (string, error) {
	fmt.Printf("%s ", p)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// promptPolynomial reads one line and parses it as a polynomial.
func (s *shell) promptPolynomial(p string) (odd.Polynomial, error) {
	line, err := s.prompt(p)
	if err != nil {
		return odd.Polynomial{}, err
	}

	return odd.Parse(line)
}

func (s *shell) print() error {
	p, err := s.promptPolynomial("polynomial:")
	if err != nil {
		return err
	}
	fmt.Println(p)

	return nil
}

func (s *shell) add() error {
	p1, err := s.promptPolynomial("p1:")
	if err != nil {
		return err
	}
	p2, err := s.promptPolynomial("p2:")
	if err != nil {
		return err
	}
	fmt.Printf("%s + %s = %s\n", p1, p2, p1.Add(p2))

	return nil
}

func (s *shell) mul() error {
	p1, err := s.promptPolynomial("p1:")
	if err != nil {
		return err
	}
	p2, err := s.promptPolynomial("p2:")
	if err != nil {
		return err
	}
	fmt.Printf("%s * %s = %s\n", p1, p2, p1.Mul(p2))

	return nil
}

// applyWord reads an operator word such as "s1 b1 d2" and a polynomial,
// then applies the operators right to left (the word reads like
// function composition).
func (s *shell) applyWord() error {
	word, err := s.prompt("operators:")
	if err != nil {
		return err
	}
	poly, err := s.promptPolynomial("poly:")
	if err != nil {
		return err
	}

	ops := strings.Fields(word)
	for i := len(ops) - 1; i >= 0; i-- {
		if poly, err = applyOperator(poly, ops[i]); err != nil {
			return err
		}
	}
	fmt.Printf("result: %s\n", poly)

	return nil
}

// applyOperator interprets a single operator token: a family letter
// (s, b or d) followed by the strand index.
func applyOperator(p odd.Polynomial, op string) (odd.Polynomial, error) {
	if len(op) < 2 {
		return odd.Polynomial{}, fmt.Errorf("malformed operator %q", op)
	}
	n, err := strconv.Atoi(op[1:])
	if err != nil {
		return odd.Polynomial{}, fmt.Errorf("invalid strand in operator %q: %w", op, err)
	}

	switch op[0] {
	case 's':
		return operator.Simple(p, n)
	case 'b':
		return operator.Boundary(p, n)
	case 'd':
		return operator.Difference(p, n)
	default:
		return odd.Polynomial{}, fmt.Errorf("unknown operator symbol %q", op[0])
	}
}

func (s *shell) closure() error {
	line, err := s.prompt("n:")
	if err != nil {
		return err
	}
	rank, err := strconv.Atoi(line)
	if err != nil {
		return fmt.Errorf("invalid rank %q: %w", line, err)
	}

	set, _, err := schubert.Generate(rank)
	if err != nil {
		return err
	}

	fmt.Println("schubert polynomials:")
	for _, p := range set.Polynomials() {
		fmt.Println(p)
	}

	return nil
}
