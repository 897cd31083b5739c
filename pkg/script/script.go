// Package script implements the newline-delimited constraint script
// format `cmd/linspire` reads via its `--from` flag (SPEC_FULL.md §2).
// It is a small, line-oriented front end over pkg/simplex, not a general
// expression language: each line names one solver operation.
//
// Grammar, one statement per line, blank lines and lines starting with
// '#' ignored:
//
//	var <name>
//	eq <reason> <expr> <rhs>    asserts <expr> = <rhs>
//	le <reason> <expr> <rhs>    asserts <expr> <= <rhs>
//	lt <reason> <expr> <rhs>    asserts <expr> < <rhs>
//	ge <reason> <expr> <rhs>    asserts <expr> >= <rhs>
//	gt <reason> <expr> <rhs>    asserts <expr> > <rhs>
//	check
//	retract <reason>
//
// <reason> is either "-" (an anonymous, unretractable assertion) or an
// identifier naming a constraint handle, created on first use. <expr> is
// a sum of terms with no internal whitespace, e.g. "2*x+3*y-5" or "-x+7".
package script

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ratioSolver/LinSpire/pkg/lin"
	"github.com/ratioSolver/LinSpire/pkg/rational"
	"github.com/ratioSolver/LinSpire/pkg/simplex"
)

// Result records the outcome of one executed line, for the CLI to
// report back to the user.
type Result struct {
	Line int
	Text string
	Ok   bool
	Note string
}

// Runner executes a constraint script against a fresh solver, tracking
// the variables and named constraint handles the script introduces.
type Runner struct {
	Solver *simplex.Solver

	vars   map[string]simplex.Var
	named  map[string]*simplex.Constraint
	lastCk bool
}

// NewRunner returns a Runner over a fresh Solver.
func NewRunner() *Runner {
	return &Runner{
		Solver: simplex.NewSolver(),
		vars:   make(map[string]simplex.Var),
		named:  make(map[string]*simplex.Constraint),
	}
}

var termPattern = regexp.MustCompile(`([+-]?[^+-]+)`)

// Run executes every line of src in order, stopping at the first line
// that fails to parse (a malformed script is a programmer error, not a
// solver outcome, and is reported as an error rather than a Result).
func (r *Runner) Run(src io.Reader) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := r.runLine(line)
		if err != nil {
			return results, fmt.Errorf("script.go:%d: %w", lineNo, err)
		}
		res.Line = lineNo
		res.Text = line
		results = append(results, res)
	}
	if err := scanner.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) runLine(line string) (Result, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "var":
		if len(fields) != 2 {
			return Result{}, fmt.Errorf("var expects exactly one name")
		}
		r.vars[fields[1]] = r.Solver.NewVar()
		return Result{Ok: true}, nil
	case "check":
		r.lastCk = r.Solver.Check()
		note := "feasible"
		if !r.lastCk {
			note = fmt.Sprintf("infeasible, conflict size %d", len(r.Solver.GetConflict()))
		}
		return Result{Ok: r.lastCk, Note: note}, nil
	case "retract":
		if len(fields) != 2 {
			return Result{}, fmt.Errorf("retract expects exactly one reason")
		}
		c, ok := r.named[fields[1]]
		if !ok {
			return Result{}, fmt.Errorf("unknown reason %q", fields[1])
		}
		r.Solver.Retract(c)
		return Result{Ok: true}, nil
	case "eq", "le", "lt", "ge", "gt":
		return r.runAssertion(fields)
	default:
		return Result{}, fmt.Errorf("unknown statement %q", fields[0])
	}
}

func (r *Runner) runAssertion(fields []string) (Result, error) {
	if len(fields) != 4 {
		return Result{}, fmt.Errorf("%s expects <reason> <expr> <rhs>", fields[0])
	}
	reason, err := r.reason(fields[1])
	if err != nil {
		return Result{}, err
	}
	e, err := r.parseExpr(fields[2])
	if err != nil {
		return Result{}, err
	}
	rhs, err := parseRational(fields[3])
	if err != nil {
		return Result{}, err
	}

	var ok bool
	switch fields[0] {
	case "eq":
		ok = r.Solver.NewEq(e, rhs, reason)
	case "le":
		ok = r.Solver.NewLt(e, rhs, false, reason)
	case "lt":
		ok = r.Solver.NewLt(e, rhs, true, reason)
	case "ge":
		ok = r.Solver.NewGt(e, rhs, false, reason)
	case "gt":
		ok = r.Solver.NewGt(e, rhs, true, reason)
	}
	return Result{Ok: ok}, nil
}

// NamedReasons returns the reverse of the script's reason registry, so a
// caller holding a *simplex.Constraint (e.g. from Solver.GetConflict)
// can report it back under the name the script gave it.
func (r *Runner) NamedReasons() map[*simplex.Constraint]string {
	out := make(map[*simplex.Constraint]string, len(r.named))
	for name, c := range r.named {
		out[c] = name
	}
	return out
}

func (r *Runner) reason(name string) (*simplex.Constraint, error) {
	if name == "-" {
		return nil, nil
	}
	if c, ok := r.named[name]; ok {
		return c, nil
	}
	c := simplex.NewConstraint()
	r.named[name] = c
	return c, nil
}

// parseExpr parses a coefficient-sum like "2*x+3*y-5" into an Expr,
// resolving each bare identifier against the script's declared
// variables.
func (r *Runner) parseExpr(s string) (lin.Expr, error) {
	coeffs := make(map[simplex.Var]rational.Rational)
	known := rational.Zero()
	for _, term := range termPattern.FindAllString(s, -1) {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		coefStr, name, hasVar := strings.Cut(term, "*")
		if !hasVar {
			// either a bare number or a signed bare variable like "-x", "+x" or "x"
			sign, bareName := rational.NewInt(1), coefStr
			switch {
			case strings.HasPrefix(coefStr, "-"):
				sign, bareName = rational.NewInt(-1), coefStr[1:]
			case strings.HasPrefix(coefStr, "+"):
				bareName = coefStr[1:]
			}
			if v, ok := r.vars[bareName]; ok {
				coeffs[v] = coeffs[v].Add(sign)
				continue
			}
			k, err := parseRational(coefStr)
			if err != nil {
				return lin.Expr{}, fmt.Errorf("bad term %q: %w", term, err)
			}
			known = known.Add(k)
			continue
		}
		v, ok := r.vars[name]
		if !ok {
			return lin.Expr{}, fmt.Errorf("unknown variable %q", name)
		}
		c, err := parseRational(coefStr)
		if err != nil {
			return lin.Expr{}, fmt.Errorf("bad coefficient %q: %w", coefStr, err)
		}
		coeffs[v] = coeffs[v].Add(c)
	}
	return lin.NewExpr(coeffs, known), nil
}

// parseRational parses a decimal integer (the script format has no
// fraction literal syntax; use repeated terms for rationals the CLI
// itself cannot express).
func parseRational(s string) (rational.Rational, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return rational.Rational{}, err
	}
	return rational.NewInt(n), nil
}
