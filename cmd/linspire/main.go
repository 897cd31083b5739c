// Command linspire runs newline-delimited constraint scripts against
// pkg/simplex, the CLI façade SPEC_FULL.md §2 names as the ambient-stack
// entry point for the solver library.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ratioSolver/LinSpire/pkg/script"
)

var (
	fromFile string
	verbose  bool

	version = "dev"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "linspire",
		Short: "Run constraint scripts against the LinSpire feasibility solver",
	}
	root.PersistentFlags().StringVar(&fromFile, "from", "", "path to a constraint script (default: stdin)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver internals (pivots, bound installs, conflicts) to stderr")

	root.AddCommand(newVersionCmd(), newCheckCmd(), newExplainCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the linspire version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run a constraint script and report each statement's outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runScript(cmd)
			return err
		},
	}
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Run a constraint script and, on infeasibility, name the conflicting reasons",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runScript(cmd)
			return err
		},
	}
}

func runScript(cmd *cobra.Command) (*script.Runner, error) {
	src, closeSrc, err := openSource()
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	r := script.NewRunner()
	if verbose {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		r.Solver.SetLogger(log)
	}

	results, err := r.Run(src)
	if err != nil {
		return r, err
	}

	for _, res := range results {
		status := "ok"
		if !res.Ok {
			status = "rejected"
		}
		fmt.Printf("%d: %s -> %s", res.Line, res.Text, status)
		if res.Note != "" {
			fmt.Printf(" (%s)", res.Note)
		}
		fmt.Println()
	}

	if cmd.Name() == "explain" {
		if conflict := r.Solver.GetConflict(); len(conflict) > 0 {
			names := r.NamedReasons()
			fmt.Println("conflict:")
			for _, c := range conflict {
				name, ok := names[c]
				if !ok {
					name = "<anonymous>"
				}
				fmt.Printf("  - %s\n", name)
			}
		}
	}

	return r, nil
}

func openSource() (io.Reader, func(), error) {
	if fromFile == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(fromFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
