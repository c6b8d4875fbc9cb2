// Command malisp is the host program around the interpreter core: a cobra
// CLI exposing a REPL, one-shot expression evaluation, and batch-file
// execution. None of this is part of the spec's "core" — per spec.md §1 the
// interactive prompt loop and its history are external collaborators,
// referenced only by interface. This file is that external caller.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/malisp/internal/config"
	"github.com/aledsdavies/malisp/internal/interpreter"
	"github.com/aledsdavies/malisp/internal/replstyle"
	"github.com/aledsdavies/malisp/pkgs/complete"
)

var (
	configFile string
	debug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "malisp",
	Short: "A tree-walking interpreter for a small Lisp dialect",
	Long: `malisp reads, evaluates, and prints forms in a small Lisp dialect.
With no subcommand it starts an interactive REPL; see "malisp eval" and
"malisp run" for non-interactive use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a single expression and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		interp, err := interpreter.New(cfg.MaxCallDepth)
		if err != nil {
			return fmt.Errorf("initializing interpreter: %w", err)
		}
		out, err := interp.Rep(args[0])
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Evaluate every top-level form in a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete [prefix]",
	Short: "List root-environment symbol names, fuzzy-ranked against prefix",
	Long: `complete lists the names bound in the root environment (core
primitives plus the bootstrap form), ranked by fuzzy match against prefix.
With no prefix it lists every name alphabetically. This is the data source
an external line editor's tab-completion would call into; it is not itself
a line editor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		interp, err := interpreter.New(cfg.MaxCallDepth)
		if err != nil {
			return fmt.Errorf("initializing interpreter: %w", err)
		}
		var prefix string
		if len(args) == 1 {
			prefix = args[0]
		}
		for _, name := range complete.Complete(interp.Root(), prefix) {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "malisp.yaml", "Path to an optional malisp.yaml config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print diagnostic information to stderr")
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(completeCmd)
}

func runRepl() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if debug {
		fmt.Fprintf(os.Stderr, "loaded config from %s (or defaults)\n", configFile)
	}

	interp, err := interpreter.New(cfg.MaxCallDepth)
	if err != nil {
		return fmt.Errorf("initializing interpreter: %w", err)
	}

	style := replstyle.New(cfg.ColorEnabled())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print(style.Prompt(cfg.Prompt))
	for scanner.Scan() {
		line := scanner.Text()
		out, err := interp.Rep(line)
		switch {
		case err == nil:
			fmt.Println(style.Value(out))
		case interpreter.IsEmptyLine(err):
			// spec.md §6: print nothing, reprompt.
		default:
			fmt.Println(style.Error("error: " + err.Error()))
		}
		fmt.Print(style.Prompt(cfg.Prompt))
	}
	fmt.Println()
	return scanner.Err()
}

func runFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	interp, err := interpreter.New(cfg.MaxCallDepth)
	if err != nil {
		return fmt.Errorf("initializing interpreter: %w", err)
	}

	out, err := interp.RepAll(string(content))
	if err != nil {
		if interpreter.IsEmptyLine(err) {
			return nil
		}
		return fmt.Errorf("evaluating %s: %w", path, err)
	}
	fmt.Println(out)
	return nil
}
