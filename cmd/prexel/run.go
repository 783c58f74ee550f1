package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// lineResult is one line's outcome, kept in file order regardless of
// which goroutine finished it first.
type lineResult struct {
	line   int
	source string
	output string
	err    error
}

func newRunCommand() *cobra.Command {
	var kind string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate every line of a file against a shared Context",
		Long: `Evaluates each non-blank line of a file as either an expression or a
"name = expression" assignment, against one shared Context. Lines are
fanned out across a worker pool; plain expressions run concurrently
against each other, while assignments are serialized against every
other line since a Context's maps are not safe for concurrent writes.

Mirrors the original tool's "eval --run | --r" interactive command,
adapted into a batch file runner.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, args[0], kind, concurrency)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", defaultKind, "numeric kind: decimal, float, fixed, complex, binary")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of lines evaluated concurrently")
	return cmd
}

func runFile(cmd *cobra.Command, path, kind string, concurrency int) error {
	ev, err := resolveKind(kind)
	if err != nil {
		return err
	}

	lines, err := readNonBlankLines(path)
	if err != nil {
		return err
	}

	batchID := uuid.New()
	results := make([]lineResult, len(lines))

	// Only SetVariable mutates the shared Context; Eval only reads it.
	// An RWMutex lets concurrent expression-only lines run in parallel,
	// serializing just the assignment lines against everything else.
	var mu sync.RWMutex
	group := new(errgroup.Group)
	group.SetLimit(concurrency)

	for i, line := range lines {
		i, line := i, line
		group.Go(func() error {
			var output string
			var err error
			if name, expr, ok := splitAssignment(line); ok {
				mu.Lock()
				output, err = ev.SetVariable(name, expr)
				mu.Unlock()
			} else {
				mu.RLock()
				output, err = ev.Eval(line)
				mu.RUnlock()
			}

			results[i] = lineResult{line: i + 1, source: line, output: output, err: err}
			return nil
		})
	}

	// The work functions never return an error themselves (errors are
	// captured per line), so Wait only reports setup failures.
	if err := group.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "batch: %s\n", batchID)

	failures := 0
	for _, r := range results {
		if r.err != nil {
			failures++
			fmt.Fprintf(out, "%d: %s -> error: %v\n", r.line, r.source, r.err)
			continue
		}
		fmt.Fprintf(out, "%d: %s = %s\n", r.line, r.source, r.output)
	}

	fmt.Fprintf(out, "summary: %d lines, %d failed\n", len(lines), failures)
	return nil
}

// evalLine handles both a plain expression and a "name = expression"
// variable assignment, writing the assigned value back into the shared
// Context so later lines can reference it.
func evalLine(ev kindEvaluator, line string) (string, error) {
	if name, expr, ok := splitAssignment(line); ok {
		return ev.SetVariable(name, expr)
	}

	return ev.Eval(line)
}

func splitAssignment(line string) (name, expr string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}

	lhs := strings.TrimSpace(line[:idx])
	rhs := strings.TrimSpace(line[idx+1:])
	if lhs == "" || rhs == "" || strings.ContainsAny(lhs, "()") {
		return "", "", false
	}
	return lhs, rhs, true
}

func readNonBlankLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}
	return lines, nil
}
