package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/textdiff/textdiff/internal/casefile"
	"github.com/textdiff/textdiff/internal/diff"
	"github.com/textdiff/textdiff/internal/input"
	"github.com/textdiff/textdiff/internal/log"
	"go.uber.org/zap"
)

var errBatchFailed = errors.New("batch cases failed")

var (
	batchTag  string
	batchJSON bool
)

func init() {
	cmd := newBatchCmd()
	cmd.Flags().StringVar(&batchTag, "tag", "", "Run only cases with this tag")
	cmd.Flags().BoolVar(&batchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(cmd)
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file|dir>",
		Short: "Run comparison cases from JSON or YAML files",
		Long: `The batch command compares the left and right text of every case in a
case file, or in every case file of a directory. Each result is replayed
against its inputs and checked against the case's expectations.

Exits with status 1 when any case fails.

Example:
  textdiff batch cases/
  textdiff batch cases/regressions.yaml --tag modify`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.OutOrStdout(), args[0], batchTag, batchJSON, cfg.Limits.MaxLines)
		},
	}
}

type caseResult struct {
	Name     string      `json:"name"`
	Passed   bool        `json:"passed"`
	Result   diff.Result `json:"result"`
	Problems []string    `json:"problems,omitempty"`
}

func runBatch(w io.Writer, path, tag string, jsonOut bool, maxLines int) error {
	cases, err := casefile.Load(path)
	if err != nil {
		return err
	}
	if tag != "" {
		cases = casefile.FilterByTag(cases, tag)
	}
	if len(cases) == 0 {
		return fmt.Errorf("no cases found in %s", path)
	}

	results := make([]caseResult, 0, len(cases))
	failed := 0
	for _, c := range cases {
		r := runCase(c, maxLines)
		if !r.Passed {
			failed++
			log.Warn("case failed", zap.String("case", c.Name), zap.Strings("problems", r.Problems))
		}
		results = append(results, r)
	}

	if jsonOut {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
	} else {
		for _, r := range results {
			if r.Passed {
				fmt.Fprintf(w, "PASS  %s (%d changes)\n", r.Name, len(r.Result.Records))
			} else {
				fmt.Fprintf(w, "FAIL  %s: %s\n", r.Name, strings.Join(r.Problems, "; "))
			}
		}
		fmt.Fprintf(w, "\n%d passed, %d failed\n", len(results)-failed, failed)
	}

	if failed > 0 {
		return errBatchFailed
	}
	return nil
}

// runCase compares one case and collects every broken expectation.
func runCase(c casefile.Case, maxLines int) caseResult {
	left, _ := input.Cap(c.Left, maxLines)
	right, _ := input.Cap(c.Right, maxLines)
	a, b := diff.SplitLines(left), diff.SplitLines(right)
	res := diff.Compare(a, b)

	r := caseResult{Name: c.Name, Result: res}
	if err := diff.Verify(res.Records, a, b); err != nil {
		r.Problems = append(r.Problems, err.Error())
	}
	if res.Identical != (len(res.Records) == 0) {
		r.Problems = append(r.Problems, "verdict disagrees with records")
	}
	if c.Identical != nil && *c.Identical != res.Identical {
		r.Problems = append(r.Problems, fmt.Sprintf("expected identical=%t, got %t", *c.Identical, res.Identical))
	}
	if c.Changes != nil && *c.Changes != len(res.Records) {
		r.Problems = append(r.Problems, fmt.Sprintf("expected %d changes, got %d", *c.Changes, len(res.Records)))
	}
	r.Passed = len(r.Problems) == 0
	return r
}
