package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/textdiff/textdiff/internal/diff"
	"github.com/textdiff/textdiff/internal/input"
	"github.com/textdiff/textdiff/internal/log"
	"github.com/textdiff/textdiff/internal/report"
	"go.uber.org/zap"
)

var (
	compareContext int
	compareJSON    bool
	compareNoColor bool
	compareWidth   int
)

func init() {
	cmd := newCompareCmd()
	cmd.Flags().IntVarP(&compareContext, "context", "c", -1, "Unchanged lines around each change (default: diff.context_size; negative prints summaries only)")
	cmd.Flags().BoolVar(&compareJSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&compareNoColor, "no-color", false, "Disable colored output")
	cmd.Flags().IntVar(&compareWidth, "width", 100, "Width of the side-by-side context")
	rootCmd.AddCommand(cmd)
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Compare two files and print the changes",
		Long: `The compare command prints whether two texts are identical and, if
not, one line per change. Either file may be "-" to read standard input.

Exits with status 1 when the texts differ.

Example:
  textdiff compare old.txt new.txt
  textdiff compare old.txt new.txt --context 0
  textdiff compare old.txt new.txt --context -1
  git show HEAD:README.md | textdiff compare - README.md --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := compareOptions{
				context:  contextSize(cmd.Flags().Changed("context"), compareContext, cfg.Diff.ContextSize),
				json:     compareJSON,
				color:    !compareNoColor,
				width:    compareWidth,
				maxLines: cfg.Limits.MaxLines,
				stripCR:  cfg.Input.StripCR,
			}
			return runCompare(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], args[1], opts)
		},
	}
}

type compareOptions struct {
	context  int // negative prints no context
	json     bool
	color    bool
	width    int
	maxLines int
	stripCR  bool
}

// contextSize picks the --context flag when given and the configured size
// otherwise.
func contextSize(flagSet bool, flag, configured int) int {
	if flagSet {
		return flag
	}
	return configured
}

func runCompare(stdout, stderr io.Writer, leftPath, rightPath string, opts compareOptions) error {
	if leftPath == "-" && rightPath == "-" {
		return fmt.Errorf("only one of the texts can be read from stdin")
	}

	texts := make([][]string, 2)
	for i, path := range []string{leftPath, rightPath} {
		text, err := input.ReadFile(path)
		if err != nil {
			return err
		}
		if opts.stripCR {
			text = input.StripCR(text)
		}
		text, removed := input.Cap(text, opts.maxLines)
		if removed > 0 {
			fmt.Fprintf(stderr, "%s: %s\n", displayPath(path), input.LimitWarning(opts.maxLines, removed))
		}
		texts[i] = diff.SplitLines(text)
	}
	a, b := texts[0], texts[1]

	start := time.Now()
	res := diff.Compare(a, b)
	log.Info("compared files",
		zap.String("left", leftPath),
		zap.String("right", rightPath),
		zap.Int("records", len(res.Records)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if opts.json {
		if err := report.WriteJSON(stdout, res, a, b); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
	} else {
		report.NewPrinter(stdout, opts.color, opts.width).Result(res, a, b, opts.context)
	}

	if !res.Identical {
		return errTextsDiffer
	}
	return nil
}

func displayPath(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
