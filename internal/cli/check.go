package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/io"
	"github.com/brandforge/adcanvas/pkg/pipeline"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	formatID    string // format whose rules to check against; empty uses the document's own dimensions
	minScore    int    // fail the command when the score drops below this
	refresh     bool   // bypass the report cache
	noCache     bool   // disable caching entirely
	jsonOutput  bool   // print the raw report as JSON
	interactive bool   // browse the report in a TUI
}

// checkCommand creates the check command for running the compliance battery.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Run the compliance battery against a document",
		Long: `Check runs the full compliance battery (prohibited copy, safe zones,
logo placement, color contrast, text limits) against a canvas document and
prints the per-check outcomes and the aggregate 0-100 score.

Without --format the document is checked against its own dimensions; with
--format the named catalog format's safe zones and logo rules apply.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formatID, "format", "f", "", "catalog format to check against")
	cmd.Flags().IntVar(&opts.minScore, "min-score", 0, "exit with an error when the score is below this")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute the report even if cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the report as JSON")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the report interactively")

	return cmd
}

// runCheck loads the document, runs the pipeline in check-only mode, and
// renders the report.
func (c *CLI) runCheck(ctx context.Context, input string, opts *checkOpts) error {
	doc, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded document", "id", doc.ID, "objects", len(doc.Objects))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, doc, pipeline.Options{
		FormatID: opts.formatID,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %d objects", result.Stats.ObjectCount))

	switch {
	case opts.jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Report); err != nil {
			return err
		}
	case opts.interactive:
		model := NewReportModel(result.Report, displayFormatID(opts.formatID))
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return err
		}
	default:
		printInfo("Compliance report (%s)", displayFormatID(opts.formatID))
		for _, check := range result.Report.Checks {
			printCheck(check)
		}
		printScore(result.Report.Score, result.CacheInfo.ReportHit)
	}

	if failed := failedChecks(result.Report.Checks); failed > 0 && !opts.jsonOutput && !opts.interactive {
		printNewline()
		printNextStep("Fix safe-zone issues automatically", fmt.Sprintf("adcanvas resize %s --to <format>", input))
	}

	if opts.minScore > 0 && result.Report.Score < opts.minScore {
		return fmt.Errorf("compliance score %d is below the required %d", result.Report.Score, opts.minScore)
	}
	return nil
}

// displayFormatID names the format in output, falling back to the synthetic
// document-sized format.
func displayFormatID(formatID string) string {
	if formatID == "" {
		return "document dimensions"
	}
	return formatID
}

// failedChecks counts checks that did not pass.
func failedChecks(checks []canvas.ComplianceCheck) int {
	n := 0
	for _, check := range checks {
		if check.Status != canvas.StatusPass {
			n++
		}
	}
	return n
}
