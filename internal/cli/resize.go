package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brandforge/adcanvas/pkg/errors"
	"github.com/brandforge/adcanvas/pkg/format"
	"github.com/brandforge/adcanvas/pkg/io"
	"github.com/brandforge/adcanvas/pkg/pipeline"
)

// resizeOpts holds the command-line flags for the resize command.
type resizeOpts struct {
	toFormat    string // target format slug
	output      string // output file path; empty derives from input and format
	skipCorrect bool   // skip the safe-zone correction stage
	refresh     bool   // bypass the report cache
	noCache     bool   // disable caching entirely
	interactive bool   // pick the target format from a list
}

// resizeCommand creates the resize command for adapting a document to
// another ad format.
func (c *CLI) resizeCommand() *cobra.Command {
	var opts resizeOpts

	cmd := &cobra.Command{
		Use:   "resize [file]",
		Short: "Adapt a document to another ad format",
		Long: `Resize replans a document's layout for a target format from the catalog:
the background is scaled to cover, the logo is re-anchored to its corner,
text reflows proportionally, and content is nudged out of the platform's
reserved bands. The resized document is checked for compliance and written
as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.toFormat == "" && !opts.interactive {
				return errors.New(errors.ErrCodeInvalidInput, "either --to or --interactive is required")
			}
			return c.runResize(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.toFormat, "to", "t", "", "target format slug (see 'adcanvas formats')")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>_<format>.json)")
	cmd.Flags().BoolVar(&opts.skipCorrect, "skip-correct", false, "skip safe-zone correction")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute the compliance report even if cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the target format from a list")

	return cmd
}

// runResize loads the document, resolves the target format, runs the full
// pipeline, and writes the resized document.
func (c *CLI) runResize(ctx context.Context, input string, opts *resizeOpts) error {
	doc, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded document", "id", doc.ID, "objects", len(doc.Objects))

	catalog := format.Default()
	if opts.interactive {
		selected, err := pickFormat(catalog)
		if err != nil {
			return err
		}
		if selected == "" {
			printInfo("No format selected")
			return nil
		}
		opts.toFormat = selected
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Resizing to %s...", opts.toFormat))
	spinner.Start()

	result, err := runner.Execute(ctx, doc, pipeline.Options{
		ToFormat:    opts.toFormat,
		SkipCorrect: opts.skipCorrect,
		Refresh:     opts.refresh,
		Catalog:     catalog,
		Logger:      c.Logger,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Resize failed: %v", err))
		return err
	}
	spinner.Stop()

	outputPath := opts.output
	if outputPath == "" {
		outputPath = resizeOutputPath(input, opts.toFormat)
	}
	if err := io.ExportJSON(result.Document, outputPath); err != nil {
		return err
	}

	printSuccess("Resized to %s (%.0f×%.0f)", opts.toFormat, result.Document.Width, result.Document.Height)
	printResizeStats(len(result.Transforms), len(result.Corrections))
	for _, check := range result.Report.Checks {
		printCheck(check)
	}
	printScore(result.Report.Score, result.CacheInfo.ReportHit)
	printFile(outputPath)
	return nil
}

// pickFormat runs the interactive format picker and returns the selected
// slug, or "" when the user quit without selecting.
func pickFormat(catalog *format.Catalog) (string, error) {
	model := NewFormatListModel(catalog.List())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(FormatListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.ID, nil
}

// resizeOutputPath derives the output path from the input file and target
// format: creative.json resized to instagram-story becomes
// creative_instagram-story.json.
func resizeOutputPath(input, formatID string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".json"
	}
	return fmt.Sprintf("%s_%s%s", base, formatID, ext)
}
