package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brandforge/adcanvas/pkg/errors"
	"github.com/brandforge/adcanvas/pkg/gen"
	"github.com/brandforge/adcanvas/pkg/io"
	"github.com/brandforge/adcanvas/pkg/session"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	prompt   string // what to ask the generation service for
	formatID string // format context for the suggestion
	endpoint string // generation service base URL; empty uses the built-in stub
	output   string // output file path; empty overwrites the input
	noCache  bool   // disable the generation cache
}

// generateCommand creates the generate command for requesting layout
// suggestions from a generation service.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Request layout suggestions for a document",
		Long: `Generate asks a generation service for layout suggestions and applies
them to the document as a single undoable step. Identical prompts against
the same document state are served from the cache.

Without --endpoint a built-in stub service is used, which echoes the
prompt as a headline object.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.prompt == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--prompt is required")
			}
			return c.runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "what to ask for (required)")
	cmd.Flags().StringVarP(&opts.formatID, "format", "f", "", "format context for the suggestion")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "generation service base URL")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the generation cache")

	return cmd
}

// runGenerate loads the document into a session, requests a suggestion, and
// writes the updated document.
func (c *CLI) runGenerate(ctx context.Context, input string, opts *generateOpts) error {
	doc, err := io.ImportJSON(input)
	if err != nil {
		return err
	}

	sess, err := session.New(doc, 0)
	if err != nil {
		return err
	}

	service, err := newGenService(opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Generating suggestions...")
	spinner.Start()

	req := sess.GenerationRequest(opts.prompt, opts.formatID)
	resp, err := service.Generate(ctx, req)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Generation failed: %v", err))
		return err
	}
	spinner.Stop()

	applied, err := sess.ApplyGeneration(resp)
	if err != nil {
		return err
	}
	if !applied {
		printWarning("Suggestion was stale and has been discarded")
		return nil
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = input
	}
	if err := io.ExportJSON(sess.Document(), outputPath); err != nil {
		return err
	}

	printSuccess("Applied %d suggested objects", len(resp.Objects))
	if resp.Notes != "" {
		printDetail("%s", resp.Notes)
	}
	printFile(outputPath)
	printNextStep("Check compliance", fmt.Sprintf("adcanvas check %s", outputPath))
	return nil
}

// newGenService builds the generation service: an HTTP client when an
// endpoint is configured, the local stub otherwise.
func newGenService(opts *generateOpts) (gen.Service, error) {
	if opts.endpoint == "" {
		return gen.StaticService{}, nil
	}
	genCache, err := newCache(opts.noCache)
	if err != nil {
		return nil, err
	}
	return gen.NewClient(opts.endpoint, genCache), nil
}
