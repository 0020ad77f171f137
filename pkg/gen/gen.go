// Package gen talks to the creative generation service.
//
// Generation is asynchronous from the editor's point of view: a request is
// sent with the document revision it was based on, and the response carries
// that revision back. The editing session only applies a response whose
// revision still matches the live document; anything else is stale and
// silently discarded (see session.ApplyGeneration).
package gen

import (
	"context"

	"github.com/brandforge/adcanvas/pkg/canvas"
)

// Request asks the service for creative suggestions for one document.
type Request struct {
	DocumentID string `json:"document_id"`
	Prompt     string `json:"prompt"`
	FormatID   string `json:"format_id,omitempty"`

	// Revision is the document revision the prompt was written against.
	// It is echoed back in the response for staleness detection.
	Revision uint64 `json:"revision"`
}

// Response is the service's suggestion set.
type Response struct {
	DocumentID string                 `json:"document_id"`
	Revision   uint64                 `json:"revision"`
	Objects    []*canvas.CanvasObject `json:"objects"`
	Notes      string                 `json:"notes,omitempty"`
}

// Service produces creative suggestions. Implementations must be safe for
// concurrent use.
type Service interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}
