package gen

import (
	"context"

	"github.com/brandforge/adcanvas/pkg/canvas"
)

// StaticService is an offline Service that returns a canned suggestion:
// a single headline sized for the prompt. Used by tests and by the CLI
// when no generation endpoint is configured.
type StaticService struct{}

// Generate returns one headline text object echoing the prompt, tagged
// with the request's revision so the session's staleness guard works the
// same way it does against the real service.
func (StaticService) Generate(ctx context.Context, req Request) (*Response, error) {
	headline := &canvas.CanvasObject{
		ID:       canvas.NewObjectID(),
		Kind:     canvas.KindText,
		Text:     req.Prompt,
		FontSize: 48,
		Fill:     "#111111",
		Left:     120,
		Top:      400,
		Width:    840,
		Height:   120,
	}
	headline.ApplyDefaults()

	return &Response{
		DocumentID: req.DocumentID,
		Revision:   req.Revision,
		Objects:    []*canvas.CanvasObject{headline},
		Notes:      "offline suggestion",
	}, nil
}

// Ensure StaticService implements Service.
var _ Service = StaticService{}
