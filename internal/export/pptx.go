package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pitchdeck-ai/platform/internal/model"
)

// ErrUnavailable is returned when no rendering service is configured for
// the requested format.
var ErrUnavailable = errors.New("export format unavailable")

// PPTXRenderer delegates PowerPoint rendering to an external service.
// The service owns the OOXML assembly; we ship it the deck and stream
// the binary back.
type PPTXRenderer struct {
	client  *resty.Client
	baseURL string
}

// NewPPTXRenderer creates a renderer against the given service URL. An
// empty URL yields a renderer that reports the format unavailable.
// Failed renders are surfaced once; the client never retries.
func NewPPTXRenderer(baseURL string, timeout time.Duration) *PPTXRenderer {
	client := resty.New().
		SetTimeout(timeout)

	return &PPTXRenderer{
		client:  client,
		baseURL: baseURL,
	}
}

// Available reports whether a rendering service is configured.
func (r *PPTXRenderer) Available() bool {
	return r.baseURL != ""
}

// Render posts the deck to the rendering service and returns the PPTX
// bytes.
func (r *PPTXRenderer) Render(ctx context.Context, deckTitle string, slides []model.Slide) ([]byte, error) {
	if !r.Available() {
		return nil, ErrUnavailable
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"deckTitle": deckTitle,
			"slides":    slides,
		}).
		Post(r.baseURL + "/render/pptx")
	if err != nil {
		return nil, fmt.Errorf("export service request failed: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("export service returned status %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
