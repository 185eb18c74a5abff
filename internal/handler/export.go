package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/export"
	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/pkg/logger"
	"github.com/pitchdeck-ai/platform/pkg/metrics"
)

// ExportHandler handles document export endpoints.
type ExportHandler struct {
	pptx   *export.PPTXRenderer
	logger *logger.Logger
}

// NewExportHandler creates a new export handler.
func NewExportHandler(pptx *export.PPTXRenderer, log *logger.Logger) *ExportHandler {
	return &ExportHandler{
		pptx:   pptx,
		logger: log,
	}
}

// Export handles POST /api/v1/export
// The response body is the rendered document with attachment headers.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Slides) == 0 {
		writeError(w, http.StatusBadRequest, "slides are required")
		return
	}

	switch req.Format {
	case "pdf":
		data, err := export.PDF(req.DeckTitle, req.DeckDescription, req.Slides)
		if err != nil {
			metrics.ExportsTotal.WithLabelValues("pdf", "error").Inc()
			h.logger.Error("PDF export failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to export presentation")
			return
		}

		metrics.ExportsTotal.WithLabelValues("pdf", "success").Inc()
		writeAttachment(w, "application/pdf", export.Filename(req.DeckTitle, "pdf"), data)

	case "pptx":
		data, err := h.pptx.Render(ctx, req.DeckTitle, req.Slides)
		if err != nil {
			if errors.Is(err, export.ErrUnavailable) {
				metrics.ExportsTotal.WithLabelValues("pptx", "unavailable").Inc()
				writeError(w, http.StatusNotImplemented, "PPTX export is not configured")
				return
			}
			metrics.ExportsTotal.WithLabelValues("pptx", "error").Inc()
			h.logger.Error("PPTX export failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to export presentation")
			return
		}

		metrics.ExportsTotal.WithLabelValues("pptx", "success").Inc()
		writeAttachment(w, "application/vnd.openxmlformats-officedocument.presentationml.presentation", export.Filename(req.DeckTitle, "pptx"), data)

	default:
		writeError(w, http.StatusBadRequest, "invalid format")
	}
}
