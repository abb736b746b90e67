package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faq-assistant/internal/domain/faq"
	apperrors "github.com/yanqian/faq-assistant/pkg/errors"
)

// Handler wires the HTTP transport to the FAQ service.
type Handler struct {
	faqSvc faq.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Generate answers a prompt with a canned FAQ answer or model output.
func (h *Handler) Generate(c *gin.Context) {
	var req faq.Request
	// An empty body is treated like {} so it reports the missing prompt.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if req.Prompt == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, faq.CodeInvalidInput, "Prompt is required", nil))
		return
	}

	resp, err := h.faqSvc.Answer(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := faq.CodeGenerationFailed
		switch {
		case apperrors.IsCode(err, faq.CodeInvalidInput):
			status = http.StatusBadRequest
			code = faq.CodeInvalidInput
		case apperrors.IsCode(err, faq.CodeModelNotFound):
			status = http.StatusNotFound
			code = faq.CodeModelNotFound
		}
		abortWithError(c, NewHTTPError(status, code, apperrors.MessageOf(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health reports process liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
