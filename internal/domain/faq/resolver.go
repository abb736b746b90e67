package faq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/yanqian/faq-assistant/pkg/errors"
)

const (
	genericFailureMessage = "An error occurred while processing your request."
	modelNotFoundFormat   = "Model '%s' might not be available or supported for 'generateContent' in your region or for your API key."
	notFoundStatusText    = "Not Found"
)

// Resolver turns a classifier label into a response.
type Resolver struct {
	cfg       Config
	catalog   *Catalog
	generator Generator
	logger    *slog.Logger
}

// NewResolver builds a resolver over the given catalog.
func NewResolver(cfg Config, catalog *Catalog, generator Generator, logger *slog.Logger) *Resolver {
	return &Resolver{
		cfg:       cfg,
		catalog:   catalog,
		generator: generator,
		logger:    logger.With("component", "faq.resolver"),
	}
}

// Resolve returns the canned answer for a known label without calling the
// model. Any other label falls through to a single general generation call.
func (r *Resolver) Resolve(ctx context.Context, label, prompt string, info *UserInfo) (Response, error) {
	if answer, ok := r.catalog.Lookup(label); ok {
		r.logger.Info("matched intent, returning predefined answer", "intent", label)
		return Response{Text: answer}, nil
	}

	generalPrompt := buildGeneralPrompt(prompt, info)
	r.logger.Debug("no predefined intent, sending general prompt", "prompt", generalPrompt)

	text, err := r.generator.GenerateText(ctx, generalPrompt)
	if err != nil {
		return Response{}, r.failure(err)
	}

	r.logger.Info("generated general response")
	return Response{Text: text}, nil
}

func (r *Resolver) failure(err error) error {
	var statusErr StatusError
	if errors.As(err, &statusErr) {
		if code, text := statusErr.HTTPStatus(); code == http.StatusNotFound && text == notFoundStatusText {
			return apperrors.Wrap(CodeModelNotFound, fmt.Sprintf(modelNotFoundFormat, r.cfg.Model), err)
		}
	}
	if msg := err.Error(); strings.TrimSpace(msg) != "" {
		return apperrors.Wrap(CodeGenerationFailed, msg, err)
	}
	return apperrors.Wrap(CodeGenerationFailed, genericFailureMessage, err)
}
