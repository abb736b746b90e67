package faq

import (
	"context"
	"log/slog"

	apperrors "github.com/yanqian/faq-assistant/pkg/errors"
)

// Service answers prompts with canned FAQ answers or model output.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
}

type service struct {
	classifier *Classifier
	resolver   *Resolver
	logger     *slog.Logger
}

// NewService wires up the FAQ domain.
func NewService(cfg Config, catalog *Catalog, generator Generator, logger *slog.Logger) Service {
	return &service{
		classifier: NewClassifier(catalog, generator, logger),
		resolver:   NewResolver(cfg, catalog, generator, logger),
		logger:     logger.With("component", "faq.service"),
	}
}

func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	if req.Prompt == "" {
		return Response{}, apperrors.Wrap(CodeInvalidInput, "Prompt is required", nil)
	}

	// Model calls outlive a disconnected client.
	ctx = context.WithoutCancel(ctx)

	if req.SessionID != "" {
		s.logger.Debug("answering prompt", "session_id", req.SessionID)
	}

	label := s.classifier.Classify(ctx, req.Prompt)
	return s.resolver.Resolve(ctx, label, req.Prompt, req.UserInfo)
}
