package faq

import (
	"context"
	"log/slog"
)

// Classifier maps a free-text prompt to a catalog id using the generator.
type Classifier struct {
	catalog   *Catalog
	generator Generator
	logger    *slog.Logger
}

// NewClassifier builds a classifier over the given catalog.
func NewClassifier(catalog *Catalog, generator Generator, logger *slog.Logger) *Classifier {
	return &Classifier{
		catalog:   catalog,
		generator: generator,
		logger:    logger.With("component", "faq.classifier"),
	}
}

// Classify returns the normalized label produced by the model, or NoneLabel
// when the catalog is empty or the model call fails. Errors never reach the caller.
func (c *Classifier) Classify(ctx context.Context, prompt string) string {
	if c.catalog.Len() == 0 {
		return NoneLabel
	}

	intentPrompt := buildIntentPrompt(c.catalog, prompt)
	c.logger.Info("sending intent recognition prompt", "prompt_head", firstLine(intentPrompt))

	raw, err := c.generator.GenerateText(ctx, intentPrompt)
	if err != nil {
		c.logger.Warn("intent recognition failed, falling back to general generation", "error", err)
		return NoneLabel
	}

	label := normalizeLabel(raw)
	c.logger.Info("intent recognized", "intent", label)
	return label
}
