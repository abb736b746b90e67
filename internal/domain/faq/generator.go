package faq

import "context"

// Generator produces text for a single prompt using an external model.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// StatusError is implemented by generator errors that carry the upstream
// HTTP status code and status text.
type StatusError interface {
	error
	HTTPStatus() (code int, text string)
}

// Error codes returned by the service.
const (
	CodeInvalidInput     = "invalid_input"
	CodeModelNotFound    = "model_not_found"
	CodeGenerationFailed = "generation_failed"
)
