package faq

// Config holds runtime knobs for the FAQ service.
type Config struct {
	// Model is only used to build the model-unavailable message.
	Model string
}
