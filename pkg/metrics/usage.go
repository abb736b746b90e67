package metrics

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// TokenUsage captures LLM token counts used to satisfy a request.
type TokenUsage struct {
	PromptTokens     int  `json:"promptTokens"`
	CompletionTokens int  `json:"completionTokens,omitempty"`
	TotalTokens      int  `json:"totalTokens"`
	Estimated        bool `json:"estimated,omitempty"`
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}

// Estimator approximates token counts when the model API reports none.
// A nil encoder falls back to counting whitespace separated words.
type Estimator struct {
	enc *tiktoken.Tiktoken
}

// NewEstimator loads the named BPE encoding. The encoding may need to be
// fetched on first use; when it cannot be loaded the error is returned
// together with a usable word-count estimator.
func NewEstimator(encoding string) (*Estimator, error) {
	if strings.TrimSpace(encoding) == "" {
		return &Estimator{}, nil
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return &Estimator{}, err
	}
	return &Estimator{enc: enc}, nil
}

// Count returns the approximate token count of text.
func (e *Estimator) Count(text string) int {
	if text == "" {
		return 0
	}
	if e == nil || e.enc == nil {
		return len(strings.Fields(text))
	}
	return len(e.enc.Encode(text, nil, nil))
}

// Estimate builds an estimated usage record for a prompt/completion pair.
func (e *Estimator) Estimate(prompt, completion string) TokenUsage {
	in := e.Count(prompt)
	out := e.Count(completion)
	return TokenUsage{
		PromptTokens:     in,
		CompletionTokens: out,
		TotalTokens:      in + out,
		Estimated:        true,
	}
}
