package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	generativelanguage "cloud.google.com/go/ai/generativelanguage/apiv1beta"
	"cloud.google.com/go/ai/generativelanguage/apiv1beta/generativelanguagepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/yanqian/faq-assistant/pkg/metrics"
)

// DefaultModel is used when no model id is configured.
const DefaultModel = "gemma-3-12b-it"

var (
	errNoCandidates = errors.New("gemini returned no candidates")
	errEmptyContent = errors.New("gemini response contained no text")
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, req *generativelanguagepb.GenerateContentRequest, opts ...gax.CallOption) (*generativelanguagepb.GenerateContentResponse, error)
}

// Options tune a single generation request.
type Options struct {
	Temperature float32
	Timeout     time.Duration
}

// Client generates text through the Gemini API for a single model.
type Client struct {
	rest      *generativelanguage.GenerativeClient
	model     contentGenerator
	modelName string
	opts      Options
	estimator *metrics.Estimator
	logger    *slog.Logger
}

// NewClient constructs a Gemini client bound to one model id. Every
// GenerateText call issues exactly one upstream request; the generated
// client's default retry policy is cleared.
func NewClient(ctx context.Context, apiKey, model string, genOpts Options, estimator *metrics.Estimator, logger *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	rest, err := generativelanguage.NewGenerativeRESTClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	rest.CallOptions.GenerateContent = nil

	return &Client{
		rest:      rest,
		model:     rest,
		modelName: model,
		opts:      genOpts,
		estimator: estimator,
		logger:    logger.With("component", "gemini.client", "model", model),
	}, nil
}

// Model returns the model id requests are sent to.
func (c *Client) Model() string {
	return c.modelName
}

// GenerateText sends prompt as a single user turn and returns the reply text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, c.request(prompt))
	if err != nil {
		return "", wrapError(err)
	}
	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	usage := c.usage(resp, prompt, text)
	c.logger.Debug("gemini generation completed",
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"total_tokens", usage.TotalTokens,
		"estimated", usage.Estimated,
	)
	return text, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.rest == nil {
		return nil
	}
	return c.rest.Close()
}

func (c *Client) request(prompt string) *generativelanguagepb.GenerateContentRequest {
	req := &generativelanguagepb.GenerateContentRequest{
		Model: modelResource(c.modelName),
		Contents: []*generativelanguagepb.Content{{
			Role:  "user",
			Parts: []*generativelanguagepb.Part{{Data: &generativelanguagepb.Part_Text{Text: prompt}}},
		}},
	}
	if c.opts.Temperature > 0 {
		temperature := c.opts.Temperature
		req.GenerationConfig = &generativelanguagepb.GenerationConfig{Temperature: &temperature}
	}
	return req
}

func modelResource(name string) string {
	if strings.Contains(name, "/") {
		return name
	}
	return "models/" + name
}

func (c *Client) usage(resp *generativelanguagepb.GenerateContentResponse, prompt, text string) metrics.TokenUsage {
	if md := resp.GetUsageMetadata(); md != nil && md.GetTotalTokenCount() > 0 {
		return metrics.TokenUsage{
			PromptTokens:     int(md.GetPromptTokenCount()),
			CompletionTokens: int(md.GetCandidatesTokenCount()),
			TotalTokens:      int(md.GetTotalTokenCount()),
		}
	}
	return c.estimator.Estimate(prompt, text)
}

func responseText(resp *generativelanguagepb.GenerateContentResponse) (string, error) {
	candidates := resp.GetCandidates()
	if len(candidates) == 0 || candidates[0] == nil {
		return "", errNoCandidates
	}
	content := candidates[0].GetContent()
	if content == nil {
		return "", errEmptyContent
	}
	var (
		b     strings.Builder
		found bool
	)
	for _, part := range content.GetParts() {
		if text, ok := part.GetData().(*generativelanguagepb.Part_Text); ok {
			b.WriteString(text.Text)
			found = true
		}
	}
	if !found {
		return "", errEmptyContent
	}
	return b.String(), nil
}

// APIError is an upstream failure carrying the HTTP status of the Gemini API.
type APIError struct {
	Code    int
	Status  string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// HTTPStatus reports the upstream status code and text.
func (e *APIError) HTTPStatus() (int, string) {
	return e.Code, e.Status
}

func wrapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{
			Code:    gerr.Code,
			Status:  http.StatusText(gerr.Code),
			Message: gerr.Message,
			Err:     err,
		}
	}
	return err
}
