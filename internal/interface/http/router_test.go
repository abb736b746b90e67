package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faq-assistant/internal/domain/faq"
	"github.com/yanqian/faq-assistant/internal/infra/config"
	apperrors "github.com/yanqian/faq-assistant/pkg/errors"
)

func TestRouter_GenerateSuccess(t *testing.T) {
	svc := &stubFAQService{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			require.Equal(t, "hello there", req.Prompt)
			require.NotNil(t, req.UserInfo)
			require.Equal(t, "Ada", req.UserInfo.Name)
			require.Equal(t, "s-1", req.SessionID)
			return faq.Response{Text: "hi Ada"}, nil
		},
	}

	recorder := performRequest(http.MethodPost, "/generate", `{"prompt":"hello there","userInfo":{"name":"Ada"},"sessionId":"s-1"}`, newRouterUnderTest(t, svc, ""))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"text":"hi Ada"}`, recorder.Body.String())
	require.NotEmpty(t, recorder.Header().Get(requestIDHeader))
	require.Equal(t, 1, svc.calls)
}

func TestRouter_GenerateMissingPrompt(t *testing.T) {
	for _, body := range []string{``, `{}`, `{"prompt":""}`, `{"prompt":null,"userInfo":{"name":"Ada"}}`} {
		svc := &stubFAQService{}
		recorder := performRequest(http.MethodPost, "/generate", body, newRouterUnderTest(t, svc, ""))
		require.Equal(t, http.StatusBadRequest, recorder.Code, "body %q", body)
		require.Equal(t, "Prompt is required", decodeError(t, recorder.Body.Bytes()))
		require.Zero(t, svc.calls)
	}
}

func TestRouter_GenerateForwardsBlankPrompt(t *testing.T) {
	svc := &stubFAQService{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			require.Equal(t, "   ", req.Prompt)
			return faq.Response{Text: "How can I help?"}, nil
		},
	}

	recorder := performRequest(http.MethodPost, "/generate", `{"prompt":"   "}`, newRouterUnderTest(t, svc, ""))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"text":"How can I help?"}`, recorder.Body.String())
	require.Equal(t, 1, svc.calls)
}

func TestRouter_GenerateInvalidJSON(t *testing.T) {
	svc := &stubFAQService{}
	recorder := performRequest(http.MethodPost, "/generate", `{"prompt":123}`, newRouterUnderTest(t, svc, ""))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotEmpty(t, decodeError(t, recorder.Body.Bytes()))
	require.Zero(t, svc.calls)
}

func TestRouter_GenerateErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "model not found",
			err:     apperrors.Wrap(faq.CodeModelNotFound, "Model 'gemma-3-12b-it' might not be available", errors.New("404")),
			status:  http.StatusNotFound,
			message: "Model 'gemma-3-12b-it' might not be available",
		},
		{
			name:    "generation failure",
			err:     apperrors.Wrap(faq.CodeGenerationFailed, "quota exceeded", errors.New("quota exceeded")),
			status:  http.StatusInternalServerError,
			message: "quota exceeded",
		},
		{
			name:    "uncoded error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "empty message",
			err:     apperrors.Wrap(faq.CodeGenerationFailed, "", nil),
			status:  http.StatusInternalServerError,
			message: genericErrorMessage,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubFAQService{
				answerFn: func(context.Context, faq.Request) (faq.Response, error) {
					return faq.Response{}, tc.err
				},
			}
			recorder := performRequest(http.MethodPost, "/generate", `{"prompt":"anything"}`, newRouterUnderTest(t, svc, ""))
			require.Equal(t, tc.status, recorder.Code)
			require.Equal(t, tc.message, decodeError(t, recorder.Body.Bytes()))
		})
	}
}

func TestRouter_GenerateWithDomainService(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"  Working_Hours \n"}}
	catalog := faq.MustCatalog(faq.DefaultEntries())
	svc := faq.NewService(faq.Config{Model: "test-model"}, catalog, gen, newTestLogger())

	recorder := performRequest(http.MethodPost, "/generate", `{"prompt":"when are you open?"}`, newRouterUnderTest(t, svc, ""))
	require.Equal(t, http.StatusOK, recorder.Code)

	answer, _ := catalog.Lookup("working_hours")
	require.JSONEq(t, `{"text":`+quote(answer)+`}`, recorder.Body.String())
	require.Len(t, gen.prompts, 1)
}

func TestRouter_StaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))
	server := newRouterUnderTest(t, &stubFAQService{}, dir)

	asset := performRequest(http.MethodGet, "/app.js", "", server)
	require.Equal(t, http.StatusOK, asset.Code)
	require.Equal(t, "console.log(1)", asset.Body.String())

	deep := performRequest(http.MethodGet, "/settings/profile", "", server)
	require.Equal(t, http.StatusOK, deep.Code)
	require.Contains(t, deep.Body.String(), "<html>app</html>")

	unknownPost := performRequest(http.MethodPost, "/unknown", `{}`, server)
	require.Equal(t, http.StatusNotFound, unknownPost.Code)
	require.Equal(t, "not found", decodeError(t, unknownPost.Body.Bytes()))
}

func TestRouter_HealthAndCORS(t *testing.T) {
	server := newRouterUnderTest(t, &stubFAQService{}, "")

	health := performRequest(http.MethodGet, "/healthz", "", server)
	require.Equal(t, http.StatusOK, health.Code)
	require.JSONEq(t, `{"status":"ok"}`, health.Body.String())
	require.Equal(t, "*", health.Header().Get("Access-Control-Allow-Origin"))

	preflight := performRequest(http.MethodOptions, "/generate", "", server)
	require.Equal(t, http.StatusNoContent, preflight.Code)
	require.Equal(t, "Content-Type, X-Request-ID", preflight.Header().Get("Access-Control-Allow-Headers"))
	require.Equal(t, "X-Request-ID", preflight.Header().Get("Access-Control-Expose-Headers"))
}

func TestResolveOrigin(t *testing.T) {
	allowed := []string{"https://chat.example", "https://staging.example"}
	require.Equal(t, "*", resolveOrigin("https://any.example", nil))
	require.Equal(t, "https://STAGING.example", resolveOrigin("https://STAGING.example", allowed))
	require.Equal(t, "https://chat.example", resolveOrigin("https://evil.example", allowed))
	require.Equal(t, "*", resolveOrigin("https://evil.example", []string{"*"}))
}

func TestRouter_PreservesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	newRouterUnderTest(t, &stubFAQService{}, "").Handler.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func performRequest(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc faq.Service, staticDir string) *http.Server {
	t.Helper()
	if staticDir == "" {
		staticDir = t.TempDir()
	}
	handler := NewHandler(svc, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Port:         3000,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			StaticDir:    staticDir,
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func decodeError(t *testing.T, raw []byte) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body["error"]
}

func quote(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

type stubFAQService struct {
	answerFn func(ctx context.Context, req faq.Request) (faq.Response, error)
	calls    int
}

func (s *stubFAQService) Answer(ctx context.Context, req faq.Request) (faq.Response, error) {
	s.calls++
	if s.answerFn != nil {
		return s.answerFn(ctx, req)
	}
	return faq.Response{}, nil
}

type scriptedGenerator struct {
	replies []string
	prompts []string
}

func (g *scriptedGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if len(g.replies) == 0 {
		return "", errors.New("no scripted reply")
	}
	reply := g.replies[0]
	g.replies = g.replies[1:]
	return reply, nil
}
