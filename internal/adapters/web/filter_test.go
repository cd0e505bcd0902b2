package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/config"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/core"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/inference"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/textproc"
)

type failingClassifier struct{}

func (failingClassifier) Classify(string) (core.Label, error) {
	return core.LabelNotSpam, errors.New("model exploded")
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		ListenAddress:   "127.0.0.1:0",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		MaxMessageSize:  1024,
	}
}

func newTestFilter(t *testing.T, classifier core.LabelClassifier) *WebFilter {
	t.Helper()
	if classifier == nil {
		adapter, err := inference.Load(
			filepath.Join("..", "..", "..", "testdata", "vectorizer.json"),
			filepath.Join("..", "..", "..", "testdata", "model.json"),
			"1",
		)
		require.NoError(t, err)
		classifier = adapter
	}

	logger := zap.NewNop()
	svc := core.NewDetectorService(textproc.NewTextProcessor(logger), classifier, logger, "reference-nb")
	f, err := NewWebFilter(svc, logger, testServerConfig(), "reference-nb")
	require.NoError(t, err)
	return f
}

func postForm(t *testing.T, h http.Handler, message string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{messageField: {message}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndexPage(t *testing.T) {
	h := newTestFilter(t, nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Spam Message Detector")
	assert.Contains(t, body, "Model: reference-nb")
	assert.NotContains(t, body, "result-box spam")
	assert.NotContains(t, body, "Please type a message first!")
}

func TestAnalyzeFormStates(t *testing.T) {
	h := newTestFilter(t, nil).Handler()

	tests := []struct {
		name     string
		message  string
		contains string
		absent   []string
	}{
		{"blank input warns", "   ", "Please type a message first!", []string{"SPAM DETECTED", "NOT SPAM"}},
		{"spam", "WIN a FREE iPhone now!!!", "SPAM DETECTED", []string{"NOT SPAM", "Please type"}},
		{"not spam", "Let's meet for lunch tomorrow", "NOT SPAM", []string{"SPAM DETECTED", "Please type"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(t, h, tt.message)
			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.contains)
			for _, s := range tt.absent {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestAnalyzeFormEscapesMessage(t *testing.T) {
	h := newTestFilter(t, nil).Handler()

	rec := postForm(t, h, "<script>alert(1)</script> free prize")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestAnalyzeFormTooLarge(t *testing.T) {
	h := newTestFilter(t, nil).Handler()

	rec := postForm(t, h, strings.Repeat("free ", 400))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAnalyzeFormClassifierFailure(t *testing.T) {
	h := newTestFilter(t, failingClassifier{}).Handler()

	rec := postForm(t, h, "hello")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), internalError)
	assert.NotContains(t, rec.Body.String(), "model exploded")
}

func TestClassifyAPI(t *testing.T) {
	h := newTestFilter(t, nil).Handler()

	t.Run("spam", func(t *testing.T) {
		rec := postJSON(t, h, `{"message": "WIN a FREE iPhone now!!!"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp classifyResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "spam", resp.Label)
		assert.True(t, resp.IsSpam)
		assert.Equal(t, "win free iphon", resp.Normalized)
		assert.Equal(t, "reference-nb", resp.Model)
		assert.NotEmpty(t, resp.ProcessingID)
	})

	t.Run("not spam", func(t *testing.T) {
		rec := postJSON(t, h, `{"message": "Let's meet for lunch tomorrow"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp classifyResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "not-spam", resp.Label)
		assert.False(t, resp.IsSpam)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			body string
			want int
		}{
			{"blank message", `{"message": "  \t "}`, http.StatusUnprocessableEntity},
			{"missing message", `{}`, http.StatusUnprocessableEntity},
			{"malformed", `{"message":`, http.StatusBadRequest},
			{"too large", `{"message": "` + strings.Repeat("x", 2048) + `"}`, http.StatusRequestEntityTooLarge},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := postJSON(t, h, tt.body)
				assert.Equal(t, tt.want, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			})
		}
	})
}

func TestClassifyAPIClassifierFailure(t *testing.T) {
	h := newTestFilter(t, failingClassifier{}).Handler()

	rec := postJSON(t, h, `{"message": "hello"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecovererReturns500(t *testing.T) {
	h := Recoverer(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProcessMessage(t *testing.T) {
	f := newTestFilter(t, nil)

	result, err := f.ProcessMessage(context.Background(), "URGENT: claim your prize, call 0800-123 NOW")
	require.NoError(t, err)
	assert.True(t, result.IsSpam)

	_, err = f.ProcessMessage(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrEmptyMessage)
}

func TestStartStop(t *testing.T) {
	f := newTestFilter(t, nil)
	assert.Empty(t, f.Addr())

	require.NoError(t, f.Start())
	t.Cleanup(func() { _ = f.Stop() })
	assert.Error(t, f.Start(), "second start must fail")

	resp, err := http.Get("http://" + f.Addr() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	require.NoError(t, f.Stop())
	assert.Empty(t, f.Addr())
	assert.NoError(t, f.Stop(), "stop is idempotent")
}

func TestStartBindFailure(t *testing.T) {
	first := newTestFilter(t, nil)
	require.NoError(t, first.Start())
	t.Cleanup(func() { _ = first.Stop() })

	cfg := testServerConfig()
	cfg.ListenAddress = first.Addr()
	logger := zap.NewNop()
	second, err := NewWebFilter(first.service, logger, cfg, "reference-nb")
	require.NoError(t, err)

	assert.Error(t, second.Start())
}
