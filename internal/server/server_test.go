package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/mycv/internal/config"
	"github.com/jonathan/mycv/internal/i18n"
	"github.com/jonathan/mycv/internal/rendering"
	"github.com/jonathan/mycv/internal/repository"
	"github.com/jonathan/mycv/internal/testutil"
	"github.com/jonathan/mycv/internal/types"
)

func newTestServer(t *testing.T, assets string) *Server {
	t.Helper()

	repo, err := repository.New(assets)
	require.NoError(t, err)
	renderer, err := rendering.NewHTMLRenderer()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.Default().Server, repo, renderer, logger)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_RootServesRussian(t *testing.T) {
	s := newTestServer(t, testutil.WriteAssets(t))

	rec := get(t, s, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ru", rec.Header().Get("Content-Language"))
	assert.Contains(t, rec.Body.String(), "Tech Company ru")
	assert.Contains(t, rec.Body.String(), "По настоящее время")
}

func TestServer_LanguageRoutes(t *testing.T) {
	s := newTestServer(t, testutil.WriteAssets(t))

	tests := []struct {
		path     string
		wantLang string
		wantText string
	}{
		{"/ru", "ru", "Tech Company ru"},
		{"/en", "en", "Tech Company en"},
		{"/th", "th", "Tech Company th"},
		{"/unknownlang", "en", "Present"},
		{"/RU", "en", "Tech Company en"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s, tt.path)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantLang, rec.Header().Get("Content-Language"))
			assert.Contains(t, rec.Body.String(), tt.wantText)
		})
	}
}

func TestServer_RereadsDataFiles(t *testing.T) {
	assets := testutil.WriteAssets(t)
	s := newTestServer(t, assets)

	updated := strings.Replace(testutil.MinimalTOML("en"), "Tech Company en", "Edited Company", 1)
	testutil.WriteFile(t, testutil.AssetPath(assets, types.English), updated)

	rec := get(t, s, "/en")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Edited Company")
}

func TestServer_MissingFileReturns500(t *testing.T) {
	assets := testutil.WriteAssets(t)
	s := newTestServer(t, assets)
	require.NoError(t, os.Remove(testutil.AssetPath(assets, types.Thai)))

	rec := get(t, s, "/th")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, rec.Body.String(), "resume for language th not found")

	// The server keeps serving other languages.
	assert.Equal(t, http.StatusOK, get(t, s, "/ru").Code)
}

func TestServer_InvalidFileReturns500(t *testing.T) {
	assets := testutil.WriteAssets(t)
	s := newTestServer(t, assets)
	testutil.WriteFile(t, testutil.AssetPath(assets, types.Russian), "summary = ")

	rec := get(t, s, "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load resume")
}

type failingRenderer struct{}

func (failingRenderer) Render(_ *types.Resume, _ i18n.Translation, lang string) (string, error) {
	return "", &rendering.RenderError{Lang: lang, Message: "failed to execute template", Cause: errors.New("boom")}
}

func TestServer_RenderFailureReturns500(t *testing.T) {
	repo, err := repository.New(testutil.WriteAssets(t))
	require.NoError(t, err)
	s := New(config.Default().Server, repo, failingRenderer{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := get(t, s, "/en")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Failed to render template. Error: "))
	assert.Contains(t, rec.Body.String(), "boom")
}

type panickingRenderer struct{}

func (panickingRenderer) Render(*types.Resume, i18n.Translation, string) (string, error) {
	panic("template exploded")
}

func TestServer_RecoversFromPanic(t *testing.T) {
	repo, err := repository.New(testutil.WriteAssets(t))
	require.NoError(t, err)
	s := New(config.Default().Server, repo, panickingRenderer{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := get(t, s, "/en")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, testutil.WriteAssets(t))

	rec := get(t, s, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t, testutil.WriteAssets(t))
	get(t, s, "/en")

	rec := get(t, s, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mycv_http_requests_total")
}

func TestServer_NestedPathNotFound(t *testing.T) {
	s := newTestServer(t, testutil.WriteAssets(t))

	assert.Equal(t, http.StatusNotFound, get(t, s, "/en/extra").Code)
}

func TestServer_RequestID(t *testing.T) {
	s := newTestServer(t, testutil.WriteAssets(t))

	rec := get(t, s, "/health")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestServer_AccessLogCarriesRequestFields(t *testing.T) {
	repo, err := repository.New(testutil.WriteAssets(t))
	require.NoError(t, err)
	renderer, err := rendering.NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	s := New(config.Default().Server, repo, renderer, slog.New(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/th", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	s.Handler().ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "/th", entry["path"])
	assert.Equal(t, "GET /{lang}", entry["route"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestServer_ServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t, testutil.WriteAssets(t))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
