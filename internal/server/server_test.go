package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blobposter/pkg/buildinfo"
	"github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/observability"
	"github.com/matzehuels/blobposter/pkg/pipeline"
)

func newTestServer(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s := New(log.NewWithOptions(&buf, log.Options{}))
	return s.Handler(), &buf
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)
	rec := get(h, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)

	var got health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, buildinfo.Version, got.Version)
}

func TestPalettes(t *testing.T) {
	h, _ := newTestServer(t)
	rec := get(h, "/palettes")
	require.Equal(t, http.StatusOK, rec.Code)

	var got catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Palettes, 6)
	assert.Len(t, got.Styles, 4)
	assert.Equal(t, [2]int{3, 20}, got.Bounds.Layers)
	assert.Equal(t, 0.01, got.Bounds.Step)
}

func TestPosterSVG(t *testing.T) {
	h, _ := newTestServer(t)
	rec := get(h, "/poster.svg?seed=5&layers=4&style=Monochrome")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "5", rec.Header().Get(SeedHeader))
	assert.Equal(t, 4, bytes.Count(rec.Body.Bytes(), []byte("<polygon")))
}

func TestPosterPNG(t *testing.T) {
	h, _ := newTestServer(t)
	rec := get(h, "/poster.png?seed=1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestPosterMatchesPipeline(t *testing.T) {
	h, _ := newTestServer(t)
	rec := get(h, "/poster.svg?seed=42&palette=Pastel&title=Hello")
	require.Equal(t, http.StatusOK, rec.Code)

	opts := pipeline.DefaultOptions()
	opts.Seed = 42
	opts.Palette = "Pastel"
	opts.Title = "Hello"
	res, err := pipeline.NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{})).Execute(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, res.Artifacts[pipeline.FormatSVG], rec.Body.Bytes())
}

func TestPosterRandomSeed(t *testing.T) {
	h, _ := newTestServer(t)
	rec := get(h, "/poster.svg?seed=random")
	require.Equal(t, http.StatusOK, rec.Code)

	seed, err := strconv.ParseInt(rec.Header().Get(SeedHeader), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seed, int64(0))
}

func TestPosterErrors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
		code   errors.Code
	}{
		{"bad layers", "layers=many", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad seed", "seed=1.5", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad wobble", "wobble_min=abc", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"NaN radius", "radius_max=NaN", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad mode", "mode=wild", http.StatusUnprocessableEntity, errors.ErrCodeInvalidMode},
	}

	h, _ := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(h, "/poster.svg?"+tt.query)
			require.Equal(t, tt.status, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(tt.code), body.Code)
			assert.Equal(t, rec.Header().Get(RequestIDHeader), body.RequestID)
		})
	}
}

func TestOptionsFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("layers", "99")
	q.Set("wobble_max", "0.8")
	q.Set("radius_min", "0.2")
	q.Set("palette", "earthy")
	q.Set("title", "")

	opts, err := optionsFromQuery(pipeline.DefaultOptions(), q)
	require.NoError(t, err)
	assert.Equal(t, pipeline.MaxLayers, opts.Layers)
	assert.Equal(t, pipeline.MaxWobble, opts.WobbleMax)
	assert.Equal(t, 0.2, opts.RadiusMin)
	assert.Equal(t, "earthy", opts.Palette)
	assert.Empty(t, opts.Title)
	assert.Equal(t, int64(0), opts.Seed)
}

func TestRequestID(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(h, "/healthz")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestRequestLogging(t *testing.T) {
	h, buf := newTestServer(t)
	rec := get(h, "/poster.svg?seed=3")
	require.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()
	assert.Contains(t, out, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, out, "/poster.svg")
	assert.Contains(t, out, "generated poster")
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	h, _ := newTestServer(t)
	get(h, "/healthz")
	get(h, "/poster.svg?layers=x")
	get(h, "/missing")

	assert.Equal(t, []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound}, hooks.statuses)
}

func TestListenAndServeShutdown(t *testing.T) {
	s := New(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
