package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/beacon/internal/retry"
	"github.com/vvka-141/beacon/pkg/beacon"
)

const dump = "#FORMAT: BEACON\n#PREFIX: http://example.org/\n\nalice\n"

func fastRetries() Option {
	return WithBackoff(retry.WithInitialDelay(time.Millisecond), retry.WithJitter(0))
}

func TestFetch_SendsHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(dump))
	}))
	defer srv.Close()

	body, err := New().Fetch(context.Background(), srv.URL+"/beacon.txt")
	require.NoError(t, err)
	assert.Equal(t, dump, string(body))
	assert.Equal(t, "BEACON-Parser-Validator/1.0", gotUA)
	assert.True(t, strings.HasPrefix(gotAccept, "text/plain"))
}

func TestFetch_CustomUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
	}))
	defer srv.Close()

	_, err := New(WithUserAgent("my-crawler/0.1")).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "my-crawler/0.1", gotUA)
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(dump))
	}))
	defer srv.Close()

	body, err := New(WithRetries(3), fastRetries()).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, dump, string(body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetch_ClientErrorIsFatal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New(WithRetries(3), fastRetries()).Fetch(context.Background(), srv.URL+"/missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, beacon.ErrSourceUnavailable)

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode())
	assert.Contains(t, err.Error(), "HTTP 404 Not Found")
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, beacon.ExitSourceError, beacon.ExitCodeForError(err))
}

func TestFetch_RetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(WithRetries(2), fastRetries()).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, beacon.ErrSourceUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetch_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a\n", 100)))
	}))
	defer srv.Close()

	_, err := New(WithMaxBytes(10)).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.ErrorIs(t, err, beacon.ErrSourceUnavailable)
}

func TestFetch_InvalidURL(t *testing.T) {
	for _, raw := range []string{"ftp://example.org/beacon.txt", "http://", "::not a url"} {
		_, err := New().Fetch(context.Background(), raw)
		assert.ErrorIs(t, err, beacon.ErrSourceUnavailable, raw)
	}
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(dump))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
