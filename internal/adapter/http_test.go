package adapter_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var fastRetry = adapter.RetryPolicy{
	InitialInterval: 5 * time.Millisecond,
	MaxInterval:     20 * time.Millisecond,
	MaxElapsedTime:  200 * time.Millisecond,
}

func TestHTTPClient_GetBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"name":"Fidenza #7"}`))
	}))
	defer server.Close()

	client := adapter.NewHTTPClient(time.Second, fastRetry)
	body, err := client.GetBytes(context.Background(), server.URL, map[string]string{"Accept": "application/json"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Fidenza #7"}`, string(body))
}

func TestHTTPClient_PostBytesReplaysBodyOnRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"query":"q"}`, string(body))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := adapter.NewHTTPClient(time.Second, fastRetry)
	body, err := client.PostBytes(context.Background(), server.URL, nil, strings.NewReader(`{"query":"q"}`))

	require.NoError(t, err)
	assert.Equal(t, `{"data":{}}`, string(body))
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPClient_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := adapter.NewHTTPClient(time.Second, fastRetry)
	_, err := client.GetBytes(context.Background(), server.URL, nil)

	var statusErr *adapter.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClient_RateLimited(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := adapter.NewHTTPClient(time.Second, fastRetry)
	_, err := client.GetBytes(context.Background(), server.URL, nil)

	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Greater(t, calls.Load(), int32(1))
}

func TestHTTPClient_Peek(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bytes=0-3", r.Header.Get("Range"))
		w.WriteHeader(http.StatusPartialContent)
		_, _ = w.Write([]byte("GIF89a-and-more"))
	}))
	defer server.Close()

	client := adapter.NewHTTPClient(time.Second, fastRetry)
	data, err := client.Peek(context.Background(), server.URL, 4)

	require.NoError(t, err)
	assert.Equal(t, "GIF8", string(data))
}
