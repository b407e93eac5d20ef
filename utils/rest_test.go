package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestClientSendsBearerToken(t *testing.T) {
	var gotAuth, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var out bytes.Buffer
	logger := NewLoggerTo(&out, &out)
	logger.SetDebug(true)

	client := NewRestClient("test", "secret", time.Second, logger)
	res, err := client.R().Get(srv.URL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, res.StatusCode())
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Contains(t, gotUA, "Chrome/")
	assert.Contains(t, out.String(), "[test] GET")
	assert.Contains(t, out.String(), "204")
}

func TestRestClientDoesNotRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewRestClient("test", "", time.Second, NewLoggerTo(&bytes.Buffer{}, &bytes.Buffer{}))
	res, err := client.R().Get(srv.URL)
	require.NoError(t, err)

	assert.True(t, res.IsError())
	assert.Equal(t, 1, calls)
}
