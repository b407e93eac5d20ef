package services

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"watch-deal-scraper/config"
	"watch-deal-scraper/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLoggerTo(io.Discard, io.Discard) }

func newCapturingLogger() (*utils.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return utils.NewLoggerTo(&buf, &buf), &buf
}

func testConfig() *config.Config {
	return &config.Config{
		GrokAPIKey:     "grok-key",
		VisionAPIKey:   "vision-key",
		Chrono24APIKey: "c24-key",
		HTTPTimeout:    2 * time.Second,
	}
}

// captured is what a fake service saw of the last request.
type captured struct {
	Method string
	Path   string
	Auth   string
	Body   []byte
	Hits   int
}

func fakeService(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.Hits++
		c.Method = r.Method
		c.Path = r.URL.EscapedPath()
		c.Auth = r.Header.Get("Authorization")
		c.Body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

// deadURL returns the address of a server that is already shut down.
func deadURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}
