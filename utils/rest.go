package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36"

// NewRestClient returns a resty client that sends token as a bearer credential
// on every request. Retries stay disabled: each call is made exactly once.
func NewRestClient(name, token string, timeout time.Duration, logger *Logger) *resty.Client {
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "application/json")
	client.SetAuthToken(token)
	client.SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug("[%s] %s %s", name, req.Method, req.URL)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		logger.Debug("[%s] %s %s -> %s in %v",
			name, res.Request.Method, res.Request.URL, res.Status(), res.Time())
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		logger.Debug("[%s] %s %s failed: %v", name, req.Method, req.URL, err)
	})

	return client
}
