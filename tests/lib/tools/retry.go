package tools

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryUntilStatus polls url with the given verb until the backend answers
// with the wanted status code or timeout elapses. Used for operations that
// settle asynchronously, such as payment processing.
func RetryUntilStatus(client *http.Client, method, url string, want int, timeout time.Duration) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 250 * time.Millisecond
	policy.MaxElapsedTime = timeout

	return backoff.Retry(func() error {
		req, err := http.NewRequest(method, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != want {
			return fmt.Errorf("status %d, want %d", resp.StatusCode, want)
		}
		return nil
	}, policy)
}
