package download

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrHTTPStatus is matched by every HTTPStatusError
var ErrHTTPStatus = errors.New("unsuccessful HTTP status")

// HTTPStatusError reports a response outside the 2xx range
type HTTPStatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HTTPStatusError) Error() string {
	reason := http.StatusText(e.StatusCode)
	if len(e.Status) > 4 {
		reason = e.Status[4:]
	}

	switch {
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return fmt.Sprintf("%d Client Error: %s for url: %s", e.StatusCode, reason, e.URL)
	case e.StatusCode >= 500 && e.StatusCode < 600:
		return fmt.Sprintf("%d Server Error: %s for url: %s", e.StatusCode, reason, e.URL)
	default:
		return fmt.Sprintf("unexpected status %d %s for url: %s", e.StatusCode, reason, e.URL)
	}
}

func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// checkStatus returns an HTTPStatusError unless the response is 2xx
func checkStatus(resp *http.Response, url string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        url,
	}
}
