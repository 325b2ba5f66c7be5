package acl

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsamuelsen/favqs-quotes/internal/domain"
)

// maxErrorBodyBytes caps how much of a failed response is kept in the error.
const maxErrorBodyBytes = 1 << 20

// isSuccess reports whether status is in the 2xx range.
func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// requestErrorFromResponse builds a domain.RequestError from a non-2xx response.
// The body is read as text; a read failure counts as an empty body, in which
// case the status text is used instead.
func requestErrorFromResponse(resp *http.Response) error {
	var text string

	if resp.Body != nil {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if err == nil {
			text = string(body)
		}
	}

	return domain.NewRequestError(resp.StatusCode, text, statusText(resp))
}

// statusText returns the reason phrase of the response, e.g. "Not Found".
// It prefers what the server sent and falls back to the standard text.
func statusText(resp *http.Response) string {
	if text, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); ok {
		return text
	}

	return http.StatusText(resp.StatusCode)
}
