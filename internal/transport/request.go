package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/agentstation/llamafi/pkg/constants"
	"github.com/agentstation/llamafi/pkg/errors"
	"github.com/agentstation/llamafi/pkg/logging"
)

// NewRequest builds a bodyless GET request with the common headers set.
// No authentication is applied; the API hosts are public.
func NewRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	req.Header.Set("Accept", constants.AcceptJSON)
	req.Header.Set("User-Agent", constants.UserAgent)
	return req, nil
}

// ReadBody reads the whole body and closes it. A body longer than limit
// bytes is an error wrapping errors.ErrResponseTooLarge; it is never truncated.
func ReadBody(resp *http.Response, limit int64) ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", errors.ErrResponseTooLarge, limit)
	}
	return body, nil
}
