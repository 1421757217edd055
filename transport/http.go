// Package transport provides the default net/http implementation of the
// chat.Transport contract.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/minatoya/callagent/chat"
)

const defaultTimeout = 120 * time.Second

// HTTP performs one POST exchange per Send. It never retries; callers
// own retry policy.
type HTTP struct {
	client *http.Client
}

// NewHTTP builds a transport with the supplied HTTP client. When client
// is nil, a default client with a request timeout is used.
func NewHTTP(client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTP{client: client}
}

// Send implements chat.Transport. The response body is read and
// returned regardless of HTTP status so protocol-level errors can be
// decoded upstream.
func (t *HTTP) Send(ctx context.Context, url string, headers map[string]string, body []byte) (*chat.RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &chat.RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       payload,
	}, nil
}

var _ chat.Transport = (*HTTP)(nil)
