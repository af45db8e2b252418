package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	requestTimeout    = 30 * time.Second
	transportRetries  = 2
	transportRetryGap = 500 * time.Millisecond
)

// wireClient posts JSON to a sub-acquirer. Transport failures are retried up
// to transportRetries times; HTTP error statuses are never retried, they are
// classified into an APIError instead.

type wireClient struct {
	baseURL string
	hc      *http.Client
}

func newWireClient(baseURL string) *wireClient {
	return &wireClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: requestTimeout},
	}
}

func (c *wireClient) postJSON(ctx context.Context, path string, body any, baseMsg string) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	url := c.baseURL + path

	var resp *http.Response
	var lastErr error
	for attempt := 0; attempt <= transportRetries; attempt++ {
		if attempt > 0 {
			log.Printf("[gateway][client] retrying url=%s attempt=%d err=%v", url, attempt, lastErr)
			select {
			case <-ctx.Done():
				return nil, &TransportError{BaseMsg: baseMsg, Err: ctx.Err()}
			case <-time.After(transportRetryGap):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, lastErr = c.hc.Do(req)
		if lastErr == nil {
			break
		}
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			break
		}
	}
	if lastErr != nil {
		log.Printf("[gateway][client] transport failure url=%s err=%v", url, lastErr)
		return nil, &TransportError{BaseMsg: baseMsg, Err: lastErr}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{BaseMsg: baseMsg, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(baseMsg, resp.StatusCode, raw)
		log.Printf("[gateway][client] request failed url=%s status=%d err=%v", url, resp.StatusCode, apiErr)
		return nil, apiErr
	}

	return json.RawMessage(raw), nil
}
