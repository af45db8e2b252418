package gateways

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestWireClient_TransportRetryPolicy(t *testing.T) {
	t.Run("connection failures retried twice", func(t *testing.T) {
		var hits int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatalf("response writer must support hijacking")
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Fatalf("hijack: %v", err)
			}
			conn.Close() // drop the connection mid-request
		}))
		defer srv.Close()

		c := newWireClient(srv.URL)
		_, err := c.postJSON(context.Background(), "/pix/create", map[string]string{}, "Falha ao criar PIX na SubadqA")
		if err == nil {
			t.Fatalf("expected error")
		}

		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected TransportError, got %T", err)
		}
		if got := atomic.LoadInt32(&hits); got != 3 {
			t.Fatalf("expected 3 attempts (1 + 2 retries), got %d", got)
		}
	})

	t.Run("http error statuses never retried", func(t *testing.T) {
		var hits int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"internal","message":"boom"}`))
		}))
		defer srv.Close()

		c := newWireClient(srv.URL)
		_, err := c.postJSON(context.Background(), "/pix/create", map[string]string{}, "Falha ao criar PIX na SubadqA")
		if err == nil {
			t.Fatalf("expected error")
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", apiErr.StatusCode)
		}
		if got := atomic.LoadInt32(&hits); got != 1 {
			t.Fatalf("expected exactly 1 attempt, got %d", got)
		}
	})
}
