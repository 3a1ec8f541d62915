package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAPIClient_getJSON(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "ok", status: http.StatusOK, body: `{"value": "x"}`},
		{name: "not found", status: http.StatusNotFound, body: `{}`, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: ``, wantErr: ErrTransient},
		{name: "rate limited", status: http.StatusTooManyRequests, body: ``, wantErr: ErrTransient},
		{name: "bad body", status: http.StatusOK, body: `{not json`, wantErr: ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("User-Agent"); got != defaultUserAgent {
					t.Errorf("User-Agent = %q", got)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := newAPIClient("test", time.Second, 0)
			var out struct {
				Value string `json:"value"`
			}
			err := c.getJSON(context.Background(), server.URL, nil, &out)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("getJSON() error = %v", err)
				}
				if out.Value != "x" {
					t.Errorf("Value = %q, want x", out.Value)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("getJSON() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAPIClient_getJSONNetworkErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := newAPIClient("test", time.Second, 0)
	var out map[string]any
	if err := c.getJSON(context.Background(), url, nil, &out); !errors.Is(err, ErrTransient) {
		t.Errorf("expected ErrTransient, got %v", err)
	}
}

func TestAPIClient_getJSONCanceledContext(t *testing.T) {
	c := newAPIClient("test", time.Second, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out map[string]any
	if err := c.getJSON(ctx, "http://127.0.0.1:0", nil, &out); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"120+"`, "120+"},
		{`60`, "60"},
		{`null`, ""},
		{`""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f flexString
			if err := f.UnmarshalJSON([]byte(tt.input)); err != nil {
				t.Fatalf("UnmarshalJSON() error = %v", err)
			}
			if string(f) != tt.want {
				t.Errorf("got %q, want %q", f, tt.want)
			}
		})
	}
}
