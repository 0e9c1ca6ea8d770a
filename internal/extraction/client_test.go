package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSubmit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/operations" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("model"); got != "general-v2" {
			t.Errorf("model = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("auth header = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "file-bytes" {
			t.Errorf("body = %q", body)
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"data":{"id":"op-42"}}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "secret", time.Second)
	ref, err := c.Submit(context.Background(), []byte("file-bytes"), "general-v2")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ref != "op-42" {
		t.Errorf("ref = %q", ref)
	}
}

func TestSubmitErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
		{name: "missing id", status: http.StatusCreated, body: `{"data":{}}`},
		{name: "bad json", status: http.StatusOK, body: `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()
			c := NewHTTPClient(srv.URL, "k", time.Second)
			if _, err := c.Submit(context.Background(), []byte("x"), "m"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPoll(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		want       OperationStatus
		wantFields string
		wantErrMsg string
		wantErr    bool
	}{
		{
			name: "running",
			body: `{"data":{"status":"running"}}`,
			want: StatusRunning,
		},
		{
			name:       "succeeded with fields",
			body:       `{"data":{"status":"succeeded","fields":{"vendor":"Acme"}}}`,
			want:       StatusSucceeded,
			wantFields: `{"vendor":"Acme"}`,
		},
		{
			name:       "failed with message",
			body:       `{"data":{"status":"failed","error":"unreadable"}}`,
			want:       StatusFailed,
			wantErrMsg: "unreadable",
		},
		{
			name:    "unknown status",
			body:    `{"data":{"status":"paused"}}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/operations/op-1" {
					t.Errorf("path = %s", r.URL.Path)
				}
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			c := NewHTTPClient(srv.URL, "k", time.Second)
			got, err := c.Poll(context.Background(), "op-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Status != tt.want {
				t.Errorf("status = %s, want %s", got.Status, tt.want)
			}
			if tt.wantFields != "" && string(got.Fields) != tt.wantFields {
				t.Errorf("fields = %s", got.Fields)
			}
			if got.Error != tt.wantErrMsg {
				t.Errorf("error = %q, want %q", got.Error, tt.wantErrMsg)
			}
		})
	}
}

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "flat scalars", raw: `{"vendor":"Acme","total":12.5,"paid":true}`},
		{name: "null value allowed", raw: `{"vendor":null,"total":3}`},
		{name: "empty object", raw: `{}`, wantErr: true},
		{name: "nested object", raw: `{"vendor":{"name":"Acme"}}`, wantErr: true},
		{name: "array value", raw: `{"items":[1,2]}`, wantErr: true},
		{name: "top-level array", raw: `[1]`, wantErr: true},
		{name: "not json", raw: `{`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFields(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFields(%s) = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}
