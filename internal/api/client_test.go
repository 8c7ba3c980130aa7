package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sealbox/internal/api"
)

func TestFetchServerKeyParsesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/public-key" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"serverPublicKey": "PEM"})
	}))
	defer ts.Close()

	got, err := api.New(ts.URL, ts.Client()).FetchServerKey(context.Background())
	if err != nil {
		t.Fatalf("FetchServerKey: %v", err)
	}
	if got != "PEM" {
		t.Fatalf("got %q", got)
	}
}

func TestServerErrorFieldWinsOverStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no public key provided"})
	}))
	defer ts.Close()

	err := api.New(ts.URL, ts.Client()).RegisterClientKey(context.Background(), "c", "pem")
	if err == nil || !strings.Contains(err.Error(), "no public key provided") {
		t.Fatalf("want the server's error detail, got %v", err)
	}
}

func TestBareFailureStatusIsReported(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := api.New(ts.URL, ts.Client()).FetchServerKey(context.Background())
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("want a status error, got %v", err)
	}
}

func TestIncompleteUploadResultIsRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer ts.Close()

	_, err := api.New(ts.URL, ts.Client()).UploadEncrypted(context.Background(), "c", "k", "d", "mp4")
	if err == nil || !strings.Contains(err.Error(), "incomplete") {
		t.Fatalf("want an incomplete-result error, got %v", err)
	}
}
