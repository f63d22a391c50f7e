package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hongik-triple/acnelog_backend/config"
)

func TestPredict(t *testing.T) {
	img := []byte{0xFF, 0xD8, 0xFF, 0xE0} // jpeg magic

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		f, fh, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file field: %v", err)
		}
		defer f.Close()
		if fh.Filename != "cheek.jpg" {
			t.Errorf("filename = %q, want cheek.jpg", fh.Filename)
		}
		got, _ := io.ReadAll(f)
		if !bytes.Equal(got, img) {
			t.Error("uploaded bytes differ from input")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"prediction_index":      1,
			"prediction_label":      "Pustules",
			"prediction_confidence": 0.87,
			"scores":                map[string]float64{"Pustules": 0.87, "Papules": 0.09},
		})
	}))
	defer srv.Close()

	c := New(config.AIConfig{ServerURL: srv.URL})
	p, err := c.Predict(context.Background(), "cheek.jpg", img)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	if p.Label != "Pustules" {
		t.Errorf("label = %q, want Pustules", p.Label)
	}
	if p.Confidence != 0.87 {
		t.Errorf("confidence = %v, want 0.87", p.Confidence)
	}
	if len(p.Scores) != 2 {
		t.Errorf("got %d scores, want 2", len(p.Scores))
	}
}

func TestPredict_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(config.AIConfig{ServerURL: srv.URL})
	if _, err := c.Predict(context.Background(), "a.jpg", []byte{1}); err == nil {
		t.Fatal("expected error on 503 response")
	}
}

func TestPredict_Unreachable(t *testing.T) {
	c := New(config.AIConfig{ServerURL: "http://127.0.0.1:1", TimeoutSeconds: 1})
	if _, err := c.Predict(context.Background(), "a.jpg", []byte{1}); err == nil {
		t.Fatal("expected error when server is unreachable")
	}
}
