// Package inference is the HTTP client for the FastAPI model server that
// classifies acne images.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/hongik-triple/acnelog_backend/config"
)

// Prediction is the model server's answer for one image.
type Prediction struct {
	Index      int                `json:"prediction_index"`
	Label      string             `json:"prediction_label"`
	Confidence float64            `json:"prediction_confidence"`
	Scores     map[string]float64 `json:"scores"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg config.AIConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.ServerURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Predict sends the image to POST /predict as a multipart form and decodes
// the prediction. Any transport or non-200 failure is returned as-is; the
// caller decides whether that aborts the diagnosis.
func (c *Client) Predict(ctx context.Context, filename string, image []byte) (*Prediction, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("inference: build form: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("inference: write image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("inference: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &buf)
	if err != nil {
		return nil, fmt.Errorf("inference: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("inference: unexpected status %d: %s", resp.StatusCode, body)
	}

	var out Prediction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("inference: decode response: %w", err)
	}
	return &out, nil
}
