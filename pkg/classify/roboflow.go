package classify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
)

// Hosted detection defaults.
const (
	DefaultEndpoint = "https://detect.roboflow.com"
	DefaultModel    = "e-waste-dataset-r0ojc/43"
)

// RoboflowBackend implements Backend against the hosted detection API.
// Construct one per process and share it; it is safe for concurrent use.
type RoboflowBackend struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
}

// RoboflowOption configures the RoboflowBackend.
type RoboflowOption func(*RoboflowBackend)

// WithEndpoint overrides the API base URL.
func WithEndpoint(endpoint string) RoboflowOption {
	return func(b *RoboflowBackend) {
		b.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithModel overrides the model identifier ("project/version").
func WithModel(model string) RoboflowOption {
	return func(b *RoboflowBackend) {
		b.model = strings.Trim(model, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) RoboflowOption {
	return func(b *RoboflowBackend) {
		b.client = c
	}
}

// WithRateLimit caps outbound calls to perSecond with the given burst.
func WithRateLimit(perSecond float64, burst int) RoboflowOption {
	return func(b *RoboflowBackend) {
		b.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewRoboflowBackend creates a backend authenticated with apiKey.
func NewRoboflowBackend(apiKey string, opts ...RoboflowOption) *RoboflowBackend {
	b := &RoboflowBackend{
		endpoint: DefaultEndpoint,
		model:    DefaultModel,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: DefaultTimeout},
		limiter:  rate.NewLimiter(rate.Limit(5), 10),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*RoboflowBackend) Name() string {
	return "roboflow"
}

type roboflowResponse struct {
	Image struct {
		Width  dimension `json:"width"`
		Height dimension `json:"height"`
	} `json:"image"`
	Predictions *[]Prediction `json:"predictions"`
}

// dimension accepts both 640 and "640"; the API has returned either.
type dimension int

func (d *dimension) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid image dimension %q: %w", s, err)
	}
	*d = dimension(f)
	return nil
}

// Infer uploads img as base64 and decodes the detections.
func (b *RoboflowBackend) Infer(ctx context.Context, img Image) (*Inference, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	body := base64.StdEncoding.EncodeToString(img.Data)
	target := fmt.Sprintf("%s/%s?api_key=%s", b.endpoint, b.model, url.QueryEscape(b.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := b.client.Do(req)
	if err != nil {
		// The URL carries the key; report only the underlying cause.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("calling roboflow: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"roboflow error (status %d): %s",
			resp.StatusCode,
			string(bytes.TrimSpace(respBody)),
		)
	}

	var rr roboflowResponse
	if err := json.Unmarshal(respBody, &rr); err != nil {
		return nil, fmt.Errorf("parsing roboflow response: %w", err)
	}
	if rr.Predictions == nil {
		return nil, errors.New("parsing roboflow response: missing predictions")
	}

	return &Inference{
		Width:       int(rr.Image.Width),
		Height:      int(rr.Image.Height),
		Predictions: *rr.Predictions,
	}, nil
}
