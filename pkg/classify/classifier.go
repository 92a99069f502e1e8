// Package classify identifies the device category shown in a photo. It calls
// a hosted detection model when credentials are configured and otherwise, or
// whenever that call fails, falls back to an offline heuristic.
package classify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// DefaultTimeout bounds a single call to the inference service.
const DefaultTimeout = 10 * time.Second

// Fallback reasons reported on a Classification.
const (
	ReasonNoCredential = "no_credential"
	ReasonTimeout      = "timeout"
	ReasonUnavailable  = "unavailable"
)

var tracer = otel.Tracer("github.com/donaldgifford/ecycle/pkg/classify")

// Image is an uploaded photo.
type Image struct {
	Filename string
	Data     []byte
}

// Prediction is one detection returned by a backend.
type Prediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Inference is a backend's raw answer for one image.
type Inference struct {
	Width       int
	Height      int
	Predictions []Prediction
}

// Best returns the highest-confidence prediction. Ties go to the earliest.
func (inf *Inference) Best() (Prediction, bool) {
	if inf == nil || len(inf.Predictions) == 0 {
		return Prediction{}, false
	}
	best := inf.Predictions[0]
	for _, p := range inf.Predictions[1:] {
		if p.Confidence > best.Confidence {
			best = p
		}
	}
	return best, true
}

// Backend produces detections for an image.
type Backend interface {
	Infer(ctx context.Context, img Image) (*Inference, error)
	Name() string
}

// Classifier classifies device photos.
type Classifier interface {
	Classify(ctx context.Context, img Image) (*domain.Classification, error)
}

// Adapter implements Classifier over an optional primary backend and the
// offline heuristic.
type Adapter struct {
	primary  Backend
	fallback Backend
	timeout  time.Duration
	log      *slog.Logger
}

// AdapterOption configures the Adapter.
type AdapterOption func(*Adapter)

// WithPrimary sets the inference service backend. Without one every image is
// classified by the heuristic.
func WithPrimary(b Backend) AdapterOption {
	return func(a *Adapter) {
		a.primary = b
	}
}

// WithTimeout bounds each primary backend call.
func WithTimeout(d time.Duration) AdapterOption {
	return func(a *Adapter) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) AdapterOption {
	return func(a *Adapter) {
		a.log = l
	}
}

// NewAdapter creates an Adapter. The heuristic is always the fallback.
func NewAdapter(opts ...AdapterOption) *Adapter {
	a := &Adapter{
		fallback: NewHeuristic(),
		timeout:  DefaultTimeout,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Classify returns the normalized category for img. Backend failures are
// absorbed by the heuristic; the only error a caller sees is
// domain.ErrNothingDetected when the service answers with no detections.
func (a *Adapter) Classify(ctx context.Context, img Image) (*domain.Classification, error) {
	ctx, span := tracer.Start(ctx, "classify.Classify")
	defer span.End()

	inf, source, reason, err := a.infer(ctx, img)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("classifying %s: %w", img.Filename, err)
	}

	span.SetAttributes(
		attribute.String("classify.source", source),
		attribute.Int("classify.predictions", len(inf.Predictions)),
	)

	best, ok := inf.Best()
	if !ok {
		return nil, domain.ErrNothingDetected
	}

	category := Normalize(best.Class)

	return &domain.Classification{
		Category:       category,
		RawLabel:       best.Class,
		Confidence:     best.Confidence,
		Source:         source,
		FallbackReason: reason,
		ImageWidth:     inf.Width,
		ImageHeight:    inf.Height,
		Box: domain.BoundingBox{
			X:      best.X,
			Y:      best.Y,
			Width:  best.Width,
			Height: best.Height,
		},
		RecyclingInfo: RecyclingInfo(category),
	}, nil
}

func (a *Adapter) infer(ctx context.Context, img Image) (*Inference, string, string, error) {
	if a.primary == nil {
		inf, err := a.fallback.Infer(ctx, img)
		return inf, a.fallback.Name(), ReasonNoCredential, err
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	inf, err := a.primary.Infer(callCtx, img)
	if err == nil {
		return inf, a.primary.Name(), "", nil
	}

	reason := ReasonUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		reason = ReasonTimeout
	}

	a.log.Warn("inference service failed, using offline heuristic",
		"backend", a.primary.Name(),
		"reason", reason,
		"error", err,
	)

	inf, err = a.fallback.Infer(ctx, img)
	return inf, a.fallback.Name(), reason, err
}
