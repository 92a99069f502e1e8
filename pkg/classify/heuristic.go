package classify

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"strings"

	_ "golang.org/x/image/bmp"  // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// Heuristic is a placeholder classifier driven by image shape, brightness
// and filename keywords. It performs no real inference. Its outputs are
// pinned by tests.
type Heuristic struct{}

// NewHeuristic returns the offline heuristic backend.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Name returns the backend name.
func (*Heuristic) Name() string {
	return "heuristic"
}

// features are the image measurements the decision table reads.
type features struct {
	width     int
	height    int
	aspect    float64
	intensity float64
}

func (f features) square() bool { return f.aspect > 0.9 && f.aspect < 1.1 }

type guess struct {
	category   domain.Category
	confidence float64
}

type shapeRule struct {
	name  string
	match func(features) bool
	guess
}

// shapeRules is evaluated in order; the first match wins.
var shapeRules = []shapeRule{
	{
		name:  "square-dark",
		match: func(f features) bool { return f.square() && f.intensity < 100 },
		guess: guess{domain.CategoryComputerMouse, 0.85},
	},
	{
		name:  "square-light",
		match: features.square,
		guess: guess{domain.CategoryBattery, 0.88},
	},
	{
		name:  "wide",
		match: func(f features) bool { return f.aspect > 1.5 },
		guess: guess{domain.CategoryLaptop, 0.94},
	},
	{
		name:  "tall",
		match: func(f features) bool { return f.aspect < 0.7 },
		guess: guess{domain.CategorySmartphone, 0.91},
	},
	{
		name:  "large",
		match: func(f features) bool { return f.width > 1000 && f.height > 800 },
		guess: guess{domain.CategoryFlatPanelMonitor, 0.89},
	},
}

var defaultGuess = guess{domain.CategoryLaptop, 0.92}

type keywordRule struct {
	keywords []string
	guess
}

// filenameRules override the shape guess; first match wins.
var filenameRules = []keywordRule{
	{keywords: []string{"laptop"}, guess: guess{domain.CategoryLaptop, 0.97}},
	{keywords: []string{"phone", "smartphone"}, guess: guess{domain.CategorySmartphone, 0.96}},
	{keywords: []string{"monitor", "display"}, guess: guess{domain.CategoryFlatPanelMonitor, 0.95}},
}

// Images that cannot be decoded are reported at this size with this guess.
const (
	undecodableWidth  = 640
	undecodableHeight = 480
)

var undecodableGuess = guess{domain.CategoryLaptop, 0.85}

// Infer never fails; undecodable images get a fixed answer.
func (*Heuristic) Infer(_ context.Context, img Image) (*Inference, error) {
	f, err := measure(img.Data)
	if err != nil {
		return mockInference(undecodableWidth, undecodableHeight, undecodableGuess), nil
	}
	return mockInference(f.width, f.height, decide(f, img.Filename)), nil
}

func decide(f features, filename string) guess {
	g := defaultGuess
	for _, r := range shapeRules {
		if r.match(f) {
			g = r.guess
			break
		}
	}

	name := strings.ToLower(filename)
	for _, r := range filenameRules {
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				return r.guess
			}
		}
	}

	return g
}

func measure(data []byte) (features, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return features{}, err
	}

	b := src.Bounds()
	f := features{width: b.Dx(), height: b.Dy(), aspect: 1}
	if f.height > 0 {
		f.aspect = float64(f.width) / float64(f.height)
	}
	f.intensity = meanIntensity(src)

	return f, nil
}

// meanIntensity averages the RGB channels of src downscaled to one pixel.
func meanIntensity(src image.Image) float64 {
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	px := dst.RGBAAt(0, 0)
	return (float64(px.R) + float64(px.G) + float64(px.B)) / 3
}

// mockInference wraps g in a detection box covering 70% of the frame.
func mockInference(width, height int, g guess) *Inference {
	boxW := int(float64(width) * 0.7)
	boxH := int(float64(height) * 0.7)
	x := int(float64(width-boxW) * 0.15)
	y := int(float64(height-boxH) * 0.15)

	return &Inference{
		Width:  width,
		Height: height,
		Predictions: []Prediction{{
			Class:      string(g.category),
			Confidence: g.confidence,
			X:          float64(x) + float64(boxW)/2,
			Y:          float64(y) + float64(boxH)/2,
			Width:      float64(boxW),
			Height:     float64(boxH),
		}},
	}
}
