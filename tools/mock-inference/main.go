// Package main implements a mock object-detection server for local
// development. It accepts the same base64 image upload as the hosted
// inference API and answers with a single canned prediction, so the
// classifier can be exercised without an API key or network access.
//
// Two API keys change the outcome: "empty" returns no predictions and
// "fail" returns a 500.
package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type prediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

type inferenceResponse struct {
	Time  float64 `json:"time"`
	Image struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"image"`
	Predictions []prediction `json:"predictions"`
}

type options struct {
	class      string
	confidence float64
	latency    time.Duration
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	class := flag.String("class", "laptop", "class label returned for every image")
	confidence := flag.Float64("confidence", 0.87, "confidence returned for every image")
	latency := flag.Duration("latency", 0, "artificial delay before answering")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /{model...}", inferHandler(logger, options{
		class:      *class,
		confidence: *confidence,
		latency:    *latency,
	}))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock inference server", "addr", addr, "class", *class)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func inferHandler(logger *slog.Logger, opts options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		key := r.URL.Query().Get("api_key")
		switch key {
		case "":
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "missing api_key"})
			return
		case "fail":
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "inference worker crashed"})
			return
		}

		raw, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "reading body"})
			return
		}
		data, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(raw)))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "body is not base64"})
			return
		}
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "could not decode image"})
			return
		}

		if opts.latency > 0 {
			select {
			case <-time.After(opts.latency):
			case <-r.Context().Done():
				return
			}
		}

		var resp inferenceResponse
		resp.Image.Width = cfg.Width
		resp.Image.Height = cfg.Height
		resp.Predictions = []prediction{}
		if key != "empty" {
			resp.Predictions = append(resp.Predictions, prediction{
				Class:      opts.class,
				Confidence: opts.confidence,
				X:          float64(cfg.Width) / 2,
				Y:          float64(cfg.Height) / 2,
				Width:      float64(cfg.Width) * 0.8,
				Height:     float64(cfg.Height) * 0.8,
			})
		}
		resp.Time = time.Since(start).Seconds()

		writeJSON(w, http.StatusOK, resp)
		logger.Info("inference",
			"model", r.PathValue("model"),
			"format", format,
			"width", cfg.Width,
			"height", cfg.Height,
			"predictions", len(resp.Predictions),
		)
	}
}
