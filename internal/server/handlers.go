package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blobposter/pkg/buildinfo"
	"github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/pipeline"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// SeedHeader reports the seed a poster was generated with, which matters
// when the request asked for a random one.
const SeedHeader = "X-Poster-Seed"

var contentTypes = map[string]string{
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
}

type health struct {
	Status string `json:"status"`
	buildinfo.Info
}

type catalog struct {
	Palettes []poster.PaletteName      `json:"palettes"`
	Styles   []poster.Style            `json:"styles"`
	Modes    []poster.PerturbationMode `json:"modes"`
	Bounds   bounds                    `json:"bounds"`
}

type bounds struct {
	Layers [2]int     `json:"layers"`
	Wobble [2]float64 `json:"wobble"`
	Radius [2]float64 `json:"radius"`
	Step   float64    `json:"step"`
}

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, health{Status: "ok", Info: buildinfo.Current()})
}

func (s *Server) handlePalettes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog{
		Palettes: poster.Palettes,
		Styles:   poster.Styles,
		Modes:    poster.PerturbationModes,
		Bounds: bounds{
			Layers: [2]int{pipeline.MinLayers, pipeline.MaxLayers},
			Wobble: [2]float64{pipeline.MinWobble, pipeline.MaxWobble},
			Radius: [2]float64{pipeline.MinRadius, pipeline.MaxRadius},
			Step:   pipeline.ControlStep,
		},
	})
}

func (s *Server) handlePoster(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.FromContext(ctx)

		opts, err := optionsFromQuery(s.base, r.URL.Query())
		if err != nil {
			writeError(ctx, w, http.StatusBadRequest, err)
			return
		}
		opts.Formats = []string{format}
		opts.Logger = logger

		result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			writeError(ctx, w, statusFor(err), err)
			return
		}

		data := result.Artifacts[format]
		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set(SeedHeader, strconv.FormatInt(result.Poster.Seed, 10))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// statusFor maps generation errors to 422 and anything else to 500.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidMode, errors.ErrCodeInvalidFormat:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	log.FromContext(ctx).Warn("request failed", "status", status, "err", err)
	writeJSON(w, status, errorBody{
		Error:     errors.UserMessage(err),
		Code:      string(errors.GetCode(err)),
		RequestID: RequestID(ctx),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
