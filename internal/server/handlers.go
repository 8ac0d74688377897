package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/sortviz/pkg/buildinfo"
	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/pipeline"
	"github.com/matzehuels/sortviz/pkg/render"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

const contentTypeSVG = "image/svg+xml"

// algorithmInfo describes one entry of GET /api/algorithms.
type algorithmInfo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Recursive bool   `json:"recursive"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.BuildInfo
	}{"ok", buildinfo.Info()})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	out := make([]algorithmInfo, len(sorting.All))
	for i, a := range sorting.All {
		out[i] = algorithmInfo{ID: int(a), Name: a.String(), Title: a.Title(), Recursive: a.Recursive()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	opts, err := s.traceOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Formats = []string{render.FormatJSON}
	opts.Bars = r.URL.Query().Get("bars") == "true"
	s.serveArtifact(w, r, opts, "application/json")
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	opts, err := s.traceOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Formats = []string{render.FormatSVG}
	s.serveArtifact(w, r, opts, contentTypeSVG)
}

func (s *Server) handleAnimation(w http.ResponseWriter, r *http.Request) {
	opts, err := s.traceOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Formats = []string{render.FormatSVG}
	opts.Animate = true
	s.serveArtifact(w, r, opts, contentTypeSVG)
}

func (s *Server) handleCallTree(w http.ResponseWriter, r *http.Request) {
	s.serveCallTree(w, r, render.FormatJSON, "application/json")
}

func (s *Server) handleCallTreeSVG(w http.ResponseWriter, r *http.Request) {
	s.serveCallTree(w, r, render.FormatSVG, contentTypeSVG)
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, opts pipeline.Options, contentType string) {
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Trace-Id", result.Trace.ID)
	w.Header().Set("X-Trace-Steps", strconv.Itoa(result.Stats.Steps))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[opts.Formats[0]])
}

func (s *Server) serveCallTree(w http.ResponseWriter, r *http.Request, format, contentType string) {
	opts, err := s.traceOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	values := r.URL.Query().Get("values") == "true"
	data, err := s.runner.CallTree(r.Context(), opts, format, values)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// traceOptions reads the query parameters shared by the trace routes:
//
//	algorithm  name or number (default from config, else quick)
//	size       number of values, clamped to [0, 100]
//	seed       input seed
//	input      explicit comma-separated values, overrides size and seed
//	frame      frame index or "last" (static SVG only)
//	width, height, gap    canvas overrides
//	max_frames, frame_ms  animation overrides
func (s *Server) traceOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Size:          s.cfg.Size,
		Seed:          s.cfg.Seed,
		Canvas:        s.cfg.Canvas,
		Palette:       s.cfg.Palette,
		Frame:         pipeline.FrameLast,
		FrameDuration: s.cfg.Delay.Duration,
		Logger:        s.logger,
	}

	name := q.Get("algorithm")
	if name == "" {
		name = s.cfg.Algorithm
	}
	if name == "" {
		name = sorting.AlgQuick.String()
	}
	a, err := sorting.ParseAlgorithm(name)
	if err != nil {
		return opts, err
	}
	opts.Algorithm = a

	if v := q.Get("input"); v != "" {
		if opts.Input, err = sorting.ParseValues(v); err != nil {
			return opts, err
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"size", &opts.Size},
		{"width", &opts.Canvas.Width},
		{"height", &opts.Canvas.Height},
		{"gap", &opts.Canvas.Gap},
		{"max_frames", &opts.MaxFrames},
	}
	for _, p := range ints {
		if v := q.Get(p.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, errs.New(errs.ErrCodeInvalidInput, "invalid %s %q", p.key, v)
			}
			*p.dst = n
		}
	}
	opts.Size, _ = sorting.ClampSize(opts.Size)

	if v := q.Get("seed"); v != "" {
		if opts.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return opts, errs.New(errs.ErrCodeInvalidInput, "invalid seed %q", v)
		}
	}
	if v := q.Get("frame"); v != "" && v != "last" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, errs.New(errs.ErrCodeInvalidInput, "invalid frame %q", v)
		}
		opts.Frame = n
	}
	if v := q.Get("frame_ms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return opts, errs.New(errs.ErrCodeInvalidInput, "invalid frame_ms %q", v)
		}
		opts.FrameDuration = time.Duration(n) * time.Millisecond
	}
	return opts, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch code := errs.GetCode(err); {
	case errs.IsValidation(err), code == errs.ErrCodeUnsupported:
		return http.StatusBadRequest
	case code == errs.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	writeJSON(w, statusFor(err), errorBody{Code: string(code), Error: errs.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
