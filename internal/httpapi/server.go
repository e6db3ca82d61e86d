// Package httpapi exposes the pattern and indicator engines over a small
// JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/candle-analytics/internal/candle"
	"example.com/candle-analytics/internal/indicator"
	"example.com/candle-analytics/internal/pattern"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "candle-analytics"

type Server struct {
	Engine         *pattern.Engine
	AllowedOrigins []string
	MaxKlines      int
	MaxPoints      int
	Metrics        *Metrics // optional
}

func New(engine *pattern.Engine, allowedOrigins []string) *Server {
	return &Server{Engine: engine, AllowedOrigins: allowedOrigins}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/patterns", s.handlePatterns)
	mux.HandleFunc("/patterns/list", s.handlePatternList)
	mux.HandleFunc("/indicators", s.handleIndicators)
	mux.Handle("/metrics", promhttp.Handler())

	return s.cors(s.logRequests(mux))
}

// PatternRequest is the body of POST /patterns.
type PatternRequest struct {
	Klines []candle.Bar `json:"klines"`
}

// PatternResponse is the body of a successful POST /patterns.
type PatternResponse struct {
	Success  bool                `json:"success"`
	Patterns []pattern.Detection `json:"patterns"`
	Total    int                 `json:"total"`
}

// PatternListResponse is the body of GET /patterns/list.
type PatternListResponse struct {
	Total    int                  `json:"total"`
	Patterns []pattern.Definition `json:"patterns"`
}

// IndicatorRequest is the body of POST /indicators.
type IndicatorRequest struct {
	Close      []float64 `json:"close"`
	Indicators []string  `json:"indicators"`
}

// IndicatorResponse is the body of a successful POST /indicators.
type IndicatorResponse struct {
	Success    bool             `json:"success"`
	Indicators indicator.Result `json:"indicators"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"healthy","service":"` + ServiceName + `"}`))
}

// handlePatterns scans a kline series for candlestick patterns.
// POST /patterns {"klines":[{"open":...,"high":...,"low":...,"close":...},...]}
func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req PatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Klines) < pattern.MinCandles {
		writeError(w, http.StatusBadRequest, "Need at least 3 klines")
		return
	}
	if s.MaxKlines > 0 && len(req.Klines) > s.MaxKlines {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("too many klines: %d exceeds limit of %d", len(req.Klines), s.MaxKlines))
		return
	}

	candles, err := candle.FromBars(req.Klines)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	res, err := s.Engine.Scan(candles)
	if err != nil {
		if errors.Is(err, pattern.ErrInsufficientData) {
			writeError(w, http.StatusBadRequest, "Need at least 3 klines")
			return
		}
		log.Printf("WARN: pattern scan failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if s.Metrics != nil {
		s.Metrics.ScanDur.Observe(time.Since(start).Seconds())
		s.Metrics.DetectionsTotal.Add(float64(len(res.Detections)))
		s.Metrics.DetectorFaults.Add(float64(len(res.Faults)))
	}

	writeJSON(w, PatternResponse{Success: true, Patterns: res.Detections, Total: res.Total()})
}

// handlePatternList returns the catalog of recognized patterns.
// GET /patterns/list
func (s *Server) handlePatternList(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	defs := pattern.Catalog()
	writeJSON(w, PatternListResponse{Total: len(defs), Patterns: defs})
}

// handleIndicators computes technical indicators over a close series.
// POST /indicators {"close":[...],"indicators":["RSI","MACD","EMA"]}
func (s *Server) handleIndicators(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req IndicatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if s.MaxPoints > 0 && len(req.Close) > s.MaxPoints {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("too many points: %d exceeds limit of %d", len(req.Close), s.MaxPoints))
		return
	}

	start := time.Now()
	res, err := indicator.Compute(req.Close, req.Indicators)
	if err != nil {
		if errors.Is(err, indicator.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("WARN: indicator compute failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if s.Metrics != nil {
		s.Metrics.IndicatorDur.Observe(time.Since(start).Seconds())
	}

	writeJSON(w, IndicatorResponse{Success: true, Indicators: res})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// statusRecorder captures the response status code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests tags each request with an id and logs method, path, status and
// duration after the handler returns.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		if s.Metrics != nil {
			s.Metrics.RequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
			s.Metrics.RequestDur.WithLabelValues(r.URL.Path).Observe(elapsed.Seconds())
		}

		log.Printf("http %s %s %d %s id=%s", r.Method, r.URL.Path, rec.status, elapsed.Round(time.Microsecond), id)
	})
}

func (s *Server) cors(next http.Handler) http.Handler {
	allowed := s.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		allowOrigin := ""
		for _, o := range allowed {
			if o == "*" {
				allowOrigin = "*"
				break
			}
			if o == origin {
				allowOrigin = origin
				break
			}
		}

		if allowOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
