package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/psantana5/lapse/internal/logging"
	"github.com/psantana5/lapse/internal/report"
	"github.com/psantana5/lapse/pkg/stopwatch"
)

// Server exposes a stopwatch over HTTP: read-only status and laps,
// control routes, and Prometheus metrics. The engine itself is not
// goroutine-safe, so every route takes the server's lock.
type Server struct {
	mu     sync.Mutex
	sw     *stopwatch.Stopwatch
	logger *logging.Logger
	http   *http.Server
}

type statusResponse struct {
	Running   bool            `json:"running"`
	ElapsedMs int64           `json:"elapsed_ms"`
	Elapsed   string          `json:"elapsed"`
	Laps      int             `json:"laps"`
	LapLog    []stopwatch.Lap `json:"lap_log,omitempty"`
}

// NewServer creates an HTTP server for the stopwatch on addr
func NewServer(addr string, sw *stopwatch.Stopwatch, logger *logging.Logger) *Server {
	s := &Server{
		sw:     sw,
		logger: logger,
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/status", s.handleStatus).Methods("GET")
	router.HandleFunc("/api/laps", s.handleLaps).Methods("GET")
	router.HandleFunc("/api/laps.csv", s.handleLapsCSV).Methods("GET")
	router.HandleFunc("/api/start", s.handleStart).Methods("POST")
	router.HandleFunc("/api/stop", s.handleStop).Methods("POST")
	router.HandleFunc("/api/reset", s.handleReset).Methods("POST")
	router.HandleFunc("/api/lap", s.handleLap).Methods("POST")
	router.Handle("/metrics", s.metricsHandler())

	s.http = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the route tree (used by tests via httptest)
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until the server stops
func (s *Server) ListenAndServe() error {
	s.logger.Info("http api listening", map[string]interface{}{"addr": s.http.Addr})
	return s.http.ListenAndServe()
}

// Shutdown drains the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	elapsed := s.sw.Elapsed()
	resp := statusResponse{
		Running:   s.sw.Running(),
		ElapsedMs: elapsed.Milliseconds(),
		Elapsed:   stopwatch.Format(elapsed),
		Laps:      s.sw.LapCount(),
		LapLog:    s.sw.Laps(),
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLaps(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	laps := s.sw.Laps()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := report.WriteJSON(w, laps); err != nil {
		s.logger.Error("laps export failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) handleLapsCSV(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	laps := s.sw.Laps()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/csv")
	if err := report.WriteCSV(w, laps); err != nil {
		s.logger.Error("laps export failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.sw.Start()
	s.mu.Unlock()
	s.respondControl(w, "start", err)
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.sw.Stop()
	s.mu.Unlock()
	s.respondControl(w, "stop", err)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.sw.Reset()
	s.mu.Unlock()
	s.respondControl(w, "reset", nil)
}

func (s *Server) handleLap(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")

	s.mu.Lock()
	lap, err := s.sw.Lap(label)
	s.mu.Unlock()

	if err != nil {
		s.respondControl(w, "lap", err)
		return
	}
	writeJSON(w, http.StatusCreated, lap)
}

// respondControl maps engine errors onto HTTP status codes:
// AlreadyRunning and NotRunning are state conflicts, not bad requests
func (s *Server) respondControl(w http.ResponseWriter, op string, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]string{"result": "ok", "op": op})
		return
	}

	status := http.StatusConflict
	if stopwatch.IsKind(err, stopwatch.Invalid) {
		status = http.StatusUnprocessableEntity
	}
	s.logger.Warn("control request rejected", map[string]interface{}{"op": op, "error": err.Error()})
	writeJSON(w, status, map[string]string{"error": err.Error(), "op": op})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.Encode(v)
}
