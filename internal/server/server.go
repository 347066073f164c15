// Package server exposes the learning flow over HTTP. Handlers stay
// thin: decode the request, call one facade operation, encode the view
// model or map the fault to a status code.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/abhisek/studyflow/internal/app"
	"github.com/abhisek/studyflow/internal/auth"
	"github.com/abhisek/studyflow/internal/fault"
)

// Server holds the HTTP surface over the application facade.
type Server struct {
	app    *app.App
	auth   *auth.Service
	logger *slog.Logger
}

func New(application *app.App, authSvc *auth.Service, logger *slog.Logger) *Server {
	return &Server{app: application, auth: authSvc, logger: logger}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealthz)

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	mux.HandleFunc("POST /api/students", s.handleIntake)
	mux.HandleFunc("GET /api/students/{roll}", s.handleStudent)
	mux.HandleFunc("POST /api/students/{roll}/step", s.handleJump)
	mux.HandleFunc("POST /api/students/{roll}/logout", s.handleLogout)

	mux.HandleFunc("GET /api/students/{roll}/assessments/{kind}/question", s.handleQuestion)
	mux.HandleFunc("POST /api/students/{roll}/assessments/{kind}/answer", s.handleAnswer)

	mux.HandleFunc("GET /api/students/{roll}/viva", s.handleVivaQuestion)
	mux.HandleFunc("POST /api/students/{roll}/viva", s.handleVivaSubmit)

	mux.HandleFunc("POST /api/students/{roll}/configure", s.handleConfigure)

	mux.HandleFunc("GET /api/students/{roll}/week", s.handleWeek)
	mux.HandleFunc("POST /api/students/{roll}/week/quiz", s.handleStartQuiz)
	mux.HandleFunc("POST /api/students/{roll}/week/quiz/answer", s.handleQuizAnswer)
	mux.HandleFunc("POST /api/students/{roll}/week/advance", s.handleAdvanceWeek)

	mux.HandleFunc("GET /api/students/{roll}/dashboard", s.handleDashboard)

	return s.logRequests(mux)
}

// Run serves until the context is cancelled, then drains connections.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// decode reads a JSON body into dst, rejecting unknown fields.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &fault.Validation{Field: "body", Msg: "malformed JSON request"}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeError maps fault kinds to HTTP statuses: validation 400, state
// 409, provider 502, everything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		validation *fault.Validation
		state      *fault.State
		provider   *fault.Provider
	)
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: validation.Msg, Field: validation.Field})
	case errors.As(err, &state):
		writeJSON(w, http.StatusConflict, errorBody{Error: state.Msg})
	case errors.As(err, &provider):
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "generation unavailable"})
	default:
		s.logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
