// Package server serves live previews of the logo widget over HTTP.
//
// Routes:
//
//	GET /healthz               liveness probe
//	GET /?class=...            standalone preview page
//	GET /widget?class=...      bare HTML fragment
//	GET /api/v1/inspect?class= JSON report of the build
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kimjansheden/logo/pkg/classes"
	"github.com/kimjansheden/logo/pkg/errors"
	"github.com/kimjansheden/logo/pkg/logo"
	"github.com/kimjansheden/logo/pkg/observability"
)

const (
	pageTitle       = "Logo preview"
	shutdownTimeout = 5 * time.Second
)

// Server renders widgets on request. Each request builds its own widget.
type Server struct {
	config logo.Config
	logger *log.Logger
}

// New creates a server rendering with cfg. A nil logger uses log.Default().
func New(cfg logo.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{config: cfg, logger: logger}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", healthzHandler)
	r.Get("/", s.pageHandler)
	r.Get("/widget", s.widgetHandler)
	r.Get("/api/v1/inspect", s.inspectHandler)

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Serving previews on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	widget, err := s.build(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := widget.RenderPage(w, pageTitle); err != nil {
		s.loggerFor(r).Warnf("Write page: %v", err)
	}
}

func (s *Server) widgetHandler(w http.ResponseWriter, r *http.Request) {
	widget, err := s.build(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := widget.Render(w); err != nil {
		s.loggerFor(r).Warnf("Write fragment: %v", err)
	}
}

func (s *Server) inspectHandler(w http.ResponseWriter, r *http.Request) {
	widget, err := s.build(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	className := r.URL.Query().Get("class")
	writeJSON(w, http.StatusOK, logo.Report{
		Input:  className,
		Tokens: classes.Explain(className),
		Widget: widget,
	})
}

// build validates the class query parameter and builds the widget for it.
func (s *Server) build(r *http.Request) (logo.Widget, error) {
	ctx := r.Context()
	className := r.URL.Query().Get("class")
	if err := errors.ValidateClassString(className); err != nil {
		observability.Widget().OnRejected(ctx, className, err)
		return logo.Widget{}, err
	}

	start := time.Now()
	widget := logo.Build(className, s.widgetOptions(r)...)
	observability.Widget().OnBuild(ctx, className, widget.Placement.String(), time.Since(start))
	return widget, nil
}

func (s *Server) widgetOptions(r *http.Request) []logo.Option {
	return []logo.Option{
		logo.WithConfig(s.config),
		logo.WithLogger(s.loggerFor(r)),
	}
}

type errorResponse struct {
	Error   errors.Code `json:"error"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.loggerFor(r).Debugf("Rejected request: %v", err)
	writeJSON(w, status, errorResponse{Error: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
