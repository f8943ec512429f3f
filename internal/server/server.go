package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shouni/hairfit-kit/pkg/catalog"
	"github.com/shouni/hairfit-kit/pkg/session"
)

const (
	defaultMaxUploadBytes = 20 << 20
	defaultCaptureMaxSide = 1024
	defaultRequestTimeout = 180 * time.Second
)

// Options は HTTP サーバーの依存関係と制限値です。
type Options struct {
	Addr           string
	Store          *session.Store
	Catalog        *catalog.Catalog
	Assets         fs.FS // /styles/ 配下を配信するルート。nil なら配信しない
	MaxUploadBytes int64
	CaptureMaxSide int
	RequestTimeout time.Duration
}

// Server は HairFit の JSON API です。
type Server struct {
	store          *session.Store
	catalog        *catalog.Catalog
	maxUploadBytes int64
	captureMaxSide int
	requestTimeout time.Duration

	handler http.Handler
	srv     *http.Server
}

type apiError struct {
	Error string `json:"error"`
}

// New はルーティングを組み立てた Server を作ります。
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, errors.New("session store is required")
	}
	s := &Server{
		store:          opts.Store,
		catalog:        opts.Catalog,
		maxUploadBytes: opts.MaxUploadBytes,
		captureMaxSide: opts.CaptureMaxSide,
		requestTimeout: opts.RequestTimeout,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = defaultMaxUploadBytes
	}
	if s.captureMaxSide <= 0 {
		s.captureMaxSide = defaultCaptureMaxSide
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/catalog/styles", s.handleStyles).Methods(http.MethodGet)
	router.HandleFunc("/api/catalog/colors", s.handleColors).Methods(http.MethodGet)

	router.HandleFunc("/api/sessions", s.handleCreateSession).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}", s.handleGetSession).Methods(http.MethodGet)
	router.HandleFunc("/api/sessions/{id}", s.handleDeleteSession).Methods(http.MethodDelete)
	router.HandleFunc("/api/sessions/{id}/photo", s.handlePhoto).Methods(http.MethodPut)
	router.HandleFunc("/api/sessions/{id}/gender", s.handleGender).Methods(http.MethodPut)
	router.HandleFunc("/api/sessions/{id}/category", s.handleCategory).Methods(http.MethodPut)
	router.HandleFunc("/api/sessions/{id}/style", s.handleStyle).Methods(http.MethodPut)
	router.HandleFunc("/api/sessions/{id}/color", s.handleColor).Methods(http.MethodPut)
	router.HandleFunc("/api/sessions/{id}/generate", s.handleGenerate).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}/reset", s.handleReset).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}/result", s.handleResult).Methods(http.MethodGet)

	if opts.Assets != nil {
		router.PathPrefix("/styles/").Handler(http.FileServer(http.FS(opts.Assets)))
	}

	s.handler = withLogging(router)
	s.srv = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// 生成は数十秒かかるため余裕を持たせる
		WriteTimeout: s.requestTimeout + 30*time.Second,
		IdleTimeout:  90 * time.Second,
	}
	return s, nil
}

// ServeHTTP は http.Handler を満たします。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe() error {
	slog.Info("web started", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down server")
	return s.srv.Shutdown(ctx)
}

// statusForError は session パッケージのエラーを HTTP ステータスに変換します。
func statusForError(err error) int {
	switch {
	case errors.Is(err, session.ErrInvalidState), errors.Is(err, session.ErrNotReady):
		return http.StatusConflict
	case errors.Is(err, session.ErrUnknownStyle), errors.Is(err, session.ErrUnknownColor),
		errors.Is(err, session.ErrInvalidOption):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNoResult):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, apiError{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write body to http response", "error", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("http", "method", r.Method, "path", r.URL.Path, "status", rec.status, "dur_ms", time.Since(start).Milliseconds())
	})
}

func contentDisposition(name string) string {
	return fmt.Sprintf("attachment; filename=%q", name)
}
