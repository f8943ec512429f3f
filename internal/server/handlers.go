package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/shouni/hairfit-kit/pkg/domain"
	"github.com/shouni/hairfit-kit/pkg/imgutil"
	"github.com/shouni/hairfit-kit/pkg/session"
)

const maxValueBodyBytes = 4 << 10

type sessionResponse struct {
	ID string `json:"id"`
	session.View
}

type valueRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawGender := strings.TrimSpace(q.Get("gender"))
	rawCategory := strings.TrimSpace(q.Get("category"))
	if rawGender == "" && rawCategory == "" {
		writeJSON(w, http.StatusOK, s.catalog.Styles())
		return
	}

	gender := domain.GenderFemale
	if rawGender != "" {
		gender = domain.Gender(rawGender)
	}
	category := domain.CategoryCut
	if rawCategory != "" {
		category = domain.StyleCategory(rawCategory)
	}
	if !gender.Valid() || !category.Valid() {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid gender or category"})
		return
	}

	styles := s.catalog.FilterStyles(gender, category)
	if styles == nil {
		styles = []domain.HairStyle{}
	}
	writeJSON(w, http.StatusOK, styles)
}

func (s *Server) handleColors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Colors())
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, sess, err := s.store.Create()
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to create session", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{ID: id, View: sess.Snapshot()})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, View: sess.Snapshot()})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if sess.State() == session.StateProcessing {
		writeError(w, fmt.Errorf("%w: delete while processing", session.ErrInvalidState))
		return
	}
	s.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePhoto(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid multipart form"})
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "failed to read image"})
		return
	}

	mimeType := imgutil.DetectMIME(data)
	if !imgutil.IsImageMIME(mimeType) {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "unsupported image type"})
		return
	}

	if strings.TrimSpace(r.FormValue("source")) == "camera" {
		data, err = imgutil.PrepareCapture(data, imgutil.CaptureOptions{
			Mirror:  strings.TrimSpace(r.FormValue("facing")) != "environment",
			MaxSide: s.captureMaxSide,
		})
		if err != nil {
			slog.WarnContext(r.Context(), "failed to prepare camera capture", "error", err)
			writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid camera capture"})
			return
		}
		mimeType = imgutil.DefaultInputMIME
	}

	if err := sess.SetUserImage(imgutil.EncodeDataURI(mimeType, data)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, View: sess.Snapshot()})
}

func (s *Server) handleGender(w http.ResponseWriter, r *http.Request) {
	s.handleValue(w, r, func(ctx context.Context, sess *session.Session, value string) error {
		return sess.SetGender(domain.Gender(value))
	})
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	s.handleValue(w, r, func(ctx context.Context, sess *session.Session, value string) error {
		return sess.SetCategory(domain.StyleCategory(value))
	})
}

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	s.handleValue(w, r, func(ctx context.Context, sess *session.Session, value string) error {
		return sess.SelectStyle(ctx, value)
	})
}

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	s.handleValue(w, r, func(ctx context.Context, sess *session.Session, value string) error {
		return sess.SelectColor(value)
	})
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request, apply func(context.Context, *session.Session, string) error) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req valueRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxValueBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid json body"})
		return
	}

	if err := apply(r.Context(), sess, strings.TrimSpace(req.Value)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, View: sess.Snapshot()})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	// クライアントが切断しても生成は最後まで続ける
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), s.requestTimeout)
	defer cancel()

	if err := sess.Generate(ctx); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, View: sess.Snapshot()})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := sess.Reset(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, View: sess.Snapshot()})
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	dl, err := sess.SaveResult()
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("content-type", dl.MimeType)
	w.Header().Set("content-disposition", contentDisposition(dl.FileName))
	w.Header().Set("content-length", strconv.Itoa(len(dl.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(dl.Data); err != nil {
		slog.ErrorContext(r.Context(), "failed to write result image", "error", err)
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (string, *session.Session, bool) {
	id := mux.Vars(r)["id"]
	sess, ok := s.store.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, apiError{Error: "session not found"})
		return "", nil, false
	}
	return id, sess, true
}
