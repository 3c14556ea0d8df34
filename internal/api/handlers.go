// Package api exposes HTTP handlers for the wellness service.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"example.com/wellness/internal/domain"
)

const maxBodyBytes = 1 << 20

// Handler handles HTTP interactions.
type Handler struct {
	service *domain.Service
}

// NewHandler constructs Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes sets up routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.activities)
	mux.HandleFunc("/exercises", h.exercises)
	mux.HandleFunc("/exercises/", h.exercises)
	mux.HandleFunc("/custom-plan", h.customPlan)
	mux.HandleFunc("/custom-plan/", h.customPlan)
	mux.HandleFunc("/healthz", healthz)
}

// healthz returns an OK response for readiness probes.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// activities serves /activities/ and /activities/{name}/start.
func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	rest, ok := subpath(r.URL.Path, "/activities")
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
		return
	}
	if !requireGet(w, r) {
		return
	}
	if rest == "" {
		writeJSON(w, http.StatusOK, h.service.ListActivities(r.Context()))
		return
	}

	name, ok := nameBefore(rest, "start")
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
		return
	}
	msg, err := h.service.StartActivity(r.Context(), name)
	if err != nil {
		h.writeLookupError(w, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, StartActivityResponse{Message: msg})
}

// exercises serves /exercises/ and /exercises/{name}/details.
func (h *Handler) exercises(w http.ResponseWriter, r *http.Request) {
	rest, ok := subpath(r.URL.Path, "/exercises")
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
		return
	}
	if !requireGet(w, r) {
		return
	}
	if rest == "" {
		writeJSON(w, http.StatusOK, h.service.ListExerciseNames(r.Context()))
		return
	}

	name, ok := nameBefore(rest, "details")
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
		return
	}
	exercise, err := h.service.GetExercise(r.Context(), name)
	if err != nil {
		h.writeLookupError(w, err, "exercise not found")
		return
	}
	writeJSON(w, http.StatusOK, exercise)
}

func (h *Handler) customPlan(w http.ResponseWriter, r *http.Request) {
	if rest, _ := subpath(r.URL.Path, "/custom-plan"); rest != "" {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
		return
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req CustomPlanRequest
	if err := decodeBody(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	plan, err := h.service.CreateCustomPlan(r.Context(), req.Profile())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProfile) {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// decodeBody reads exactly one JSON value; anything after it is an error.
func decodeBody(body io.Reader, dst interface{}) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func (h *Handler) writeLookupError(w http.ResponseWriter, err error, detail string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", detail)
		return
	}
	writeError(w, http.StatusInternalServerError, "server_error", err.Error())
}

// subpath returns what follows prefix, with surrounding slashes removed.
// ok is false when path does not belong to prefix (e.g. "/exercisesX").
func subpath(path, prefix string) (string, bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path {
		return "", false
	}
	if rest != "" && rest[0] != '/' {
		return "", false
	}
	return strings.Trim(rest, "/"), true
}

// nameBefore splits "{name}/{action}" and returns name when the action matches.
func nameBefore(rest, action string) (string, bool) {
	i := strings.LastIndex(rest, "/")
	if i <= 0 || rest[i+1:] != action {
		return "", false
	}
	return rest[:i], true
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	return false
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]string{"type": code, "detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
