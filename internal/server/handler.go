// Package server exposes the session engine over HTTP and WebSocket.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/verte-zerg/typemaster/internal/logger"
	"github.com/verte-zerg/typemaster/internal/model"
)

const requestTimeout = 10 * time.Second

// Handler holds HTTP handlers and dependencies.
type Handler struct {
	engine   Engine
	log      *logger.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a new HTTP handler.
func NewHandler(engine Engine, log *logger.Logger) *Handler {
	return &Handler{
		engine: engine,
		log:    log,
		// CheckOrigin stays nil so browsers from other hosts are refused.
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Router returns the full router with the middleware stack applied.
func (h *Handler) Router() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.New(h.log.Writer(), "", 0),
		NoColor: true,
	}))
	router.Use(middleware.Recoverer)
	router.Mount("/", h.Routes())
	return router
}

// Routes sets up all HTTP routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/v1/session", func(r chi.Router) {
		// The stream outlives any request timeout.
		r.Get("/stream", h.Stream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))
			r.Get("/", h.GetSession)
			r.Post("/start", h.StartSession)
			r.Post("/reset", h.ResetSession)
			r.Post("/input", h.SubmitInput)
			r.Put("/time-limit", h.SetTimeLimit)
			r.Put("/mode", h.SetMode)
		})
	})

	r.Get("/healthz", h.Health)

	return r
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetSession handles GET /v1/session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.engine.Snapshot())
}

// StartSession handles POST /v1/session/start.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.engine.Start())
}

// ResetSession handles POST /v1/session/reset.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.engine.Reset())
}

// SubmitInput handles POST /v1/session/input.
func (h *Handler) SubmitInput(w http.ResponseWriter, r *http.Request) {
	var req InputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, h.engine.Submit(req.Text))
}

// SetTimeLimit handles PUT /v1/session/time-limit.
func (h *Handler) SetTimeLimit(w http.ResponseWriter, r *http.Request) {
	var req TimeLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Seconds <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid seconds", "seconds must be greater than 0")
		return
	}
	snap := h.engine.SetTimeLimit(req.Seconds)
	if snap.Status == model.StatusRunning {
		h.respondError(w, http.StatusConflict, "session running", "time limit cannot change while a session is running")
		return
	}
	h.respondJSON(w, http.StatusOK, snap)
}

// SetMode handles PUT /v1/session/mode.
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req ModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid mode", err.Error())
		return
	}
	snap := h.engine.SetMode(mode)
	if snap.Status == model.StatusRunning {
		h.respondError(w, http.StatusConflict, "session running", "mode cannot change while a session is running")
		return
	}
	h.respondJSON(w, http.StatusOK, snap)
}

// respondJSON sends a JSON response.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("encode response", logger.Err(err))
	}
}

// respondError sends an error response.
func (h *Handler) respondError(w http.ResponseWriter, status int, errorMsg, message string) {
	h.respondJSON(w, status, ErrorResponse{
		Error:   errorMsg,
		Message: message,
	})
}
