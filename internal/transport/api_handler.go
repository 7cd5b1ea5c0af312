// Package transport exposes the HTTP API.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/service/dailypost"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot"
	"go.uber.org/zap"
)

const defaultHistoryDays = 7

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type schedulerState struct {
	IsRunning bool `json:"isRunning"`
}

type statusResponse struct {
	Metrics      snapshot.Snapshot  `json:"metrics"`
	TweetPreview string             `json:"tweetPreview"`
	Cached       bool               `json:"cached"`
	Cache        snapshot.CacheInfo `json:"cache"`
	Scheduler    schedulerState     `json:"scheduler"`
	Timestamp    time.Time          `json:"timestamp"`
}

type postResponse struct {
	Success bool   `json:"success"`
	TweetID string `json:"tweetId"`
	Content string `json:"content"`
}

type historyResponse struct {
	Days      int                 `json:"days"`
	Snapshots []snapshot.Snapshot `json:"snapshots"`
}

type schedulerRequest struct {
	Action string `json:"action"`
}

type schedulerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// APIHandler serves the dashboard and bot control endpoints.
type APIHandler struct {
	service   PulseService
	scheduler Scheduler
	baseCtx   context.Context
	logger    *zap.Logger
	now       func() time.Time
}

// NewAPIHandler builds an APIHandler. baseCtx bounds background work started through the API.
func NewAPIHandler(baseCtx context.Context, service PulseService, scheduler Scheduler, logger *zap.Logger) (*APIHandler, error) {
	if service == nil {
		return nil, errors.New("pulse service is required")
	}
	if scheduler == nil {
		return nil, errors.New("scheduler is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{
		service:   service,
		scheduler: scheduler,
		baseCtx:   baseCtx,
		logger:    logger.Named("api"),
		now:       time.Now,
	}, nil
}

// Register mounts the API routes on mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/metrics", h.allow(h.metrics, http.MethodGet))
	mux.HandleFunc("/api/status", h.allow(h.status, http.MethodGet))
	mux.HandleFunc("/api/post-now", h.allow(h.postNow, http.MethodPost))
	mux.HandleFunc("/api/history", h.allow(h.history, http.MethodGet))
	mux.HandleFunc("/api/scheduler", h.allow(h.schedulerControl, http.MethodGet, http.MethodPost))
}

func (h *APIHandler) allow(next http.HandlerFunc, methods ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, m := range methods {
			if r.Method == m {
				next(w, r)
				return
			}
		}
		h.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	}
}

func (h *APIHandler) metrics(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Refresh(r.Context())
	if err != nil {
		h.fail(w, "Failed to fetch metrics", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *APIHandler) status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report, err := h.service.Preview(ctx)
	if err != nil {
		h.fail(w, "Failed to fetch status", err)
		return
	}
	info, err := h.service.CacheInfo(ctx)
	if err != nil {
		h.logger.Warn("cache info unavailable", zap.Error(err))
	}
	h.writeJSON(w, http.StatusOK, statusResponse{
		Metrics:      report.Snapshot,
		TweetPreview: report.Text,
		Cached:       report.Cached,
		Cache:        info,
		Scheduler:    schedulerState{IsRunning: h.scheduler.Running()},
		Timestamp:    h.now().UTC(),
	})
}

func (h *APIHandler) postNow(w http.ResponseWriter, r *http.Request) {
	// posting continues if the client disconnects
	published, err := h.service.PostNow(context.WithoutCancel(r.Context()))
	if err != nil {
		h.fail(w, "Failed to post tweet", err)
		return
	}
	h.writeJSON(w, http.StatusOK, postResponse{Success: true, TweetID: published.PostID, Content: published.Text})
}

func (h *APIHandler) history(w http.ResponseWriter, r *http.Request) {
	days := defaultHistoryDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > dailypost.MaxHistoryDays {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid days"})
			return
		}
		days = parsed
	}

	snaps, err := h.service.History(r.Context(), days)
	if errors.Is(err, dailypost.ErrHistoryDisabled) {
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "History not configured"})
		return
	}
	if err != nil {
		h.fail(w, "Failed to fetch history", err)
		return
	}
	if snaps == nil {
		snaps = []snapshot.Snapshot{}
	}
	h.writeJSON(w, http.StatusOK, historyResponse{Days: days, Snapshots: snaps})
}

func (h *APIHandler) schedulerControl(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.writeJSON(w, http.StatusOK, schedulerState{IsRunning: h.scheduler.Running()})
		return
	}

	var req schedulerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid action"})
		return
	}
	switch req.Action {
	case "start":
		msg := "Scheduler already running"
		if h.scheduler.Start(h.baseCtx) {
			msg = "Scheduler started"
		}
		h.writeJSON(w, http.StatusOK, schedulerResponse{Success: true, Message: msg})
	case "stop":
		h.scheduler.Stop()
		h.writeJSON(w, http.StatusOK, schedulerResponse{Success: true, Message: "Scheduler stopped"})
	default:
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid action"})
	}
}

func (h *APIHandler) fail(w http.ResponseWriter, message string, err error) {
	h.logger.Error(message, zap.Error(err))
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: message, Details: err.Error()})
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
