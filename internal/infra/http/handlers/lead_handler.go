package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/gustavoantunes/bridalcover-crm/internal/infra/http/middleware"
	"github.com/gustavoantunes/bridalcover-crm/internal/usecase"
)

type LeadHandler struct {
	Register      *usecase.RegisterLeadUseCase
	Get           *usecase.GetLeadUseCase
	List          *usecase.ListLeadsUseCase
	Update        *usecase.UpdateLeadUseCase
	Delete        *usecase.DeleteLeadUseCase
	RecordAttempt *usecase.RecordContactAttemptUseCase
	Convert       *usecase.ConvertLeadUseCase
	MarkLost      *usecase.MarkLeadLostUseCase

	rateLimiter *RateLimiter
}

func NewLeadHandler(
	register *usecase.RegisterLeadUseCase,
	get *usecase.GetLeadUseCase,
	list *usecase.ListLeadsUseCase,
	update *usecase.UpdateLeadUseCase,
	del *usecase.DeleteLeadUseCase,
	recordAttempt *usecase.RecordContactAttemptUseCase,
	convert *usecase.ConvertLeadUseCase,
	markLost *usecase.MarkLeadLostUseCase,
) *LeadHandler {
	return &LeadHandler{
		Register:      register,
		Get:           get,
		List:          list,
		Update:        update,
		Delete:        del,
		RecordAttempt: recordAttempt,
		Convert:       convert,
		MarkLost:      markLost,
		rateLimiter:   NewRateLimiter(30, time.Minute), // 30 req/min por IP
	}
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError traduz os erros do usecase para status HTTP: validação vira 400,
// lead ausente 404, conflitos de estado 409 e o resto 500.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case usecase.CodeLeadNotFound:
			status = http.StatusNotFound
		case usecase.CodeInvalidTransition, usecase.CodeInvalidConversion, usecase.CodeOwnershipMismatch:
			status = http.StatusConflict
		}
		writeJSON(w, status, ErrorResponse{Code: domainErr.Code, Message: domainErr.Message})
		return
	}

	logrus.WithError(err).Error("erro inesperado no handler")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	})
}

func (h *LeadHandler) RegisterLead(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, ErrorResponse{
			Code:    "RATE_LIMITED",
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.RegisterLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "INVALID_JSON", Message: "Invalid JSON"})
		return
	}

	out, err := h.Register.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadRegistered(out.Source)
	writeJSON(w, http.StatusCreated, out)
}

func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	out, err := h.Get.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	out, err := h.List.Execute(r.Context(), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "INVALID_JSON", Message: "Invalid JSON"})
		return
	}

	out, err := h.Update.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := h.Delete.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) RecordContactAttempt(w http.ResponseWriter, r *http.Request) {
	var input usecase.RecordContactAttemptInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "INVALID_JSON", Message: "Invalid JSON"})
		return
	}

	out, err := h.RecordAttempt.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordContactAttempt(input.Channel, input.Result)
	writeJSON(w, http.StatusCreated, out)
}

func (h *LeadHandler) ConvertLead(w http.ResponseWriter, r *http.Request) {
	out, err := h.Convert.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadConverted()
	writeJSON(w, http.StatusOK, out)
}

type MarkLostRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (h *LeadHandler) MarkLeadLost(w http.ResponseWriter, r *http.Request) {
	var req MarkLostRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "INVALID_JSON", Message: "Invalid JSON"})
			return
		}
	}

	out, err := h.MarkLost.Execute(r.Context(), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadLost()
	writeJSON(w, http.StatusOK, out)
}

type ScoreResponse struct {
	LeadID             string `json:"lead_id"`
	Status             string `json:"status"`
	QualificationScore int    `json:"qualification_score"`
}

func (h *LeadHandler) GetQualificationScore(w http.ResponseWriter, r *http.Request) {
	out, err := h.Get.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ScoreResponse{
		LeadID:             out.ID,
		Status:             out.Status,
		QualificationScore: out.QualificationScore,
	})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
