package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/profitlens/roi-master-api/internal/entity"
	"github.com/profitlens/roi-master-api/internal/infra/http/middleware"
	"github.com/profitlens/roi-master-api/internal/usecase"
)

// TrackHandler recebe os eventos do tracker.js das landing pages.
// O endpoint é aberto para o mundo, então carrega um rate limit por IP.
type TrackHandler struct {
	TrackUC     *usecase.TrackLeadUseCase
	rateLimiter *RateLimiter
}

func NewTrackHandler(uc *usecase.TrackLeadUseCase) *TrackHandler {
	return &TrackHandler{
		TrackUC:     uc,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min por IP
	}
}

func (h *TrackHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]string{
			"status":   "error",
			"mensagem": "Muitas requisições. Tente novamente em instantes.",
		})
		return
	}

	var input usecase.TrackLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if errs := usecase.ValidateTrackLeadInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	output, err := h.TrackUC.Execute(ctx, input)
	if err != nil {
		middleware.RecordStorageError("track")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.RecordLeadTracked(firstNonEmpty(input.UTMSource, entity.DefaultUTMSource))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(output)
}

func writeValidationErrors(w http.ResponseWriter, errs []usecase.ValidationError) {
	type fieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	out := make([]fieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, fieldError{Field: e.Field, Message: e.Message})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]any{"status": "error", "erros": out})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
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
