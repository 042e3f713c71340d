package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tatini-menu/insights-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Insights service.InsightsInterface
}

func NewHandler(svc service.InsightsInterface) *Handler {
	return &Handler{Insights: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "insights-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/insights/dishes", h.getTopDishes).Methods("GET")
	r.HandleFunc("/api/insights/channels", h.getChannels).Methods("GET")
}

func (h *Handler) getTopDishes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	data, err := h.Insights.TopDishes(r.Context(), r.URL.Query().Get("date"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getChannels(w http.ResponseWriter, r *http.Request) {
	data, err := h.Insights.Channels(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidDate) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
