package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"tatini-menu/menu-svc/internal/service"
	"tatini-menu/menu-svc/internal/session"

	"github.com/gorilla/mux"
)

// MaxQuantityDelta bounds a single quantity change from the stepper.
const MaxQuantityDelta = 99

type Handler struct {
	Menu     service.MenuServiceInterface
	Ordering service.OrderingServiceInterface
}

func NewHandler(menu service.MenuServiceInterface, ordering service.OrderingServiceInterface) *Handler {
	return &Handler{
		Menu:     menu,
		Ordering: ordering,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/venue", h.getVenue).Methods("GET")
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/dishes/{dishId}", h.getDish).Methods("GET")
	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables/{table}/qrcode", h.getTableQRCode).Methods("GET")
	r.HandleFunc("/api/review-link", h.getReviewLink).Methods("GET")

	s := r.PathPrefix("/api/session").Subrouter()
	s.Use(IdentityMiddleware)
	s.HandleFunc("", h.getSession).Methods("GET")
	s.HandleFunc("/table", h.selectTable).Methods("PUT")
	s.HandleFunc("/table", h.clearTable).Methods("DELETE")
	s.HandleFunc("/cart/items", h.addItem).Methods("POST")
	s.HandleFunc("/cart/items/{lineId}", h.changeQuantity).Methods("PATCH")
	s.HandleFunc("/cart/items/{lineId}/note", h.setLineNote).Methods("PUT")
	s.HandleFunc("/cart/note", h.setOrderNote).Methods("PUT")
	s.HandleFunc("/cart/open", h.openCart).Methods("POST")
	s.HandleFunc("/cart/close", h.closeCart).Methods("POST")
	s.HandleFunc("/order/waiter", h.showToWaiter).Methods("POST")
	s.HandleFunc("/order/whatsapp", h.whatsAppLink).Methods("GET")
	s.HandleFunc("/review/dismiss", h.dismissReview).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, response)
}

func (h *Handler) getVenue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Menu.Venue())
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Menu.Categories())
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dish, ok := h.Menu.Dish(mux.Vars(r)["dishId"])
	if !ok {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	writeJSON(w, dish)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]int{"table_count": h.Menu.TableCount()})
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	table, err := strconv.Atoi(mux.Vars(r)["table"])
	if err != nil {
		http.Error(w, "Invalid table number", http.StatusBadRequest)
		return
	}

	png, err := h.Menu.TableQRCode(table)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTable) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getReviewLink(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"url": h.Menu.ReviewLink()})
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromRequest(r)
	writeJSON(w, h.Ordering.View(r.Context(), id))
}

func (h *Handler) selectTable(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Table int `json:"table"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, _ := IdentityFromRequest(r)
	view, err := h.Ordering.SelectTable(r.Context(), id, payload.Table)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) clearTable(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromRequest(r)
	view, err := h.Ordering.ClearTable(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DishID  string `json:"dish_id"`
		AddonID string `json:"addon_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.DishID == "" {
		http.Error(w, "Missing dish_id", http.StatusBadRequest)
		return
	}

	id, _ := IdentityFromRequest(r)
	view, err := h.Ordering.AddItem(r.Context(), id, payload.DishID, payload.AddonID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Delta < -MaxQuantityDelta || payload.Delta > MaxQuantityDelta {
		http.Error(w, "Invalid delta", http.StatusBadRequest)
		return
	}

	id, _ := IdentityFromRequest(r)
	view, err := h.Ordering.ChangeQuantity(r.Context(), id, mux.Vars(r)["lineId"], payload.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

type notePayload struct {
	Note string `json:"note"`
}

func (h *Handler) setLineNote(w http.ResponseWriter, r *http.Request) {
	var payload notePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, _ := IdentityFromRequest(r)
	view, err := h.Ordering.SetLineNote(r.Context(), id, mux.Vars(r)["lineId"], payload.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) setOrderNote(w http.ResponseWriter, r *http.Request) {
	var payload notePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, _ := IdentityFromRequest(r)
	view, err := h.Ordering.SetOrderNote(r.Context(), id, payload.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) openCart(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromRequest(r)
	view, err := h.Ordering.OpenCart(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) closeCart(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromRequest(r)
	view, err := h.Ordering.CloseCart(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) showToWaiter(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromRequest(r)
	confirmation, err := h.Ordering.ShowToWaiter(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, confirmation)
}

func (h *Handler) whatsAppLink(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromRequest(r)
	link, err := h.Ordering.WhatsAppLink(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, link)
}

func (h *Handler) dismissReview(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromRequest(r)
	view, err := h.Ordering.DismissReview(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTable):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnknownDish), errors.Is(err, service.ErrUnknownAddon):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, session.ErrNoTable),
		errors.Is(err, session.ErrEmptyCart),
		errors.Is(err, session.ErrInvalidTransition),
		errors.Is(err, service.ErrAddonParentMissing):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
