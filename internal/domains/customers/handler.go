package customers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sangkips/customer-service/internal/handlers"
)

const basePath = "/customers"

// maxBodyBytes caps customer request bodies.
const maxBodyBytes = 1 << 20

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterCustomerRoutes(r chi.Router) {
	r.Get("/", h.listCustomers)
	r.Post("/", h.createCustomer)
	r.Get("/{id}", h.getCustomer)
	r.Put("/{id}", h.updateCustomer)
	r.Delete("/{id}", h.deleteCustomer)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.GetAllCustomers(r.Context())
	if err != nil {
		handlers.RespondWithError(w, http.StatusInternalServerError, "CUSTOMERS_LIST_FAILED", "Failed to list customers")
		return
	}

	handlers.RespondWithJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCustomerID(w, r)
	if !ok {
		return
	}

	customer, found, err := h.svc.GetCustomerByID(r.Context(), id)
	if err != nil {
		handlers.RespondWithError(w, http.StatusInternalServerError, "CUSTOMER_GET_FAILED", "Failed to get customer")
		return
	}
	if !found {
		respondNotFound(w, id)
		return
	}

	handlers.RespondWithJSON(w, http.StatusOK, customer)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerDto
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.svc.CreateCustomer(r.Context(), req)
	if err != nil {
		handlers.RespondWithError(w, http.StatusInternalServerError, "CUSTOMER_CREATE_FAILED", "Failed to create customer")
		return
	}

	handlers.RespondCreated(w, fmt.Sprintf("%s/%d", basePath, customer.ID), customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCustomerID(w, r)
	if !ok {
		return
	}

	var req CustomerDto
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	if req.ID != id {
		handlers.RespondWithError(w, http.StatusBadRequest, "ID_MISMATCH",
			fmt.Sprintf("Path id %d does not match body id %d", id, req.ID))
		return
	}

	customer, found, err := h.svc.EditCustomer(r.Context(), req)
	if err != nil {
		handlers.RespondWithError(w, http.StatusInternalServerError, "CUSTOMER_UPDATE_FAILED", "Failed to update customer")
		return
	}
	if !found {
		respondNotFound(w, id)
		return
	}

	handlers.RespondWithJSON(w, http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCustomerID(w, r)
	if !ok {
		return
	}

	deleted, err := h.svc.DeleteCustomer(r.Context(), id)
	if err != nil {
		handlers.RespondWithError(w, http.StatusInternalServerError, "CUSTOMER_DELETE_FAILED", "Failed to delete customer")
		return
	}
	if !deleted {
		respondNotFound(w, id)
		return
	}

	handlers.RespondNoContent(w)
}

func parseCustomerID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_CUSTOMER_ID", "Invalid customer ID format")
		return 0, false
	}
	return int32(id), true
}

func respondNotFound(w http.ResponseWriter, id int32) {
	handlers.RespondWithError(w, http.StatusNotFound, "CUSTOMER_NOT_FOUND", fmt.Sprintf("Customer with ID %d not found", id))
}
