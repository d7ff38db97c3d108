package http

import (
	"net/http"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/service"

	"github.com/gorilla/mux"
)

type ClientHandler struct {
	catalogSvc service.CatalogService
}

func NewClientHandler(catalogSvc service.CatalogService) *ClientHandler {
	return &ClientHandler{catalogSvc: catalogSvc}
}

type clientRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	client, err := h.catalogSvc.CreateClient(r.Context(), &domain.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.catalogSvc.GetClient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.catalogSvc.UpdateClient(r.Context(), &domain.Client{
		ID:      mux.Vars(r)["id"],
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type listClientsResponse struct {
	Clients  []domain.Client `json:"clients"`
	Total    int32           `json:"total"`
	Page     int32           `json:"page"`
	PageSize int32           `json:"page_size"`
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	clients, total, err := h.catalogSvc.ListClients(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listClientsResponse{Clients: clients, Total: total, Page: page, PageSize: pageSize})
}
