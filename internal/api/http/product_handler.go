package http

import (
	"net/http"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/service"

	"github.com/gorilla/mux"
)

type ProductHandler struct {
	catalogSvc   service.CatalogService
	inventorySvc service.InventoryService
}

func NewProductHandler(catalogSvc service.CatalogService, inventorySvc service.InventoryService) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc, inventorySvc: inventorySvc}
}

type productRequest struct {
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category" validate:"omitempty,oneof=CHAIRS TABLES TENTS DEFAULT"`
	Quantity       int    `json:"quantity" validate:"gte=0"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"gte=0"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	product, err := h.catalogSvc.CreateProduct(r.Context(), &domain.Product{
		Name:           req.Name,
		Category:       domain.ProductCategory(req.Category),
		Quantity:       req.Quantity,
		UnitPriceCents: req.UnitPriceCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogSvc.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.catalogSvc.UpdateProduct(r.Context(), &domain.Product{
		ID:             mux.Vars(r)["id"],
		Name:           req.Name,
		Category:       domain.ProductCategory(req.Category),
		Quantity:       req.Quantity,
		UnitPriceCents: req.UnitPriceCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type listProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int32            `json:"total"`
	Page     int32            `json:"page"`
	PageSize int32            `json:"page_size"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	products, total, err := h.catalogSvc.ListProducts(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listProductsResponse{Products: products, Total: total, Page: page, PageSize: pageSize})
}

// Availability reports owned versus rented stock. The rented count is derived
// from active orders at request time, never read from a stored counter.
func (h *ProductHandler) Availability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.inventorySvc.Availability(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availability)
}
