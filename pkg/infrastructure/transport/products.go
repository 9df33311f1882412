package transport

import (
	"fmt"
	"math"
	"net/http"

	"bakery/pkg/domain/model"
	"bakery/pkg/domain/service"
)

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PrepDays    int     `json:"prep_days"`
}

func newProductResponse(p *model.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       float64(p.PriceCents) / 100,
		PrepDays:    p.PrepDays,
	}
}

type productRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	PrepDays    *int     `json:"prep_days"`
}

func (req productRequest) patch() service.ProductPatch {
	patch := service.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		PrepDays:    req.PrepDays,
	}
	if req.Price != nil {
		cents := toCents(*req.Price)
		patch.PriceCents = &cents
	}
	return patch
}

func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.services.Products.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]productResponse, 0, len(products))
	for i := range products {
		resp = append(resp, newProductResponse(&products[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.services.Products.GetProduct(r.Context(), pathID(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newProductResponse(product))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var draft service.ProductDraft
	if req.Name != nil {
		draft.Name = *req.Name
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.Price != nil {
		draft.PriceCents = toCents(*req.Price)
	}
	if req.PrepDays != nil {
		draft.PrepDays = *req.PrepDays
	}

	product, err := h.services.Products.CreateProduct(r.Context(), subjectFrom(r.Context()), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newProductResponse(product))
}

func (h *Handler) editProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	product, err := h.services.Products.EditProduct(r.Context(), subjectFrom(r.Context()), pathID(r, "id"), req.patch())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newProductResponse(product))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	if err := h.services.Products.DeleteProduct(r.Context(), subjectFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Product %d deleted successfully", id)})
}
