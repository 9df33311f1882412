package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bakery/pkg/domain/model"
	"bakery/pkg/domain/service"
)

type orderResponse struct {
	ID                 int64             `json:"id"`
	UserID             int64             `json:"user_id"`
	ProductID          int64             `json:"product_id"`
	DateOrdered        model.Date        `json:"date_ordered"`
	Quantity           int               `json:"quantity"`
	Status             model.OrderStatus `json:"status"`
	Description        string            `json:"description"`
	DeliveryPickupDate model.Date        `json:"delivery_pickup_date"`
}

func newOrderResponse(o *model.Order) orderResponse {
	return orderResponse{
		ID:                 o.ID,
		UserID:             o.UserID,
		ProductID:          o.ProductID,
		DateOrdered:        o.DateOrdered,
		Quantity:           o.Quantity,
		Status:             o.Status,
		Description:        o.Description,
		DeliveryPickupDate: o.DeliveryPickupDate,
	}
}

type createOrderRequest struct {
	ProductID          int64  `json:"product_id"`
	Quantity           *int   `json:"quantity"`
	Description        string `json:"description"`
	DeliveryPickupDate string `json:"delivery_pickup_date"`
}

type editOrderRequest struct {
	ProductID          *int64  `json:"product_id"`
	Quantity           *int    `json:"quantity"`
	Status             *string `json:"status"`
	Description        *string `json:"description"`
	DeliveryPickupDate *string `json:"delivery_pickup_date"`
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.services.Orders.ListOrders(r.Context(), subjectFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, newOrderResponse(&orders[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.services.Orders.GetOrder(r.Context(), subjectFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderResponse(order))
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	draft := service.OrderDraft{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		Description: req.Description,
	}
	if req.DeliveryPickupDate != "" {
		date, err := model.ParseDate(req.DeliveryPickupDate)
		if err != nil {
			writeError(w, err)
			return
		}
		draft.DeliveryPickupDate = date
	}

	order, err := h.services.Orders.CreateOrder(r.Context(), subjectFrom(r.Context()), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newOrderResponse(order))
}

func (h *Handler) editOrder(w http.ResponseWriter, r *http.Request) {
	var req editOrderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	patch := service.OrderPatch{
		ProductID:          req.ProductID,
		Quantity:           req.Quantity,
		Description:        req.Description,
		DeliveryPickupDate: req.DeliveryPickupDate,
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		patch.Status = &status
	}

	order, err := h.services.Orders.EditOrder(r.Context(), subjectFrom(r.Context()), pathID(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderResponse(order))
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	if err := h.services.Orders.DeleteOrder(r.Context(), subjectFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Order %d deleted successfully.", id)})
}

// pathID reads a numeric path variable; the route patterns only admit digits.
func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}
