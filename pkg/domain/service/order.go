package service

import (
	"context"

	"bakery/pkg/domain/model"
)

// OrderDraft is a request to place a new order. A nil Quantity means 1.
type OrderDraft struct {
	ProductID          int64
	Quantity           *int
	Description        string
	DeliveryPickupDate model.Date
}

// OrderPatch is a partial update. Nil fields keep their stored values.
// DeliveryPickupDate holds the DD/MM/YYYY text as received; it is parsed only
// once the order is known to be editable by the subject.
type OrderPatch struct {
	ProductID          *int64
	Quantity           *int
	Status             *model.OrderStatus
	Description        *string
	DeliveryPickupDate *string
}

type OrderService interface {
	CreateOrder(ctx context.Context, subject model.Subject, draft OrderDraft) (*model.Order, error)
	EditOrder(ctx context.Context, subject model.Subject, orderID int64, patch OrderPatch) (*model.Order, error)
	DeleteOrder(ctx context.Context, subject model.Subject, orderID int64) error
	GetOrder(ctx context.Context, subject model.Subject, orderID int64) (*model.Order, error)
	ListOrders(ctx context.Context, subject model.Subject) ([]model.Order, error)
}

func NewOrderService(
	repo model.OrderRepository,
	products model.ProductRepository,
	clock Clock,
	dispatcher EventDispatcher,
) OrderService {
	return &orderService{
		repo:       repo,
		validator:  NewOrderValidator(products),
		clock:      clock,
		dispatcher: dispatcher,
	}
}

type orderService struct {
	repo       model.OrderRepository
	validator  *OrderValidator
	clock      Clock
	dispatcher EventDispatcher
}

func (s *orderService) CreateOrder(ctx context.Context, subject model.Subject, draft OrderDraft) (*model.Order, error) {
	today := s.clock.Today()

	quantity := model.OrderQuantity
	if draft.Quantity != nil {
		quantity = *draft.Quantity
	}
	if err := validateRequired("description", draft.Description); err != nil {
		return nil, err
	}
	if draft.DeliveryPickupDate.IsZero() {
		return nil, newValidationError("delivery_pickup_date", ErrRequired, "delivery_pickup_date is required")
	}
	if draft.ProductID == 0 {
		return nil, newValidationError("product_id", ErrRequired, "product_id is required")
	}

	product, err := s.validator.ValidateProductReference(ctx, draft.ProductID)
	if err != nil {
		return nil, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := ValidateDeliveryDate(draft.DeliveryPickupDate, today, product.PrepDays); err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:             subject.ID,
		ProductID:          product.ID,
		DateOrdered:        today,
		Quantity:           quantity,
		Status:             model.InQueue,
		Description:        draft.Description,
		DeliveryPickupDate: draft.DeliveryPickupDate,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.OrderPlaced{
		OrderID:            order.ID,
		UserID:             order.UserID,
		ProductID:          order.ProductID,
		DeliveryPickupDate: order.DeliveryPickupDate,
	})
	return order, nil
}

func (s *orderService) EditOrder(ctx context.Context, subject model.Subject, orderID int64, patch OrderPatch) (*model.Order, error) {
	order, err := s.repo.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !CanEdit(subject, order.UserID) {
		return nil, ErrNotAuthorized
	}
	if err := checkEditable(order); err != nil {
		return nil, err
	}

	oldStatus := order.Status
	revalidateDate := false

	if patch.ProductID != nil && *patch.ProductID != order.ProductID {
		order.ProductID = *patch.ProductID
		revalidateDate = true
	}
	if patch.Quantity != nil {
		if err := ValidateQuantity(*patch.Quantity); err != nil {
			return nil, err
		}
		order.Quantity = *patch.Quantity
	}
	if patch.Status != nil {
		if err := ValidateStatus(*patch.Status); err != nil {
			return nil, err
		}
		order.Status = *patch.Status
	}
	if patch.Description != nil {
		if err := validateRequired("description", *patch.Description); err != nil {
			return nil, err
		}
		order.Description = *patch.Description
	}
	if patch.DeliveryPickupDate != nil {
		date, err := model.ParseDate(*patch.DeliveryPickupDate)
		if err != nil {
			return nil, err
		}
		order.DeliveryPickupDate = date
		revalidateDate = true
	}

	product, err := s.validator.ValidateProductReference(ctx, order.ProductID)
	if err != nil {
		return nil, err
	}
	if revalidateDate {
		if err := ValidateDeliveryDate(order.DeliveryPickupDate, s.clock.Today(), product.PrepDays); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.OrderEdited{OrderID: order.ID, EditedBy: subject.ID})
	if order.Status != oldStatus {
		_ = s.dispatcher.Dispatch(model.OrderStatusChanged{
			OrderID:   order.ID,
			OldStatus: oldStatus,
			NewStatus: order.Status,
		})
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, subject model.Subject, orderID int64) error {
	order, err := s.repo.Find(ctx, orderID)
	if err != nil {
		return err
	}
	if !CanDelete(subject, order.UserID) {
		return ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, orderID); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.OrderDeleted{OrderID: orderID, DeletedBy: subject.ID})
	return nil
}

func (s *orderService) GetOrder(ctx context.Context, subject model.Subject, orderID int64) (*model.Order, error) {
	order, err := s.repo.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !CanView(subject, order.UserID) {
		return nil, ErrNotAuthorized
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, subject model.Subject) ([]model.Order, error) {
	if subject.IsAdmin {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByOwner(ctx, subject.ID)
}
