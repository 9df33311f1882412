package model

type OrderPlaced struct {
	OrderID            int64
	UserID             int64
	ProductID          int64
	DeliveryPickupDate Date
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type OrderEdited struct {
	OrderID  int64
	EditedBy int64
}

func (e OrderEdited) Type() string { return "OrderEdited" }

type OrderStatusChanged struct {
	OrderID   int64
	OldStatus OrderStatus
	NewStatus OrderStatus
}

func (e OrderStatusChanged) Type() string { return "OrderStatusChanged" }

type OrderDeleted struct {
	OrderID   int64
	DeletedBy int64
}

func (e OrderDeleted) Type() string { return "OrderDeleted" }

type ProductCreated struct {
	ProductID int64
	Name      string
}

func (e ProductCreated) Type() string { return "ProductCreated" }

type ProductPriceChanged struct {
	ProductID     int64
	OldPriceCents int64
	NewPriceCents int64
}

func (e ProductPriceChanged) Type() string { return "ProductPriceChanged" }

type ProductDeleted struct {
	ProductID int64
}

func (e ProductDeleted) Type() string { return "ProductDeleted" }

type UserRegistered struct {
	UserID    int64
	Email     string
	FirstName string
}

func (e UserRegistered) Type() string { return "UserRegistered" }

type CommentPosted struct {
	CommentID int64
	ProductID int64
	UserID    int64
}

func (e CommentPosted) Type() string { return "CommentPosted" }
