package tests

import (
	"context"
	"fmt"
	"sort"

	"bakery/pkg/domain/model"
	"bakery/pkg/domain/service"
)

var _ model.OrderRepository = &mockOrderRepository{}

type mockOrderRepository struct {
	store  map[int64]*model.Order
	lastID int64
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{store: make(map[int64]*model.Order)}
}

func (m *mockOrderRepository) Find(_ context.Context, id int64) (*model.Order, error) {
	if order, ok := m.store[id]; ok {
		clone := *order
		return &clone, nil
	}
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) FindAll(_ context.Context) ([]model.Order, error) {
	return m.filter(func(*model.Order) bool { return true }), nil
}

func (m *mockOrderRepository) FindByOwner(_ context.Context, userID int64) ([]model.Order, error) {
	return m.filter(func(o *model.Order) bool { return o.UserID == userID }), nil
}

func (m *mockOrderRepository) filter(keep func(*model.Order) bool) []model.Order {
	orders := []model.Order{}
	for _, order := range m.store {
		if keep(order) {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

func (m *mockOrderRepository) Create(_ context.Context, order *model.Order) error {
	m.lastID++
	order.ID = m.lastID
	stored := *order
	m.store[order.ID] = &stored
	return nil
}

func (m *mockOrderRepository) Update(_ context.Context, order *model.Order) error {
	if _, ok := m.store[order.ID]; !ok {
		return model.ErrOrderNotFound
	}
	stored := *order
	m.store[order.ID] = &stored
	return nil
}

func (m *mockOrderRepository) Delete(_ context.Context, id int64) error {
	if _, ok := m.store[id]; !ok {
		return model.ErrOrderNotFound
	}
	delete(m.store, id)
	return nil
}

var _ model.ProductRepository = &mockProductRepository{}

type mockProductRepository struct {
	store  map[int64]*model.Product
	lastID int64
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{store: make(map[int64]*model.Product)}
}

func (m *mockProductRepository) add(name string, prepDays int) *model.Product {
	product := &model.Product{Name: name, Description: name + " from the oven", PriceCents: 2500, PrepDays: prepDays}
	_ = m.Create(context.Background(), product)
	return product
}

func (m *mockProductRepository) Find(_ context.Context, id int64) (*model.Product, error) {
	if product, ok := m.store[id]; ok {
		clone := *product
		return &clone, nil
	}
	return nil, model.ErrProductNotFound
}

func (m *mockProductRepository) FindAll(_ context.Context) ([]model.Product, error) {
	products := []model.Product{}
	for _, product := range m.store {
		products = append(products, *product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (m *mockProductRepository) Create(_ context.Context, product *model.Product) error {
	for _, existing := range m.store {
		if existing.Name == product.Name {
			return &model.ConflictError{Field: "name", Reason: "already exists"}
		}
	}
	m.lastID++
	product.ID = m.lastID
	stored := *product
	m.store[product.ID] = &stored
	return nil
}

func (m *mockProductRepository) Update(_ context.Context, product *model.Product) error {
	if _, ok := m.store[product.ID]; !ok {
		return model.ErrProductNotFound
	}
	stored := *product
	m.store[product.ID] = &stored
	return nil
}

func (m *mockProductRepository) Delete(_ context.Context, id int64) error {
	if _, ok := m.store[id]; !ok {
		return model.ErrProductNotFound
	}
	delete(m.store, id)
	return nil
}

var _ model.UserRepository = &mockUserRepository{}

type mockUserRepository struct {
	store  map[int64]*model.User
	lastID int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{store: make(map[int64]*model.User)}
}

func (m *mockUserRepository) Find(_ context.Context, id int64) (*model.User, error) {
	if user, ok := m.store[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range m.store {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) Create(_ context.Context, user *model.User) error {
	for _, existing := range m.store {
		if existing.Email == user.Email {
			return &model.ConflictError{Field: "email", Reason: "already exists"}
		}
	}
	m.lastID++
	user.ID = m.lastID
	stored := *user
	m.store[user.ID] = &stored
	return nil
}

var _ model.CommentRepository = &mockCommentRepository{}

type mockCommentRepository struct {
	store  map[int64]*model.Comment
	lastID int64
}

func newMockCommentRepository() *mockCommentRepository {
	return &mockCommentRepository{store: make(map[int64]*model.Comment)}
}

func (m *mockCommentRepository) Find(_ context.Context, id int64) (*model.Comment, error) {
	if comment, ok := m.store[id]; ok {
		clone := *comment
		return &clone, nil
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) FindByProduct(_ context.Context, productID int64) ([]model.Comment, error) {
	comments := []model.Comment{}
	for _, comment := range m.store {
		if comment.ProductID == productID {
			comments = append(comments, *comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (m *mockCommentRepository) Create(_ context.Context, comment *model.Comment) error {
	m.lastID++
	comment.ID = m.lastID
	stored := *comment
	m.store[comment.ID] = &stored
	return nil
}

func (m *mockCommentRepository) Update(_ context.Context, comment *model.Comment) error {
	if _, ok := m.store[comment.ID]; !ok {
		return model.ErrCommentNotFound
	}
	stored := *comment
	m.store[comment.ID] = &stored
	return nil
}

func (m *mockCommentRepository) Delete(_ context.Context, id int64) error {
	if _, ok := m.store[id]; !ok {
		return model.ErrCommentNotFound
	}
	delete(m.store, id)
	return nil
}

type mockPasswordManager struct{}

func (m *mockPasswordManager) Hash(pwd string) (string, error) {
	return fmt.Sprintf("%s-hashed", pwd), nil
}

func (m *mockPasswordManager) Check(hashed, pwd string) (bool, error) {
	return hashed == fmt.Sprintf("%s-hashed", pwd), nil
}

type mockTokenIssuer struct{}

func (m *mockTokenIssuer) Issue(userID int64) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

type fixedClock struct {
	today model.Date
}

func (c *fixedClock) Today() model.Date { return c.today }

var _ service.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}
