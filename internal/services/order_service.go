package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/jungleyourself/internal/cart"
	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/models"
)

// ErrEmptyCart is returned when checking out with no cart lines.
var ErrEmptyCart = errors.New("order: cart is empty")

// ErrInvalidCustomer is returned when the shipping details are incomplete.
var ErrInvalidCustomer = errors.New("order: invalid customer details")

// Customer holds the shipping details collected at checkout. Nothing is
// stored; the details only travel into the confirmation and notification.
type Customer struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

func (c Customer) validate() error {
	if c.Name == "" || c.Address == "" || c.City == "" {
		return ErrInvalidCustomer
	}
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidCustomer
	}
	return nil
}

// Order is a simulated checkout result. Nothing is charged; the order is
// numbered, notified and the cart cleared.
type Order struct {
	OrderNumber  string                  `json:"order_number"`
	Customer     Customer                `json:"customer"`
	Items        []OrderLine             `json:"items"`
	Subtotal     float64                 `json:"subtotal"`
	Shipping     models.ShippingEstimate `json:"shipping"`
	FreeShipping bool                    `json:"free_shipping"`
	Total        float64                 `json:"total"`
	PlacedAt     time.Time               `json:"placed_at"`
}

// OrderLine is a priced snapshot of one cart line.
type OrderLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderService turns the cart into simulated orders.
type OrderService struct {
	catalog               *catalog.Store
	cart                  *cart.Store
	telegram              *TelegramService
	analytics             *Analytics
	freeShippingThreshold float64
}

// NewOrderService wires the checkout flow.
func NewOrderService(cat *catalog.Store, cartStore *cart.Store, telegram *TelegramService, analytics *Analytics, freeShippingThreshold float64) *OrderService {
	return &OrderService{
		catalog:               cat,
		cart:                  cartStore,
		telegram:              telegram,
		analytics:             analytics,
		freeShippingThreshold: freeShippingThreshold,
	}
}

// Checkout snapshots the cart into an order, applies the free shipping
// threshold, notifies the admin channel and clears the cart. The cart is
// left untouched on error.
func (s *OrderService) Checkout(customer Customer) (*Order, error) {
	if err := customer.validate(); err != nil {
		return nil, err
	}
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	s.analytics.BeginCheckout(s.cart.Total(), s.cart.ItemCount())

	order := &Order{
		OrderNumber: newOrderNumber(),
		Customer:    customer,
		Subtotal:    s.cart.Total(),
		Shipping:    s.cart.ShippingEstimate(),
		PlacedAt:    time.Now(),
	}
	for _, item := range items {
		p, ok := s.catalog.ProductByID(item.ProductID)
		if !ok {
			continue
		}
		order.Items = append(order.Items, OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  item.Quantity,
			Price:     p.Price,
		})
	}

	order.FreeShipping = order.Subtotal >= s.freeShippingThreshold
	order.Total = order.Subtotal
	if !order.FreeShipping {
		order.Total += order.Shipping.Cost
	}

	if err := s.cart.Clear(); err != nil {
		return nil, err
	}

	s.notify(order)
	s.analytics.Purchase(order.OrderNumber, order.Total, s.countUnits(order))

	return order, nil
}

func (s *OrderService) notify(order *Order) {
	if s.telegram == nil {
		return
	}
	notification := OrderNotification{
		OrderNumber:  order.OrderNumber,
		CustomerName: order.Customer.Name,
		Subtotal:     order.Subtotal,
		ShippingCost: order.Shipping.Cost,
		Total:        order.Total,
		FreeShipping: order.FreeShipping,
	}
	for _, line := range order.Items {
		notification.Items = append(notification.Items, OrderItemNotification{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	// Notification failure must not fail the order.
	_ = s.telegram.NotifyNewOrder(notification)
}

func (s *OrderService) countUnits(order *Order) int {
	count := 0
	for _, line := range order.Items {
		count += line.Quantity
	}
	return count
}

// newOrderNumber builds a short human-readable order reference.
func newOrderNumber() string {
	fragment := strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
	return "JY-" + fragment
}
