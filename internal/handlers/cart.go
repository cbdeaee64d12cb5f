package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/jungleyourself/internal/cart"
	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/services"
)

// CartHandler serves the cart and simulated checkout.
type CartHandler struct {
	catalog   *catalog.Store
	cart      *cart.Store
	orders    *services.OrderService
	analytics *services.Analytics
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(cat *catalog.Store, cartStore *cart.Store, orders *services.OrderService, analytics *services.Analytics) *CartHandler {
	return &CartHandler{catalog: cat, cart: cartStore, orders: orders, analytics: analytics}
}

type cartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// GetCart returns the cart lines with derived totals.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.cartView()})
}

// AddItem adds units of a product to the cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var payload cartItemRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	if err := h.cart.AddItem(payload.ProductID, payload.Quantity); err != nil {
		return cartError(err)
	}

	if p, ok := h.catalog.ProductByID(payload.ProductID); ok {
		h.analytics.AddToCart(p.ID, p.Name, payload.Quantity, p.Price)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": h.cartView()})
}

// UpdateItem sets a line quantity. Zero or below removes the line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var payload cartItemRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.ProductID = c.Params("id")

	if err := h.cart.UpdateQuantity(payload.ProductID, payload.Quantity); err != nil {
		return cartError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": h.cartView()})
}

// RemoveItem deletes a cart line.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")

	removed := 0
	for _, item := range h.cart.Items() {
		if item.ProductID == id {
			removed = item.Quantity
		}
	}

	if err := h.cart.RemoveItem(id); err != nil {
		return cartError(err)
	}
	if removed > 0 {
		h.analytics.RemoveFromCart(id, removed)
	}
	return c.JSON(fiber.Map{"success": true, "data": h.cartView()})
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.cart.Clear(); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": h.cartView()})
}

// GetShipping returns the weight based shipping estimate.
func (h *CartHandler) GetShipping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.cart.ShippingEstimate()})
}

// Checkout turns the cart into a simulated order.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var customer services.Customer
	if err := c.BodyParser(&customer); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.orders.Checkout(customer)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
		case errors.Is(err, services.ErrInvalidCustomer):
			return fiber.NewError(fiber.StatusBadRequest, "name, email and shipping address are required")
		default:
			return err
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

func (h *CartHandler) cartView() fiber.Map {
	return fiber.Map{
		"items":      h.cart.Items(),
		"total":      h.cart.Total(),
		"item_count": h.cart.ItemCount(),
		"shipping":   h.cart.ShippingEstimate(),
	}
}

func cartError(err error) error {
	switch {
	case errors.Is(err, cart.ErrUnknownProduct):
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	case errors.Is(err, cart.ErrInvalidQuantity):
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be at least 1")
	default:
		return err
	}
}
