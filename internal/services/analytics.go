package services

import "github.com/rs/zerolog"

// Analytics records storefront events as structured log lines. The event
// names match the GA4-style vocabulary so a real collector can be swapped
// in behind the same calls.
type Analytics struct {
	log zerolog.Logger
}

// NewAnalytics returns an event tracker writing through the given logger.
func NewAnalytics(log zerolog.Logger) *Analytics {
	return &Analytics{log: log.With().Str("component", "analytics").Logger()}
}

func (a *Analytics) event(name string) *zerolog.Event {
	return a.log.Info().Str("event", name)
}

// ViewItem records a product detail view.
func (a *Analytics) ViewItem(productID, productName string, price float64) {
	a.event("view_item").
		Str("product_id", productID).
		Str("product_name", productName).
		Float64("price", price).
		Str("currency", "EUR").
		Send()
}

// AddToCart records items going into the cart.
func (a *Analytics) AddToCart(productID, productName string, quantity int, price float64) {
	a.event("add_to_cart").
		Str("product_id", productID).
		Str("product_name", productName).
		Int("quantity", quantity).
		Float64("price", price).
		Str("currency", "EUR").
		Send()
}

// RemoveFromCart records a cart line removal.
func (a *Analytics) RemoveFromCart(productID string, quantity int) {
	a.event("remove_from_cart").
		Str("product_id", productID).
		Int("quantity", quantity).
		Send()
}

// BeginCheckout records a checkout start.
func (a *Analytics) BeginCheckout(cartTotal float64, itemCount int) {
	a.event("begin_checkout").
		Float64("cart_total", cartTotal).
		Int("item_count", itemCount).
		Str("currency", "EUR").
		Send()
}

// Purchase records a completed order.
func (a *Analytics) Purchase(orderNumber string, total float64, items int) {
	a.event("purchase").
		Str("order_number", orderNumber).
		Float64("total", total).
		Int("items", items).
		Str("currency", "EUR").
		Send()
}

// Search records a search query and its hit count.
func (a *Analytics) Search(query string, resultsCount int) {
	a.event("search").
		Str("query", query).
		Int("results_count", resultsCount).
		Send()
}

// FilterApplied records one shop facet selection.
func (a *Analytics) FilterApplied(filterType, filterValue string) {
	a.event("filter_applied").
		Str("filter_type", filterType).
		Str("filter_value", filterValue).
		Send()
}

// WizardStarted records a kit finder session start.
func (a *Analytics) WizardStarted() {
	a.event("wizard_started").Send()
}

// WizardCompleted records a finished kit finder run.
func (a *Analytics) WizardCompleted(recommendations int) {
	a.event("wizard_completed").
		Int("recommendations", recommendations).
		Send()
}

// GuideViewed records a guide detail view.
func (a *Analytics) GuideViewed(guideID, guideTitle string) {
	a.event("guide_viewed").
		Str("guide_id", guideID).
		Str("guide_title", guideTitle).
		Send()
}
