package cart

import (
	"encoding/json"
	"math"
	"sync"

	"gorm.io/gorm"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/database"
	"github.com/example/jungleyourself/internal/models"
)

// storageKey is the cache key the cart document is persisted under.
const storageKey = "jungle-yourself-cart"

// schemaVersion guards the persisted document. Carts written by an older
// layout are discarded rather than migrated; a lost cart is cheaper than
// a corrupted one.
const schemaVersion = 1

// Shipping ladder by total cart weight in kg. Above the last step the
// cost grows by an increment per started 25 kg block.
const (
	shipStep1Limit = 5
	shipStep2Limit = 20
	shipStep3Limit = 50

	shipStep1Cost = 9.95
	shipStep2Cost = 19.95
	shipStep3Cost = 34.95
	shipBaseCost  = 49.95

	shipBlockKg   = 25
	shipBlockCost = 15
)

type cartDocument struct {
	SchemaVersion int               `json:"schema_version"`
	Items         []models.CartItem `json:"items"`
}

// Store holds the cart lines, keyed by product id, and mirrors every
// mutation to the local cache so the cart survives restarts. All methods
// are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Store
	db      *gorm.DB
	items   []models.CartItem
}

// NewStore builds a cart over the catalog, restoring any persisted lines.
// Lines referencing products no longer in the catalog are dropped on
// load. db may be nil, in which case the cart is memory-only.
func NewStore(cat *catalog.Store, db *gorm.DB) (*Store, error) {
	s := &Store{catalog: cat, db: db}
	if db == nil {
		return s, nil
	}

	raw, ok, err := database.Get(db, storageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s, nil
	}

	var doc cartDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil || doc.SchemaVersion != schemaVersion {
		// Unreadable or stale document: start fresh.
		return s, database.Delete(db, storageKey)
	}
	for _, item := range doc.Items {
		if _, exists := cat.ProductByID(item.ProductID); exists && item.Quantity > 0 {
			s.items = append(s.items, item)
		}
	}
	return s, nil
}

// AddItem adds quantity units of a product, merging with an existing
// line. quantity must be positive and the product must exist.
func (s *Store) AddItem(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if _, ok := s.catalog.ProductByID(productID); !ok {
		return ErrUnknownProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += quantity
			return s.persist()
		}
	}
	s.items = append(s.items, models.CartItem{ProductID: productID, Quantity: quantity})
	return s.persist()
}

// RemoveItem deletes a line. Removing an absent product is a no-op.
func (s *Store) RemoveItem(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the
// line, matching RemoveItem.
func (s *Store) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return s.persist()
		}
	}
	return ErrUnknownProduct
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persist()
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the merchandise total in EUR, before shipping.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		if p, ok := s.catalog.ProductByID(item.ProductID); ok {
			total += p.Price * float64(item.Quantity)
		}
	}
	return total
}

// ItemCount returns the total number of units across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// ShippingEstimate returns the cart weight and the ladder shipping cost.
// Free-shipping thresholds are a checkout concern and not applied here.
func (s *Store) ShippingEstimate() models.ShippingEstimate {
	s.mu.Lock()
	defer s.mu.Unlock()
	var weight float64
	for _, item := range s.items {
		if p, ok := s.catalog.ProductByID(item.ProductID); ok {
			weight += p.WeightPerUnit * float64(item.Quantity)
		}
	}
	return models.ShippingEstimate{Weight: weight, Cost: CostForWeight(weight)}
}

// CostForWeight maps a total weight in kg to the shipping ladder.
func CostForWeight(weight float64) float64 {
	switch {
	case weight <= shipStep1Limit:
		return shipStep1Cost
	case weight <= shipStep2Limit:
		return shipStep2Cost
	case weight <= shipStep3Limit:
		return shipStep3Cost
	default:
		blocks := math.Ceil((weight - shipStep3Limit) / shipBlockKg)
		return shipBaseCost + blocks*shipBlockCost
	}
}

// persist mirrors the current lines to the cache. Callers hold s.mu.
func (s *Store) persist() error {
	if s.db == nil {
		return nil
	}
	doc := cartDocument{SchemaVersion: schemaVersion, Items: s.items}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return database.Set(s.db, storageKey, string(raw))
}
