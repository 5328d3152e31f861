package application

import (
	"fmt"

	"storefront-state/internal/domain"

	"github.com/sirupsen/logrus"
)

// AddItem func - Use case: add one unit of a product to the cart.
// Fires the fly signal when origin has a position, otherwise a notification.
func (s *SessionContainer) AddItem(product domain.Product, origin *domain.OriginEvent) error {
	if err := s.validator.ValidateStruct(product); err != nil {
		logrus.Warnf("Ignoring add to cart with invalid product: id=%q, err=%v", product.ID, err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidProduct, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.cart.Add(product, s.opts.PlaceholderImage)
	s.saveCart()

	if point, ok := origin.Center(); ok {
		s.triggerFlyLocked(point, line.ImageURL)
	} else {
		s.notifyLocked(fmt.Sprintf("Added %s to your cart", product.Name), domain.SeveritySuccess)
	}
	return nil
}

// SetQuantity func - Use case: set a line's quantity, removing it when quantity <= 0.
// Unknown product ids are ignored without a storage write.
func (s *SessionContainer) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setQuantityLocked(productID, quantity)
}

func (s *SessionContainer) setQuantityLocked(productID string, quantity int) {
	if !s.cart.SetQuantity(productID, quantity) {
		logrus.Debugf("Ignoring quantity change for product not in cart: id=%s", productID)
		return
	}
	s.saveCart()
}

// AdjustQuantity func - Use case: stepper control, quantity += delta
func (s *SessionContainer) AdjustQuantity(productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.cart.Quantity(productID)
	if current == 0 {
		logrus.Debugf("Ignoring quantity adjustment for product not in cart: id=%s", productID)
		return
	}
	s.setQuantityLocked(productID, current+delta)
}

// RemoveItem func - Use case: drop a line; persists even when the id is absent
func (s *SessionContainer) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	s.saveCart()
}

// ClearCart func - Use case: empty the cart
func (s *SessionContainer) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.saveCart()
}

// Count returns the quantity of a product in the cart or 0
func (s *SessionContainer) Count(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Quantity(productID)
}

// CartLines returns the cart lines in add order
func (s *SessionContainer) CartLines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// CartCount returns the total number of units in the cart
func (s *SessionContainer) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// TotalPrice returns the cart total with two decimals
func (s *SessionContainer) TotalPrice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FormatPrice(s.cart.Total())
}

// saveCart is best effort; the in-memory cart stays authoritative
func (s *SessionContainer) saveCart() {
	_ = s.persist(s.keys.Cart, s.cart.Lines())
}
