package application

import (
	"fmt"

	"storefront-state/internal/domain"
)

// ClaimCoupon func - Use case: acknowledge a coupon claimed on the remote service.
// The coupon is not inserted locally; the list is re-fetched and installed
// with ReplaceCoupons so it cannot hold duplicates.
func (s *SessionContainer) ClaimCoupon(coupon domain.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifyLocked(fmt.Sprintf("Coupon %s claimed, refresh the list to see it", coupon.Name), domain.SeveritySuccess)
}

// ReplaceCoupons func - Use case: install the coupon list fetched from the remote service
func (s *SessionContainer) ReplaceCoupons(coupons []domain.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons = make([]domain.Coupon, len(coupons))
	copy(s.coupons, coupons)
}

// Coupons returns the coupons of the current session
func (s *SessionContainer) Coupons() []domain.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.couponsLocked()
}

func (s *SessionContainer) couponsLocked() []domain.Coupon {
	coupons := make([]domain.Coupon, len(s.coupons))
	copy(coupons, s.coupons)
	return coupons
}
