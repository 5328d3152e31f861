package input

import "storefront-state/internal/domain"

// SessionService interface - Input port (use case)
// Defines what the presentation layer can do with the client session state
type SessionService interface {
	// Cart
	AddItem(product domain.Product, origin *domain.OriginEvent) error
	SetQuantity(productID string, quantity int)
	AdjustQuantity(productID string, delta int)
	RemoveItem(productID string)
	ClearCart()
	Count(productID string) int
	CartLines() []domain.CartLine
	CartCount() int
	TotalPrice() string

	// Session
	Login(record *domain.UserRecord) error
	Logout()
	Authenticated() bool
	DeductPoints(amount int)
	CurrentUser() *domain.UserSession
	Token() string

	// Points ledger
	AppendEntry(entry domain.PointLogEntry) (domain.PointLogEntry, error)
	PointLogs() []domain.PointLogEntry

	// Signals
	Notify(message string, severity domain.Severity)
	Notification() domain.Notification
	TriggerFly(origin *domain.OriginEvent, imageRef string)
	FlySignal() domain.FlySignal

	// Coupons
	ClaimCoupon(coupon domain.Coupon)
	ReplaceCoupons(coupons []domain.Coupon)
	Coupons() []domain.Coupon

	Snapshot() domain.Snapshot
}
