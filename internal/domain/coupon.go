package domain

import "time"

// Coupon is a user coupon as returned by the remote coupon service
type Coupon struct {
	ID          string    `json:"id" validate:"required"`
	CouponID    string    `json:"couponId,omitempty"`
	Name        string    `json:"couponName" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	MinSpend    float64   `json:"minSpend" validate:"gte=0"`
	Status      string    `json:"status,omitempty"`
	ReceiveTime time.Time `json:"receiveTime,omitempty"`
}
