package http

type (
	// RectRequest struct - Bounding box of the element that started an action
	RectRequest struct {
		Left   float64 `json:"left"`
		Top    float64 `json:"top"`
		Width  float64 `json:"width" validate:"gte=0"`
		Height float64 `json:"height" validate:"gte=0"`
	}

	// AddItemRequest struct - HTTP request DTO for adding a product to the cart
	AddItemRequest struct {
		ID       string       `json:"id" validate:"required"`
		Name     string       `json:"name" validate:"max=200"`
		Price    float64      `json:"price" validate:"gte=0"`
		ImageURL string       `json:"imageUrl"`
		Origin   *RectRequest `json:"origin" validate:"omitempty"`
	}

	// QuantityRequest struct - HTTP request DTO for setting a quantity
	QuantityRequest struct {
		Quantity *int `json:"quantity" validate:"required"`
	}

	// AdjustRequest struct - HTTP request DTO for stepping a quantity
	AdjustRequest struct {
		Delta *int `json:"delta" validate:"required"`
	}

	// LoginRequest struct - HTTP request DTO carrying the user returned by the login call
	LoginRequest struct {
		UserID      string         `json:"id"`
		Username    string         `json:"username" validate:"required_without=UserID"`
		DisplayName string         `json:"displayName"`
		Role        string         `json:"role"`
		Points      *int           `json:"points"`
		Avatar      string         `json:"avatar"`
		Token       string         `json:"token"`
		Profile     map[string]any `json:"profile"`
	}

	// DeductPointsRequest struct - HTTP request DTO for spending points
	DeductPointsRequest struct {
		Amount *int `json:"amount" validate:"required"`
	}

	// PointLogRequest struct - HTTP request DTO for a ledger entry
	PointLogRequest struct {
		Type   string `json:"type" validate:"required,oneof=income expense"`
		Title  string `json:"title" validate:"required,max=100"`
		Amount int    `json:"amount"`
	}

	// NotifyRequest struct - HTTP request DTO for showing a notification
	NotifyRequest struct {
		Message  string `json:"message" validate:"required"`
		Severity string `json:"type" validate:"omitempty,oneof=success info warning error"`
	}

	// FlyRequest struct - HTTP request DTO for triggering the fly signal
	FlyRequest struct {
		Origin *RectRequest `json:"origin" validate:"required"`
		Image  string       `json:"img"`
	}

	// CouponRequest struct - HTTP request DTO for a coupon from the remote service
	CouponRequest struct {
		ID       string  `json:"id" validate:"required"`
		CouponID string  `json:"couponId"`
		Name     string  `json:"couponName" validate:"required"`
		Amount   float64 `json:"amount" validate:"gte=0"`
		MinSpend float64 `json:"minSpend" validate:"gte=0"`
		Status   string  `json:"status"`
	}

	// ReplaceCouponsRequest struct - HTTP request DTO with a re-fetched coupon list
	ReplaceCouponsRequest struct {
		Coupons []CouponRequest `json:"coupons" validate:"dive"`
	}
)
