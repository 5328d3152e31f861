package domain

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// Product struct - Domain product offered to the cart
	Product struct {
		ID       string  `json:"id" validate:"required"`
		Name     string  `json:"name" validate:"max=200"`
		Price    float64 `json:"price" validate:"gte=0"`
		ImageURL string  `json:"imageUrl"`
	}

	// UserRecord struct - User object returned by the login call
	UserRecord struct {
		UserID      string         `json:"id,omitempty"`
		Username    string         `json:"username" validate:"required_without=UserID"`
		DisplayName string         `json:"displayName,omitempty"`
		Role        string         `json:"role,omitempty"`
		Points      *int           `json:"points,omitempty"`
		Avatar      string         `json:"avatar,omitempty"`
		Token       string         `json:"token,omitempty"`
		Profile     map[string]any `json:"profile,omitempty"`
	}

	// Snapshot struct - Read-only copy of everything the presentation layer observes
	Snapshot struct {
		Cart          []CartLine      `json:"cart"`
		CartCount     int             `json:"cartCount"`
		TotalPrice    string          `json:"totalPrice"`
		CurrentUser   *UserSession    `json:"currentUser"`
		Authenticated bool            `json:"authenticated"`
		Coupons       []Coupon        `json:"myCoupons"`
		PointLogs     []PointLogEntry `json:"pointLogs"`
		Notification  Notification    `json:"notification"`
		FlySignal     FlySignal       `json:"flySignal"`
	}
)
