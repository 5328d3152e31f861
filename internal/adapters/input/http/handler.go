package http

import (
	"errors"

	"storefront-state/internal/domain"
	"storefront-state/internal/ports/input"
	"storefront-state/internal/ports/output"
	"storefront-state/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter exposing the session state to a UI shell
type HTTPHandler struct {
	srv       input.SessionService
	storage   output.Storage
	validator validator.Validator
	timezone  string
}

// New func - Creates new HTTP handler
func New(srv input.SessionService, storage output.Storage, timezone string) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		storage:   storage,
		validator: validator.New(),
		timezone:  timezone,
	}
}

// Register mounts every route on router
func (hdl *HTTPHandler) Register(router fiber.Router) {
	router.Get("/health", hdl.HealthCheck)

	api := router.Group("/v1/api")
	{
		api.Get("/session", hdl.GetSession)
		api.Post("/session/login", hdl.Login)
		api.Post("/session/logout", hdl.Logout)
		api.Post("/session/points/deduct", hdl.DeductPoints)

		api.Get("/cart", hdl.GetCart)
		api.Delete("/cart", hdl.ClearCart)
		api.Post("/cart/items", hdl.AddItem)
		api.Put("/cart/items/:id", hdl.SetQuantity)
		api.Patch("/cart/items/:id", hdl.AdjustQuantity)
		api.Delete("/cart/items/:id", hdl.RemoveItem)
		api.Get("/cart/items/:id/count", hdl.Count)

		api.Get("/points/logs", hdl.GetPointLogs)
		api.Post("/points/logs", hdl.AppendPointLog)

		api.Get("/notification", hdl.GetNotification)
		api.Post("/notification", hdl.Notify)

		api.Get("/fly", hdl.GetFlySignal)
		api.Post("/fly", hdl.TriggerFly)

		api.Post("/coupons/claim", hdl.ClaimCoupon)
		api.Put("/coupons", hdl.ReplaceCoupons)
	}

	// must stay last, catches every unmatched route
	router.Use(hdl.NotFound)
}

// parse reads and validates the body into request; on failure it writes the
// 400 response and returns false
func (hdl *HTTPHandler) parse(c *fiber.Ctx, request interface{}) (bool, error) {
	if err := c.BodyParser(request); err != nil {
		logrus.Errorln(err)
		return false, c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(badRequest(validator.Messages(err)))
	}
	return true, nil
}

func success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if err := hdl.storage.Ping(); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// NotFound func
func (hdl *HTTPHandler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
}

// GetSession func - returns the full observable state
func (hdl *HTTPHandler) GetSession(c *fiber.Ctx) error {
	return success(c, hdl.srv.Snapshot())
}

// Login func
func (hdl *HTTPHandler) Login(c *fiber.Ctx) error {
	var request LoginRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	record := domain.UserRecord{
		UserID:      request.UserID,
		Username:    request.Username,
		DisplayName: request.DisplayName,
		Role:        request.Role,
		Points:      request.Points,
		Avatar:      request.Avatar,
		Token:       request.Token,
		Profile:     request.Profile,
	}
	if err := hdl.srv.Login(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(badRequest([]string{err.Error()}))
	}
	return success(c, hdl.srv.Snapshot())
}

// Logout func
func (hdl *HTTPHandler) Logout(c *fiber.Ctx) error {
	hdl.srv.Logout()
	return success(c, hdl.srv.Snapshot())
}

// DeductPoints func
func (hdl *HTTPHandler) DeductPoints(c *fiber.Ctx) error {
	var request DeductPointsRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	if !hdl.srv.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}
	hdl.srv.DeductPoints(*request.Amount)
	return success(c, hdl.srv.CurrentUser())
}

func (hdl *HTTPHandler) cart() CartResponse {
	return CartResponse{
		Items:      hdl.srv.CartLines(),
		CartCount:  hdl.srv.CartCount(),
		TotalPrice: hdl.srv.TotalPrice(),
	}
}

// GetCart func
func (hdl *HTTPHandler) GetCart(c *fiber.Ctx) error {
	return success(c, hdl.cart())
}

// ClearCart func
func (hdl *HTTPHandler) ClearCart(c *fiber.Ctx) error {
	hdl.srv.ClearCart()
	return success(c, hdl.cart())
}

// AddItem func
func (hdl *HTTPHandler) AddItem(c *fiber.Ctx) error {
	var request AddItemRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	product := domain.Product{
		ID:       request.ID,
		Name:     request.Name,
		Price:    request.Price,
		ImageURL: request.ImageURL,
	}
	if err := hdl.srv.AddItem(product, toOriginEvent(request.Origin)); err != nil {
		if errors.Is(err, domain.ErrInvalidProduct) {
			return c.Status(fiber.StatusBadRequest).JSON(badRequest([]string{err.Error()}))
		}
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return success(c, hdl.cart())
}

// SetQuantity func
func (hdl *HTTPHandler) SetQuantity(c *fiber.Ctx) error {
	var request QuantityRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	hdl.srv.SetQuantity(c.Params("id"), *request.Quantity)
	return success(c, hdl.cart())
}

// AdjustQuantity func
func (hdl *HTTPHandler) AdjustQuantity(c *fiber.Ctx) error {
	var request AdjustRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	hdl.srv.AdjustQuantity(c.Params("id"), *request.Delta)
	return success(c, hdl.cart())
}

// RemoveItem func
func (hdl *HTTPHandler) RemoveItem(c *fiber.Ctx) error {
	hdl.srv.RemoveItem(c.Params("id"))
	return success(c, hdl.cart())
}

// Count func
func (hdl *HTTPHandler) Count(c *fiber.Ctx) error {
	id := c.Params("id")
	return success(c, CountResponse{ID: id, Quantity: hdl.srv.Count(id)})
}

// GetPointLogs func
func (hdl *HTTPHandler) GetPointLogs(c *fiber.Ctx) error {
	return success(c, toPointLogResponses(hdl.srv.PointLogs(), hdl.timezone))
}

// AppendPointLog func
func (hdl *HTTPHandler) AppendPointLog(c *fiber.Ctx) error {
	var request PointLogRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	entry, err := hdl.srv.AppendEntry(domain.PointLogEntry{
		Type:   domain.PointLogType(request.Type),
		Title:  request.Title,
		Amount: request.Amount,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(badRequest([]string{err.Error()}))
	}
	return success(c, toPointLogResponse(entry, hdl.timezone))
}

// GetNotification func
func (hdl *HTTPHandler) GetNotification(c *fiber.Ctx) error {
	return success(c, hdl.srv.Notification())
}

// Notify func
func (hdl *HTTPHandler) Notify(c *fiber.Ctx) error {
	var request NotifyRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	hdl.srv.Notify(request.Message, domain.Severity(request.Severity))
	return success(c, hdl.srv.Notification())
}

// GetFlySignal func
func (hdl *HTTPHandler) GetFlySignal(c *fiber.Ctx) error {
	return success(c, hdl.srv.FlySignal())
}

// TriggerFly func
func (hdl *HTTPHandler) TriggerFly(c *fiber.Ctx) error {
	var request FlyRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	hdl.srv.TriggerFly(toOriginEvent(request.Origin), request.Image)
	return success(c, hdl.srv.FlySignal())
}

// ClaimCoupon func
func (hdl *HTTPHandler) ClaimCoupon(c *fiber.Ctx) error {
	var request CouponRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	hdl.srv.ClaimCoupon(toCoupon(request))
	return success(c, hdl.srv.Notification())
}

// ReplaceCoupons func
func (hdl *HTTPHandler) ReplaceCoupons(c *fiber.Ctx) error {
	var request ReplaceCouponsRequest
	if valid, err := hdl.parse(c, &request); !valid {
		return err
	}
	coupons := make([]domain.Coupon, 0, len(request.Coupons))
	for _, coupon := range request.Coupons {
		coupons = append(coupons, toCoupon(coupon))
	}
	hdl.srv.ReplaceCoupons(coupons)
	return success(c, hdl.srv.Coupons())
}

func toOriginEvent(rect *RectRequest) *domain.OriginEvent {
	if rect == nil {
		return nil
	}
	return &domain.OriginEvent{Target: &domain.Rect{
		Left:   rect.Left,
		Top:    rect.Top,
		Width:  rect.Width,
		Height: rect.Height,
	}}
}

func toCoupon(request CouponRequest) domain.Coupon {
	return domain.Coupon{
		ID:       request.ID,
		CouponID: request.CouponID,
		Name:     request.Name,
		Amount:   request.Amount,
		MinSpend: request.MinSpend,
		Status:   request.Status,
	}
}
