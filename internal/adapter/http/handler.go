package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/go-playground/validator/v10"

	"meowtopia/internal/app/activity"
	"meowtopia/internal/app/analytics"
	"meowtopia/internal/app/auth"
	"meowtopia/internal/app/breeding"
	"meowtopia/internal/app/cats"
	"meowtopia/internal/app/customers"
	"meowtopia/internal/app/events"
	"meowtopia/internal/app/menu"
	"meowtopia/internal/app/orders"
	"meowtopia/internal/app/ports"
	"meowtopia/internal/app/settings"
	"meowtopia/internal/app/staffing"
	"meowtopia/internal/domain/cafe"
	"meowtopia/internal/domain/cattery"
)

var (
	ErrMissingAuthHeader = errors.New("missing bearer token")

	validate = validator.New()
)

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	RegisterUC auth.RegisterUseCase
	LoginUC    auth.LoginUseCase
	VerifyUC   auth.VerifyUseCase
	ProfileUC  auth.ProfileUseCase

	CreateCatUC cats.CreateUseCase
	ListCatsUC  cats.ListUseCase
	GetCatUC    cats.GetUseCase
	ActivityUC  activity.PerformUseCase
	BreedUC     breeding.BreedUseCase
	HistoryUC   events.HistoryUseCase

	CreateItemUC  menu.CreateItemUseCase
	ListItemsUC   menu.ListItemsUseCase
	UpdateStockUC menu.UpdateStockUseCase

	CreateOrderUC orders.CreateUseCase
	ListOrdersUC  orders.ListUseCase
	UpdateOrderUC orders.UpdateStatusUseCase

	HireStaffUC staffing.HireUseCase
	ListStaffUC staffing.ListUseCase

	AddCustomerUC   customers.AddUseCase
	ListCustomersUC customers.ListUseCase
	GetCustomerUC   customers.GetUseCase

	AnalyticsUC      analytics.SnapshotUseCase
	GetSettingsUC    settings.GetUseCase
	UpdateSettingsUC settings.UpdateUseCase

	KPI kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	authGroup := s.Group("/api/v1/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.POST("/logout", h.logout)
	authGroup.GET("/me", h.me)

	catGroup := s.Group("/api/v1/cats")
	catGroup.POST("", h.createCat)
	catGroup.GET("", h.listCats)
	catGroup.POST("/breed", h.breed)
	catGroup.GET("/history", h.history)
	catGroup.GET("/:cat_id", h.getCat)
	catGroup.POST("/:cat_id/activity", h.performActivity)

	cafeGroup := s.Group("/api/v1/cafe")
	cafeGroup.POST("/items", h.createItem)
	cafeGroup.GET("/items", h.listItems)
	cafeGroup.PUT("/items/:item_id/stock", h.updateStock)
	cafeGroup.POST("/orders", h.createOrder)
	cafeGroup.GET("/orders", h.listOrders)
	cafeGroup.PUT("/orders/:order_id/status", h.updateOrderStatus)
	cafeGroup.POST("/staff", h.hireStaff)
	cafeGroup.GET("/staff", h.listStaff)
	cafeGroup.POST("/customers", h.addCustomer)
	cafeGroup.GET("/customers", h.listCustomers)
	cafeGroup.GET("/customers/:customer_id", h.getCustomer)
	cafeGroup.GET("/analytics", h.analyticsSnapshot)
	cafeGroup.GET("/settings", h.getSettings)
	cafeGroup.PUT("/settings", h.updateSettings)

	s.GET("/ops/kpi", h.kpi)
}

// --- auth ---

type registerRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=32"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	WalletAddress string `json:"wallet_address" validate:"omitempty,max=128"`
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	var body registerRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.RegisterUC.Execute(c, auth.RegisterRequest{
		Username:      body.Username,
		Email:         body.Email,
		Password:      body.Password,
		WalletAddress: body.WalletAddress,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h Handler) login(c context.Context, ctx *app.RequestContext) {
	var body loginRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.LoginUC.Execute(c, auth.LoginRequest{Email: body.Email, Password: body.Password})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

// logout only acknowledges: tokens are stateless and expire on their own.
func (h Handler) logout(c context.Context, ctx *app.RequestContext) {
	if _, err := h.requireUser(c, ctx); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"message": "Successfully logged out"})
}

func (h Handler) me(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	user, err := h.ProfileUC.Execute(c, userID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, user)
}

// --- cats ---

type createCatRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=64"`
	Rarity string `json:"rarity" validate:"required"`
	Breed  string `json:"breed" validate:"required,min=1,max=64"`
}

func (h Handler) createCat(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body createCatRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	cat, err := h.CreateCatUC.Execute(c, cats.CreateRequest{
		OwnerID: userID,
		Name:    body.Name,
		Rarity:  cattery.Rarity(body.Rarity),
		Breed:   body.Breed,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, cat)
}

func (h Handler) listCats(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	list, err := h.ListCatsUC.Execute(c, userID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if list == nil {
		list = []cattery.Cat{}
	}
	ctx.JSON(consts.StatusOK, map[string]any{"cats": list, "total": len(list)})
}

func (h Handler) getCat(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	cat, err := h.GetCatUC.Execute(c, userID, string(ctx.Param("cat_id")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, cat)
}

type activityRequest struct {
	Activity string `json:"activity" validate:"required"`
}

func (h Handler) performActivity(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body activityRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	outcome, err := h.ActivityUC.Execute(c, activity.Request{
		RequesterID: userID,
		CatID:       string(ctx.Param("cat_id")),
		Kind:        cattery.ActivityKind(body.Activity),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"result":      outcome.Report,
		"cat":         outcome.Cat,
		"mwt_balance": outcome.NewBalance,
	})
}

type breedRequest struct {
	Parent1ID string `json:"parent1_id" validate:"required"`
	Parent2ID string `json:"parent2_id" validate:"required"`
}

func (h Handler) breed(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body breedRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	outcome, err := h.BreedUC.Execute(c, breeding.Request{
		RequesterID: userID,
		Parent1ID:   body.Parent1ID,
		Parent2ID:   body.Parent2ID,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, map[string]any{
		"offspring":   outcome.Offspring,
		"mwt_cost":    outcome.MWTCost,
		"mwt_balance": outcome.NewBalance,
	})
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	records, err := h.HistoryUC.Execute(c, userID, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": records, "total": len(records)})
}

// --- cafe: items ---

type createItemRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=128"`
	Category      string  `json:"category" validate:"required"`
	Description   string  `json:"description" validate:"omitempty,max=512"`
	Price         float64 `json:"price" validate:"gte=0"`
	Cost          float64 `json:"cost" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	MinStockLevel int     `json:"min_stock_level" validate:"gte=0"`
}

func (h Handler) createItem(c context.Context, ctx *app.RequestContext) {
	if _, err := h.requireUser(c, ctx); err != nil {
		writeError(ctx, err)
		return
	}
	var body createItemRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	item, err := h.CreateItemUC.Execute(c, menu.CreateItemRequest{
		Name:          body.Name,
		Category:      cafe.ItemCategory(body.Category),
		Description:   body.Description,
		Price:         body.Price,
		Cost:          body.Cost,
		StockQuantity: body.StockQuantity,
		MinStockLevel: body.MinStockLevel,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, item)
}

func (h Handler) listItems(c context.Context, ctx *app.RequestContext) {
	items, err := h.ListItemsUC.Execute(c, menu.ListItemsRequest{
		Category:      cafe.ItemCategory(ctx.Query("category")),
		AvailableOnly: queryBool(ctx, "available_only"),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"items": items, "total": len(items)})
}

type updateStockRequest struct {
	Quantity int `json:"quantity"`
}

func (h Handler) updateStock(c context.Context, ctx *app.RequestContext) {
	if _, err := h.requireUser(c, ctx); err != nil {
		writeError(ctx, err)
		return
	}
	var body updateStockRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	item, err := h.UpdateStockUC.Execute(c, menu.UpdateStockRequest{
		ItemID:   string(ctx.Param("item_id")),
		Quantity: body.Quantity,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, item)
}

// --- cafe: orders ---

type orderLineRequest struct {
	ItemID     string  `json:"item_id" validate:"required"`
	Quantity   int     `json:"quantity" validate:"gt=0"`
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
	TotalPrice float64 `json:"total_price" validate:"gte=0"`
}

type createOrderRequest struct {
	CustomerID      string             `json:"customer_id" validate:"required"`
	Items           []orderLineRequest `json:"items" validate:"required,min=1,dive"`
	TableNumber     int                `json:"table_number" validate:"gte=0"`
	SpecialRequests string             `json:"special_requests" validate:"omitempty,max=512"`
}

func (h Handler) createOrder(c context.Context, ctx *app.RequestContext) {
	if _, err := h.requireUser(c, ctx); err != nil {
		writeError(ctx, err)
		return
	}
	var body createOrderRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	lines := make([]cafe.OrderLine, 0, len(body.Items))
	for _, l := range body.Items {
		lines = append(lines, cafe.OrderLine{
			ItemID:     l.ItemID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
		})
	}
	order, err := h.CreateOrderUC.Execute(c, orders.CreateRequest{
		CustomerID:      body.CustomerID,
		Lines:           lines,
		TableNumber:     body.TableNumber,
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, order)
}

func (h Handler) listOrders(c context.Context, ctx *app.RequestContext) {
	list, err := h.ListOrdersUC.Execute(c, orders.ListRequest{
		Status:     cafe.OrderStatus(ctx.Query("status")),
		CustomerID: string(ctx.Query("customer_id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"orders": list, "total": len(list)})
}

type updateOrderStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	StaffID string `json:"staff_id"`
}

func (h Handler) updateOrderStatus(c context.Context, ctx *app.RequestContext) {
	if _, err := h.requireUser(c, ctx); err != nil {
		writeError(ctx, err)
		return
	}
	var body updateOrderStatusRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	order, err := h.UpdateOrderUC.Execute(c, orders.UpdateStatusRequest{
		OrderID: string(ctx.Param("order_id")),
		Status:  cafe.OrderStatus(body.Status),
		StaffID: body.StaffID,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, order)
}

// --- cafe: staff and customers ---

type hireStaffRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=128"`
	Role       string  `json:"role" validate:"required"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`
	Email      string  `json:"email" validate:"omitempty,email"`
}

func (h Handler) hireStaff(c context.Context, ctx *app.RequestContext) {
	if _, err := h.requireUser(c, ctx); err != nil {
		writeError(ctx, err)
		return
	}
	var body hireStaffRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	member, err := h.HireStaffUC.Execute(c, staffing.HireRequest{
		Name:       body.Name,
		Role:       cafe.StaffRole(body.Role),
		HourlyRate: body.HourlyRate,
		Email:      body.Email,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, member)
}

func (h Handler) listStaff(c context.Context, ctx *app.RequestContext) {
	activeOnly := true
	if raw := string(ctx.Query("active_only")); raw != "" {
		activeOnly = raw == "true" || raw == "1"
	}
	list, err := h.ListStaffUC.Execute(c, staffing.ListRequest{
		Role:       cafe.StaffRole(ctx.Query("role")),
		ActiveOnly: activeOnly,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"staff": list, "total": len(list)})
}

type addCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=128"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

func (h Handler) addCustomer(c context.Context, ctx *app.RequestContext) {
	if _, err := h.requireUser(c, ctx); err != nil {
		writeError(ctx, err)
		return
	}
	var body addCustomerRequest
	if err := decodeAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	customer, err := h.AddCustomerUC.Execute(c, customers.AddRequest{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, customer)
}

func (h Handler) listCustomers(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	list, err := h.ListCustomersUC.Execute(c, customers.ListRequest{
		TopSpenders: queryBool(ctx, "top_spenders"),
		Limit:       limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"customers": list, "total": len(list)})
}

func (h Handler) getCustomer(c context.Context, ctx *app.RequestContext) {
	customer, err := h.GetCustomerUC.Execute(c, string(ctx.Param("customer_id")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, customer)
}

// --- cafe: analytics and settings ---

func (h Handler) analyticsSnapshot(c context.Context, ctx *app.RequestContext) {
	snap, err := h.AnalyticsUC.Execute(c, string(ctx.Query("period")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, snap)
}

func (h Handler) getSettings(c context.Context, ctx *app.RequestContext) {
	s, err := h.GetSettingsUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, s)
}

func (h Handler) updateSettings(c context.Context, ctx *app.RequestContext) {
	if _, err := h.requireUser(c, ctx); err != nil {
		writeError(ctx, err)
		return
	}
	var body cafe.Settings
	if err := decodeJSON(ctx, &body); err != nil {
		writeError(ctx, errInvalidJSON)
		return
	}
	s, err := h.UpdateSettingsUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, s)
}

// --- ops ---

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

// --- plumbing ---

var errInvalidJSON = errors.New("invalid json")

func (h Handler) requireUser(c context.Context, ctx *app.RequestContext) (string, error) {
	header := strings.TrimSpace(string(ctx.GetHeader("Authorization")))
	if header == "" {
		return "", ErrMissingAuthHeader
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", ErrMissingAuthHeader
	}
	return h.VerifyUC.Execute(c, token)
}

func decodeAndValidate(ctx *app.RequestContext, out any) error {
	if err := decodeJSON(ctx, out); err != nil {
		return errInvalidJSON
	}
	if err := validate.Struct(out); err != nil {
		return err
	}
	return nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return errInvalidJSON
	}
	return json.Unmarshal(body, out)
}

func queryBool(ctx *app.RequestContext, key string) bool {
	raw := string(ctx.Query(key))
	return raw == "true" || raw == "1"
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, errInvalidJSON):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", err.Error())
	case errors.Is(err, ErrMissingAuthHeader):
		writeErrorBody(ctx, consts.StatusUnauthorized, "missing_token", err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_token", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, auth.ErrEmailTaken):
		writeErrorBody(ctx, consts.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, auth.ErrUsernameTaken):
		writeErrorBody(ctx, consts.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, cats.ErrNotOwner),
		errors.Is(err, activity.ErrNotOwner),
		errors.Is(err, breeding.ErrNotOwner):
		writeErrorBody(ctx, consts.StatusForbidden, "not_owner", err.Error())
	case errors.Is(err, cattery.ErrUnknownActivity):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_activity", err.Error())
	case errors.Is(err, cattery.ErrCatUnavailable):
		writeErrorBody(ctx, consts.StatusBadRequest, "cat_unavailable", err.Error())
	case errors.Is(err, cattery.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusBadRequest, "insufficient_funds", err.Error())
	case errors.Is(err, cattery.ErrInsufficientEnergy):
		writeErrorBody(ctx, consts.StatusBadRequest, "insufficient_energy", err.Error())
	case errors.Is(err, cattery.ErrBreedWithSelf):
		writeErrorBody(ctx, consts.StatusBadRequest, "breed_with_self", err.Error())
	case errors.Is(err, cafe.ErrItemNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, cafe.ErrInsufficientStock):
		writeErrorBody(ctx, consts.StatusBadRequest, "insufficient_stock", err.Error())
	case errors.Is(err, cafe.ErrEmptyOrder),
		errors.Is(err, cafe.ErrInvalidQuantity):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, auth.ErrInvalidRequest),
		errors.Is(err, cats.ErrInvalidRequest),
		errors.Is(err, activity.ErrInvalidRequest),
		errors.Is(err, breeding.ErrInvalidRequest),
		errors.Is(err, menu.ErrInvalidRequest),
		errors.Is(err, orders.ErrInvalidRequest),
		errors.Is(err, staffing.ErrInvalidRequest),
		errors.Is(err, customers.ErrInvalidRequest),
		errors.Is(err, settings.ErrInvalidRequest),
		errors.Is(err, events.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case isValidationError(err):
		writeErrorBody(ctx, consts.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func isValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
