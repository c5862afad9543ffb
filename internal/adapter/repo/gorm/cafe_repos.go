package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"meowtopia/internal/adapter/repo/gorm/model"
	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"

	"gorm.io/gorm"
)

type ItemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepo {
	return ItemRepo{db: db}
}

func (r ItemRepo) GetByID(ctx context.Context, id string) (cafe.CafeItem, error) {
	var m model.CafeItem
	if err := sessionDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cafe.CafeItem{}, ports.ErrNotFound
		}
		return cafe.CafeItem{}, err
	}
	return itemFromModel(m), nil
}

func (r ItemRepo) List(ctx context.Context) ([]cafe.CafeItem, error) {
	var rows []model.CafeItem
	if err := sessionDB(ctx, r.db).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]cafe.CafeItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, itemFromModel(m))
	}
	return out, nil
}

func (r ItemRepo) Create(ctx context.Context, item cafe.CafeItem) error {
	m := itemToModel(item)
	return sessionDB(ctx, r.db).Create(&m).Error
}

func (r ItemRepo) Save(ctx context.Context, item cafe.CafeItem) error {
	m := itemToModel(item)
	res := sessionDB(ctx, r.db).Model(&model.CafeItem{}).Where("id = ?", item.ID).Updates(map[string]any{
		"name":            m.Name,
		"category":        m.Category,
		"description":     m.Description,
		"price":           m.Price,
		"cost":            m.Cost,
		"stock_quantity":  m.StockQuantity,
		"min_stock_level": m.MinStockLevel,
		"profit_margin":   m.ProfitMargin,
		"is_available":    m.IsAvailable,
		"updated_at":      m.UpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func itemToModel(i cafe.CafeItem) model.CafeItem {
	return model.CafeItem{
		ID:            i.ID,
		CafeID:        i.CafeID,
		Name:          i.Name,
		Category:      string(i.Category),
		Description:   i.Description,
		Price:         i.Price,
		Cost:          i.Cost,
		StockQuantity: int32(i.StockQuantity),
		MinStockLevel: int32(i.MinStockLevel),
		ProfitMargin:  i.ProfitMargin,
		IsAvailable:   i.IsAvailable,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func itemFromModel(m model.CafeItem) cafe.CafeItem {
	return cafe.CafeItem{
		ID:            m.ID,
		CafeID:        m.CafeID,
		Name:          m.Name,
		Category:      cafe.ItemCategory(m.Category),
		Description:   m.Description,
		Price:         m.Price,
		Cost:          m.Cost,
		StockQuantity: int(m.StockQuantity),
		MinStockLevel: int(m.MinStockLevel),
		ProfitMargin:  m.ProfitMargin,
		IsAvailable:   m.IsAvailable,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepo {
	return OrderRepo{db: db}
}

func (r OrderRepo) GetByID(ctx context.Context, id string) (cafe.Order, error) {
	var m model.Order
	if err := sessionDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cafe.Order{}, ports.ErrNotFound
		}
		return cafe.Order{}, err
	}
	return orderFromModel(m)
}

func (r OrderRepo) List(ctx context.Context) ([]cafe.Order, error) {
	var rows []model.Order
	if err := sessionDB(ctx, r.db).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]cafe.Order, 0, len(rows))
	for _, m := range rows {
		o, err := orderFromModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r OrderRepo) Create(ctx context.Context, o cafe.Order) error {
	m, err := orderToModel(o)
	if err != nil {
		return err
	}
	return sessionDB(ctx, r.db).Create(&m).Error
}

func (r OrderRepo) Save(ctx context.Context, o cafe.Order) error {
	m, err := orderToModel(o)
	if err != nil {
		return err
	}
	res := sessionDB(ctx, r.db).Model(&model.Order{}).Where("id = ?", o.ID).Updates(map[string]any{
		"status":     m.Status,
		"staff_id":   m.StaffID,
		"tip_amount": m.TipAmount,
		"updated_at": m.UpdatedAt,
		"served_at":  m.ServedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func orderToModel(o cafe.Order) (model.Order, error) {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return model.Order{}, err
	}
	return model.Order{
		ID:              o.ID,
		CafeID:          o.CafeID,
		CustomerID:      o.CustomerID,
		Lines:           lines,
		TableNumber:     int32(o.TableNumber),
		SpecialRequests: o.SpecialRequests,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		TaxAmount:       o.TaxAmount,
		TipAmount:       o.TipAmount,
		StaffID:         o.StaffID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		ServedAt:        o.ServedAt,
	}, nil
}

func orderFromModel(m model.Order) (cafe.Order, error) {
	var lines []cafe.OrderLine
	if len(m.Lines) > 0 {
		if err := json.Unmarshal(m.Lines, &lines); err != nil {
			return cafe.Order{}, err
		}
	}
	return cafe.Order{
		ID:              m.ID,
		CafeID:          m.CafeID,
		CustomerID:      m.CustomerID,
		Lines:           lines,
		TableNumber:     int(m.TableNumber),
		SpecialRequests: m.SpecialRequests,
		Status:          cafe.OrderStatus(m.Status),
		TotalAmount:     m.TotalAmount,
		TaxAmount:       m.TaxAmount,
		TipAmount:       m.TipAmount,
		StaffID:         m.StaffID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		ServedAt:        m.ServedAt,
	}, nil
}

type CustomerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepo {
	return CustomerRepo{db: db}
}

func (r CustomerRepo) GetByID(ctx context.Context, id string) (cafe.Customer, error) {
	var m model.Customer
	if err := sessionDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cafe.Customer{}, ports.ErrNotFound
		}
		return cafe.Customer{}, err
	}
	return customerFromModel(m)
}

func (r CustomerRepo) List(ctx context.Context) ([]cafe.Customer, error) {
	var rows []model.Customer
	if err := sessionDB(ctx, r.db).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]cafe.Customer, 0, len(rows))
	for _, m := range rows {
		c, err := customerFromModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r CustomerRepo) Create(ctx context.Context, c cafe.Customer) error {
	m, err := customerToModel(c)
	if err != nil {
		return err
	}
	return sessionDB(ctx, r.db).Create(&m).Error
}

func (r CustomerRepo) Save(ctx context.Context, c cafe.Customer) error {
	m, err := customerToModel(c)
	if err != nil {
		return err
	}
	res := sessionDB(ctx, r.db).Model(&model.Customer{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":           m.Name,
		"email":          m.Email,
		"phone":          m.Phone,
		"total_visits":   m.TotalVisits,
		"total_spent":    m.TotalSpent,
		"favorite_items": m.FavoriteItems,
		"mood":           m.Mood,
		"last_visit":     m.LastVisit,
		"updated_at":     m.UpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func customerToModel(c cafe.Customer) (model.Customer, error) {
	favorites, err := json.Marshal(c.FavoriteItems)
	if err != nil {
		return model.Customer{}, err
	}
	return model.Customer{
		ID:            c.ID,
		CafeID:        c.CafeID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		TotalVisits:   int32(c.TotalVisits),
		TotalSpent:    c.TotalSpent,
		FavoriteItems: favorites,
		Mood:          string(c.Mood),
		LastVisit:     c.LastVisit,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}

func customerFromModel(m model.Customer) (cafe.Customer, error) {
	favorites := []string{}
	if len(m.FavoriteItems) > 0 {
		if err := json.Unmarshal(m.FavoriteItems, &favorites); err != nil {
			return cafe.Customer{}, err
		}
	}
	return cafe.Customer{
		ID:            m.ID,
		CafeID:        m.CafeID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		TotalVisits:   int(m.TotalVisits),
		TotalSpent:    m.TotalSpent,
		FavoriteItems: favorites,
		Mood:          cafe.CustomerMood(m.Mood),
		LastVisit:     m.LastVisit,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

type StaffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) StaffRepo {
	return StaffRepo{db: db}
}

func (r StaffRepo) List(ctx context.Context) ([]cafe.Staff, error) {
	var rows []model.Staff
	if err := sessionDB(ctx, r.db).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]cafe.Staff, 0, len(rows))
	for _, m := range rows {
		out = append(out, cafe.Staff{
			ID:               m.ID,
			CafeID:           m.CafeID,
			Name:             m.Name,
			Role:             cafe.StaffRole(m.Role),
			HourlyRate:       m.HourlyRate,
			Email:            m.Email,
			IsActive:         m.IsActive,
			TotalHoursWorked: m.TotalHoursWorked,
			TotalSalaryPaid:  m.TotalSalaryPaid,
			HireDate:         m.HireDate,
			CreatedAt:        m.CreatedAt,
			UpdatedAt:        m.UpdatedAt,
		})
	}
	return out, nil
}

func (r StaffRepo) Create(ctx context.Context, s cafe.Staff) error {
	m := model.Staff{
		ID:               s.ID,
		CafeID:           s.CafeID,
		Name:             s.Name,
		Role:             string(s.Role),
		HourlyRate:       s.HourlyRate,
		Email:            s.Email,
		IsActive:         s.IsActive,
		TotalHoursWorked: s.TotalHoursWorked,
		TotalSalaryPaid:  s.TotalSalaryPaid,
		HireDate:         s.HireDate,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	return sessionDB(ctx, r.db).Create(&m).Error
}

type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepo {
	return SettingsRepo{db: db}
}

func (r SettingsRepo) Get(ctx context.Context) (cafe.Settings, error) {
	var m model.CafeSettings
	err := sessionDB(ctx, r.db).Where("cafe_id = ?", cafe.DefaultCafeID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cafe.Settings{}, ports.ErrNotFound
		}
		return cafe.Settings{}, err
	}
	var s cafe.Settings
	if err := json.Unmarshal(m.Payload, &s); err != nil {
		return cafe.Settings{}, err
	}
	return s, nil
}

func (r SettingsRepo) Save(ctx context.Context, s cafe.Settings) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	db := sessionDB(ctx, r.db)
	res := db.Model(&model.CafeSettings{}).
		Where("cafe_id = ?", cafe.DefaultCafeID).
		Update("payload", payload)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return db.Create(&model.CafeSettings{CafeID: cafe.DefaultCafeID, Payload: payload}).Error
	}
	return nil
}
