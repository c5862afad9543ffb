package cafe

import "time"

type ItemCategory string

const (
	CategoryFood       ItemCategory = "food"
	CategoryDrink      ItemCategory = "drink"
	CategoryDessert    ItemCategory = "dessert"
	CategoryCatFood    ItemCategory = "cat_food"
	CategoryCatToy     ItemCategory = "cat_toy"
	CategoryDecoration ItemCategory = "decoration"
)

func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrink, CategoryDessert, CategoryCatFood, CategoryCatToy, CategoryDecoration:
		return true
	default:
		return false
	}
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderCancelled:
		return true
	default:
		return false
	}
}

type StaffRole string

const (
	RoleManager      StaffRole = "manager"
	RoleBarista      StaffRole = "barista"
	RoleWaiter       StaffRole = "waiter"
	RoleCleaner      StaffRole = "cleaner"
	RoleCatCaregiver StaffRole = "cat_caregiver"
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleManager, RoleBarista, RoleWaiter, RoleCleaner, RoleCatCaregiver:
		return true
	default:
		return false
	}
}

type CustomerMood string

const (
	MoodVeryHappy   CustomerMood = "very_happy"
	MoodHappy       CustomerMood = "happy"
	MoodNeutral     CustomerMood = "neutral"
	MoodUnhappy     CustomerMood = "unhappy"
	MoodVeryUnhappy CustomerMood = "very_unhappy"
)

type CafeItem struct {
	ID            string       `json:"id"`
	CafeID        string       `json:"cafe_id"`
	Name          string       `json:"name"`
	Category      ItemCategory `json:"category"`
	Description   string       `json:"description"`
	Price         float64      `json:"price"`
	Cost          float64      `json:"cost"`
	StockQuantity int          `json:"stock_quantity"`
	MinStockLevel int          `json:"min_stock_level"`
	ProfitMargin  float64      `json:"profit_margin"`
	IsAvailable   bool         `json:"is_available"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type OrderLine struct {
	ItemID     string  `json:"item_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type Order struct {
	ID              string      `json:"id"`
	CafeID          string      `json:"cafe_id"`
	CustomerID      string      `json:"customer_id"`
	Lines           []OrderLine `json:"items"`
	TableNumber     int         `json:"table_number,omitempty"`
	SpecialRequests string      `json:"special_requests,omitempty"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	TaxAmount       float64     `json:"tax_amount"`
	TipAmount       float64     `json:"tip_amount"`
	StaffID         string      `json:"staff_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	ServedAt        *time.Time  `json:"served_at,omitempty"`
}

type Customer struct {
	ID            string       `json:"id"`
	CafeID        string       `json:"cafe_id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone,omitempty"`
	TotalVisits   int          `json:"total_visits"`
	TotalSpent    float64      `json:"total_spent"`
	FavoriteItems []string     `json:"favorite_items"`
	Mood          CustomerMood `json:"mood"`
	LastVisit     *time.Time   `json:"last_visit,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type Staff struct {
	ID         string    `json:"id"`
	CafeID     string    `json:"cafe_id"`
	Name       string    `json:"name"`
	Role       StaffRole `json:"role"`
	HourlyRate float64   `json:"hourly_rate"`
	Email      string    `json:"email"`
	IsActive   bool      `json:"is_active"`
	// Reserved aggregates: nothing increments these yet.
	TotalHoursWorked float64   `json:"total_hours_worked"`
	TotalSalaryPaid  float64   `json:"total_salary_paid"`
	HireDate         time.Time `json:"hire_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Settings struct {
	CafeName             string            `json:"cafe_name"`
	OpeningHours         map[string]string `json:"opening_hours"`
	MaxCapacity          int               `json:"max_capacity"`
	AutoRestockThreshold int               `json:"auto_restock_threshold"`
	TaxRate              float64           `json:"tax_rate"`
	ServiceChargeRate    float64           `json:"service_charge_rate"`
	CatInteractionFee    float64           `json:"cat_interaction_fee"`
}

type TopSeller struct {
	ItemID       string  `json:"item_id"`
	Name         string  `json:"name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

type InventoryAlert struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
}

type StaffPerformance struct {
	StaffID       string    `json:"staff_id"`
	Name          string    `json:"name"`
	Role          StaffRole `json:"role"`
	HoursWorked   float64   `json:"hours_worked"`
	OrdersHandled int       `json:"orders_handled"`
}

type DailyRevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type AnalyticsSnapshot struct {
	TotalRevenue      float64            `json:"total_revenue"`
	TotalOrders       int                `json:"total_orders"`
	AverageOrderValue float64            `json:"average_order_value"`
	TopSellingItems   []TopSeller        `json:"top_selling_items"`
	// Placeholder metric supplied by an injected estimator, not derived
	// from order data.
	CustomerSatisfaction float64             `json:"customer_satisfaction"`
	StaffPerformance     []StaffPerformance  `json:"staff_performance"`
	InventoryAlerts      []InventoryAlert    `json:"inventory_alerts"`
	DailyRevenue         []DailyRevenuePoint `json:"daily_revenue"`
	Period               string              `json:"period"`
}
