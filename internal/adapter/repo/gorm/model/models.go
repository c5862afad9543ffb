package model

import "time"

type User struct {
	ID            string `gorm:"primaryKey"`
	Username      string `gorm:"uniqueIndex;size:64"`
	Email         string `gorm:"uniqueIndex;size:255"`
	PasswordHash  string
	WalletAddress string
	GameLevel     int32
	MwtBalance    float64
	CatsOwned     int32
	CreatedAt     time.Time
	LastLogin     *time.Time
	Version       int64
}

func (User) TableName() string { return "users" }

type Cat struct {
	ID           string `gorm:"primaryKey"`
	OwnerID      string `gorm:"index"`
	Name         string
	Rarity       string `gorm:"size:16"`
	Breed        string
	Level        int32
	Experience   int32
	Energy       int32
	MaxEnergy    int32
	Cuteness     int32
	Playfulness  int32
	Intelligence int32
	IsAvailable  bool
	LastActivity *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Version      int64
}

func (Cat) TableName() string { return "cats" }

type CafeItem struct {
	ID            string `gorm:"primaryKey"`
	CafeID        string `gorm:"index"`
	Name          string
	Category      string `gorm:"size:32;index"`
	Description   string
	Price         float64
	Cost          float64
	StockQuantity int32
	MinStockLevel int32
	ProfitMargin  float64
	IsAvailable   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CafeItem) TableName() string { return "cafe_items" }

type Order struct {
	ID              string `gorm:"primaryKey"`
	CafeID          string `gorm:"index"`
	CustomerID      string `gorm:"index"`
	Lines           []byte `gorm:"type:jsonb"`
	TableNumber     int32
	SpecialRequests string
	Status          string `gorm:"size:16;index"`
	TotalAmount     float64
	TaxAmount       float64
	TipAmount       float64
	StaffID         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ServedAt        *time.Time
}

func (Order) TableName() string { return "orders" }

type Customer struct {
	ID            string `gorm:"primaryKey"`
	CafeID        string `gorm:"index"`
	Name          string
	Email         string
	Phone         string
	TotalVisits   int32
	TotalSpent    float64
	FavoriteItems []byte `gorm:"type:jsonb"`
	Mood          string `gorm:"size:16"`
	LastVisit     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Customer) TableName() string { return "customers" }

type Staff struct {
	ID               string `gorm:"primaryKey"`
	CafeID           string `gorm:"index"`
	Name             string
	Role             string `gorm:"size:32"`
	HourlyRate       float64
	Email            string
	IsActive         bool
	TotalHoursWorked float64
	TotalSalaryPaid  float64
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Staff) TableName() string { return "staff" }

// CafeSettings stores the whole settings document as one JSONB row per
// cafe.
type CafeSettings struct {
	CafeID    string `gorm:"primaryKey"`
	Payload   []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

func (CafeSettings) TableName() string { return "cafe_settings" }

type Event struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ActorID    string    `gorm:"index"`
	Type       string    `gorm:"size:64"`
	OccurredAt time.Time `gorm:"index"`
	Payload    []byte    `gorm:"type:jsonb"`
}

func (Event) TableName() string { return "events" }
