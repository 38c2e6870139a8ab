package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&settingsRecord{},
		&zoneRecord{},
		&submittedOrderRecord{},
		&operatorRecord{},
		&sessionRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID          string          `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name        string          `gorm:"column:name;type:varchar(255);index"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Category    string          `gorm:"column:category;type:varchar(32)"`
	ImageURL    string          `gorm:"column:image_url"`
	Description string          `gorm:"column:description"`
	Available   bool            `gorm:"column:available"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// weekdayHoursDoc is one calendar entry inside the settings JSON document.
type weekdayHoursDoc struct {
	Weekday int    `json:"Weekday"`
	Open    bool   `json:"Open"`
	Opens   string `json:"Opens"`
	Closes  string `json:"Closes"`
}

// Store settings schema mirrors the settings Postgres adapter. The weekly
// calendar is a JSON document, one entry per weekday.
type settingsRecord struct {
	ID              int               `gorm:"primaryKey;column:id"`
	DeliveryEnabled bool              `gorm:"column:delivery_enabled"`
	ManualOpen      bool              `gorm:"column:manual_open"`
	Hours           []weekdayHoursDoc `gorm:"column:hours;serializer:json"`
	LogoURL         string            `gorm:"column:logo_url"`
	Address         string            `gorm:"column:address"`
	UpdatedAt       time.Time         `gorm:"column:updated_at"`
}

func (settingsRecord) TableName() string { return "store_settings" }

// Delivery zone schema mirrors the settings Postgres adapter.
type zoneRecord struct {
	ID           string          `gorm:"primaryKey;column:id;type:varchar(64)"`
	Neighborhood string          `gorm:"column:neighborhood;type:varchar(255);index"`
	Fee          decimal.Decimal `gorm:"column:fee;type:numeric(12,2)"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (zoneRecord) TableName() string { return "delivery_zones" }

// Submitted order schema mirrors the ordering archive adapter.
type submittedOrderRecord struct {
	ID           string          `gorm:"primaryKey;column:id;type:varchar(64)"`
	CustomerName string          `gorm:"column:customer_name;type:varchar(255)"`
	Mode         string          `gorm:"column:mode;type:varchar(16)"`
	Subtotal     decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2)"`
	DeliveryFee  decimal.Decimal `gorm:"column:delivery_fee;type:numeric(12,2)"`
	Total        decimal.Decimal `gorm:"column:total;type:numeric(12,2)"`
	ZoneName     string          `gorm:"column:zone_name;type:varchar(255)"`
	ScheduledAt  *time.Time      `gorm:"column:scheduled_at"`
	Message      string          `gorm:"column:message"`
	SubmittedAt  time.Time       `gorm:"column:submitted_at;index"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

func (submittedOrderRecord) TableName() string { return "submitted_orders" }

// Operator schema mirrors the operators Postgres adapter.
type operatorRecord struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Username    string    `gorm:"column:username;type:varchar(128);uniqueIndex"`
	DisplayName string    `gorm:"column:display_name;type:varchar(255)"`
	Password    string    `gorm:"column:password;type:varchar(255)"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (operatorRecord) TableName() string { return "operators" }

// Session schema mirrors the operator session store.
type sessionRecord struct {
	Token     string     `gorm:"primaryKey;column:token;size:512"`
	Username  string     `gorm:"column:username;index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at;index"`
}

func (sessionRecord) TableName() string { return "operator_sessions" }
