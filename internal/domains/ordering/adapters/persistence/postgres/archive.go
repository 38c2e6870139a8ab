package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
)

var _ ports.ArchiveRepository = (*ArchiveRepository)(nil)

// ArchiveRepository persists submitted orders in PostgreSQL using GORM.
type ArchiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) *ArchiveRepository {
	repo := &ArchiveRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&submittedOrderRecord{})
	}
	return repo
}

// submittedOrderRecord maps an archived order to a relational table. The
// message column keeps the exact text handed to the customer.
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

// Save inserts a submitted order. Submissions are immutable; a replay with
// the same id is a no-op.
func (r *ArchiveRepository) Save(ctx context.Context, order *domain.SubmittedOrder) (*domain.SubmittedOrder, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *ArchiveRepository) GetByID(ctx context.Context, id string) (*domain.SubmittedOrder, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record submittedOrderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrOrderNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns submitted orders, newest first.
func (r *ArchiveRepository) List(ctx context.Context) ([]*domain.SubmittedOrder, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []submittedOrderRecord
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.SubmittedOrder, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *ArchiveRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres archive repository not configured")
	}
	return nil
}

func toRecord(order *domain.SubmittedOrder) submittedOrderRecord {
	return submittedOrderRecord{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Mode:         string(order.Mode),
		Subtotal:     order.Subtotal,
		DeliveryFee:  order.DeliveryFee,
		Total:        order.Total,
		ZoneName:     order.ZoneName,
		ScheduledAt:  order.ScheduledAt,
		Message:      order.Message,
		SubmittedAt:  order.SubmittedAt,
	}
}

func (r submittedOrderRecord) toDomain() *domain.SubmittedOrder {
	return &domain.SubmittedOrder{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Mode:         domain.FulfillmentMode(r.Mode),
		Subtotal:     r.Subtotal,
		DeliveryFee:  r.DeliveryFee,
		Total:        r.Total,
		ZoneName:     r.ZoneName,
		ScheduledAt:  r.ScheduledAt,
		Message:      r.Message,
		SubmittedAt:  r.SubmittedAt,
	}
}
