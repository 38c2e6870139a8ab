package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delicias-da-thai/storefront/internal/domains/settings/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/settings/ports"
)

var (
	_ ports.SettingsRepository = (*SettingsRepository)(nil)
	_ ports.ZoneRepository     = (*ZoneRepository)(nil)
)

// settingsRecord is the single-row store configuration table. The weekly
// calendar is stored as a JSON document.
type settingsRecord struct {
	ID              int                   `gorm:"primaryKey;column:id"`
	DeliveryEnabled bool                  `gorm:"column:delivery_enabled"`
	ManualOpen      bool                  `gorm:"column:manual_open"`
	Hours           []domain.WeekdayHours `gorm:"column:hours;serializer:json"`
	LogoURL         string                `gorm:"column:logo_url"`
	Address         string                `gorm:"column:address"`
	UpdatedAt       time.Time             `gorm:"column:updated_at"`
}

func (settingsRecord) TableName() string { return "store_settings" }

// the configuration is a singleton row
const settingsRowID = 1

// SettingsRepository persists store configuration in PostgreSQL using GORM.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	repo := &SettingsRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&settingsRecord{})
	}
	return repo
}

func (r *SettingsRepository) Load(ctx context.Context) (*domain.StoreSettings, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record settingsRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewStoreSettings(true, nil)
	}
	if err != nil {
		return nil, err
	}
	return &domain.StoreSettings{
		DeliveryEnabled: record.DeliveryEnabled,
		Hours:           record.Hours,
		LogoURL:         record.LogoURL,
		Address:         record.Address,
	}, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings *domain.StoreSettings) (*domain.StoreSettings, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, errors.New("settings is nil")
	}
	manual, err := r.ManualOpen(ctx)
	if err != nil {
		return nil, err
	}
	record := settingsRecord{
		ID:              settingsRowID,
		DeliveryEnabled: settings.DeliveryEnabled,
		ManualOpen:      manual,
		Hours:           settings.Hours,
		LogoURL:         settings.LogoURL,
		Address:         settings.Address,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"delivery_enabled": record.DeliveryEnabled,
				"hours":            record.Hours,
				"logo_url":         record.LogoURL,
				"address":          record.Address,
				"updated_at":       gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.Load(ctx)
}

func (r *SettingsRepository) ManualOpen(ctx context.Context) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var record settingsRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return record.ManualOpen, nil
}

func (r *SettingsRepository) SetManualOpen(ctx context.Context, open bool) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	record := settingsRecord{ID: settingsRowID, DeliveryEnabled: true, ManualOpen: open}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"manual_open": open,
				"updated_at":  gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error
}

func (r *SettingsRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres settings repository not configured")
	}
	return nil
}

// zoneRecord maps a delivery zone to a relational table.
type zoneRecord struct {
	ID           string          `gorm:"primaryKey;column:id;type:varchar(64)"`
	Neighborhood string          `gorm:"column:neighborhood;type:varchar(255);index"`
	Fee          decimal.Decimal `gorm:"column:fee;type:numeric(12,2)"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (zoneRecord) TableName() string { return "delivery_zones" }

// ZoneRepository persists delivery zones in PostgreSQL using GORM.
type ZoneRepository struct {
	db *gorm.DB
}

func NewZoneRepository(db *gorm.DB) *ZoneRepository {
	repo := &ZoneRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&zoneRecord{})
	}
	return repo
}

func (r *ZoneRepository) Save(ctx context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, errors.New("zone is nil")
	}
	record := zoneRecord{ID: zone.ID, Neighborhood: zone.Neighborhood, Fee: zone.Fee}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"neighborhood": record.Neighborhood,
				"fee":          record.Fee,
				"updated_at":   gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *ZoneRepository) GetByID(ctx context.Context, id string) (*domain.DeliveryZone, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record zoneRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrZoneNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *ZoneRepository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&zoneRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrZoneNotFound
	}
	return nil
}

func (r *ZoneRepository) List(ctx context.Context) ([]*domain.DeliveryZone, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []zoneRecord
	if err := r.db.WithContext(ctx).Order("neighborhood ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	zones := make([]*domain.DeliveryZone, 0, len(records))
	for i := range records {
		zones = append(zones, records[i].toDomain())
	}
	return zones, nil
}

func (r *ZoneRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres zone repository not configured")
	}
	return nil
}

func (r zoneRecord) toDomain() *domain.DeliveryZone {
	return &domain.DeliveryZone{ID: r.ID, Neighborhood: r.Neighborhood, Fee: r.Fee}
}
