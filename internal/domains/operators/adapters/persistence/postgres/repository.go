package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delicias-da-thai/storefront/internal/domains/operators/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/operators/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists operator accounts in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&operatorRecord{})
	}
	return repo
}

type operatorRecord struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Username    string    `gorm:"column:username;type:varchar(128);uniqueIndex"`
	DisplayName string    `gorm:"column:display_name;type:varchar(255)"`
	Password    string    `gorm:"column:password;type:varchar(255)"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (operatorRecord) TableName() string { return "operators" }

func (r *Repository) Save(ctx context.Context, operator *domain.Operator) (*domain.Operator, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, errors.New("operator is nil")
	}
	record := operatorRecord{
		ID:          operator.ID,
		Username:    operator.Username,
		DisplayName: operator.DisplayName,
		Password:    operator.Password,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "username"}},
			DoUpdates: clause.Assignments(map[string]any{
				"display_name": record.DisplayName,
				"password":     record.Password,
				"updated_at":   gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByUsername(ctx, record.Username)
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record operatorRecord
	if err := r.db.WithContext(ctx).First(&record, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Delete(ctx context.Context, username string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&operatorRecord{}, "username = ?", username)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Operator, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []operatorRecord
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	operators := make([]*domain.Operator, 0, len(records))
	for i := range records {
		operators = append(operators, records[i].toDomain())
	}
	return operators, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres operator repository not configured")
	}
	return nil
}

func (r operatorRecord) toDomain() *domain.Operator {
	return &domain.Operator{
		ID:          r.ID,
		Username:    r.Username,
		DisplayName: r.DisplayName,
		Password:    r.Password,
	}
}
