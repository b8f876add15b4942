package repository

import (
	"context"

	taxdomain "github.com/1913176/ess-billing/internal/tax/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) taxdomain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]taxdomain.GSTRate, error) {
	var rates []taxdomain.GSTRate
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, gst_rate, cess_rate, created_at, updated_at
		 FROM gst_taxes
		 ORDER BY gst_rate ASC, id ASC`,
	).Scan(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*taxdomain.GSTRate, error) {
	var rate taxdomain.GSTRate
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, gst_rate, cess_rate, created_at, updated_at
		 FROM gst_taxes WHERE id = ?`,
		id,
	).Scan(&rate).Error
	if err != nil {
		return nil, err
	}
	if rate.ID == 0 {
		return nil, nil
	}
	return &rate, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*taxdomain.GSTRate, error) {
	var rate taxdomain.GSTRate
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, gst_rate, cess_rate, created_at, updated_at
		 FROM gst_taxes WHERE name = ?`,
		name,
	).Scan(&rate).Error
	if err != nil {
		return nil, err
	}
	if rate.ID == 0 {
		return nil, nil
	}
	return &rate, nil
}
