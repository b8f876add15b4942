package repository

import (
	"context"

	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) catalogdomain.Repository {
	return &repository{db: db}
}

func (r *repository) ListProducts(ctx context.Context) ([]catalogdomain.Product, error) {
	var products []catalogdomain.Product
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, item_code, sales_price, purchase_price, current_stock,
		        description, hsn_code, gst_tax_id, measuring_unit, created_at, updated_at
		 FROM products
		 ORDER BY id ASC`,
	).Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) ListServices(ctx context.Context) ([]catalogdomain.ServiceItem, error) {
	var services []catalogdomain.ServiceItem
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, item_code, sales_price, description,
		        sac_code, gst_tax_id, measuring_unit, created_at, updated_at
		 FROM service_items
		 ORDER BY id ASC`,
	).Scan(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *repository) FindProduct(ctx context.Context, id snowflake.ID) (*catalogdomain.Product, error) {
	var product catalogdomain.Product
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, item_code, sales_price, purchase_price, current_stock,
		        description, hsn_code, gst_tax_id, measuring_unit, created_at, updated_at
		 FROM products WHERE id = ?`,
		id,
	).Scan(&product).Error
	if err != nil {
		return nil, err
	}
	if product.ID == 0 {
		return nil, nil
	}
	return &product, nil
}

func (r *repository) FindService(ctx context.Context, id snowflake.ID) (*catalogdomain.ServiceItem, error) {
	var service catalogdomain.ServiceItem
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, item_code, sales_price, description,
		        sac_code, gst_tax_id, measuring_unit, created_at, updated_at
		 FROM service_items WHERE id = ?`,
		id,
	).Scan(&service).Error
	if err != nil {
		return nil, err
	}
	if service.ID == 0 {
		return nil, nil
	}
	return &service, nil
}
