package repository

import (
	"context"

	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) invoicedomain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inv *invoicedomain.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range inv.Items {
			inv.Items[i].InvoiceID = inv.ID
		}
		return tx.Create(inv).Error
	})
}

func (r *repository) Update(ctx context.Context, inv *invoicedomain.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing invoicedomain.Invoice
		err := tx.Raw(`SELECT id FROM sales_invoices WHERE id = ?`, inv.ID).Scan(&existing).Error
		if err != nil {
			return err
		}
		if existing.ID == 0 {
			return invoicedomain.ErrNotFound
		}

		// Items are replaced wholesale; partial item updates do not exist.
		if err := tx.Exec(`DELETE FROM sales_invoice_items WHERE invoice_id = ?`, inv.ID).Error; err != nil {
			return err
		}
		for i := range inv.Items {
			inv.Items[i].InvoiceID = inv.ID
			if err := tx.Create(&inv.Items[i]).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Items").Save(inv).Error
	})
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, error) {
	var inv invoicedomain.Invoice
	err := r.db.WithContext(ctx).Raw(
		`SELECT * FROM sales_invoices WHERE id = ?`, id,
	).Scan(&inv).Error
	if err != nil {
		return nil, err
	}
	if inv.ID == 0 {
		return nil, nil
	}
	err = r.db.WithContext(ctx).Raw(
		`SELECT * FROM sales_invoice_items WHERE invoice_id = ? ORDER BY id ASC`, id,
	).Scan(&inv.Items).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *repository) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	var invoices []invoicedomain.Invoice
	err := r.db.WithContext(ctx).Raw(
		`SELECT * FROM sales_invoices ORDER BY created_at DESC, id DESC`,
	).Scan(&invoices).Error
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		err = r.db.WithContext(ctx).Raw(
			`SELECT * FROM sales_invoice_items WHERE invoice_id = ? ORDER BY id ASC`,
			invoices[i].ID,
		).Scan(&invoices[i].Items).Error
		if err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

func (r *repository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing invoicedomain.Invoice
		err := tx.Raw(`SELECT id FROM sales_invoices WHERE id = ?`, id).Scan(&existing).Error
		if err != nil {
			return err
		}
		if existing.ID == 0 {
			return invoicedomain.ErrNotFound
		}
		if err := tx.Exec(`DELETE FROM sales_invoice_items WHERE invoice_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM sales_invoices WHERE id = ?`, id).Error
	})
}

func (r *repository) NextSequence(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM sales_invoices`,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count + 1, nil
}
