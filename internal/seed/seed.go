// Package seed bootstraps the lookup tables so the app is usable out of
// the box: the GST rate table, a default salesperson list, and an optional
// demo catalog for local development.
package seed

import (
	"context"
	"errors"

	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	"github.com/1913176/ess-billing/internal/reference"
	taxdomain "github.com/1913176/ess-billing/internal/tax/domain"
	pkgdb "github.com/1913176/ess-billing/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type gstSeed struct {
	name     string
	gstRate  string
	cessRate string
}

var gstSeeds = []gstSeed{
	{name: taxdomain.ZeroRateName, gstRate: "0", cessRate: "0"},
	{name: "GST @ 0.25%", gstRate: "0.25", cessRate: "0"},
	{name: "GST @ 3%", gstRate: "3", cessRate: "0"},
	{name: "GST @ 5%", gstRate: "5", cessRate: "0"},
	{name: "GST @ 12%", gstRate: "12", cessRate: "0"},
	{name: "GST @ 18%", gstRate: "18", cessRate: "0"},
	{name: "GST @ 28%", gstRate: "28", cessRate: "0"},
	{name: "GST @ 28% + Cess @ 12%", gstRate: "28", cessRate: "12"},
}

// EnsureGSTRates inserts the GST rate table if any entries are missing.
// Existing rows are left untouched.
func EnsureGSTRates(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range gstSeeds {
			var existing taxdomain.GSTRate
			err := tx.Raw(`SELECT id FROM gst_taxes WHERE name = ?`, s.name).Scan(&existing).Error
			if err != nil {
				return err
			}
			if existing.ID != 0 {
				continue
			}
			rate := taxdomain.GSTRate{
				ID:       node.Generate(),
				Name:     s.name,
				GSTRate:  decimal.RequireFromString(s.gstRate),
				CessRate: decimal.RequireFromString(s.cessRate),
			}
			if err := tx.Create(&rate).Error; err != nil {
				// Another replica may have seeded the same name first.
				if pkgdb.IsDuplicateKeyErr(err) {
					continue
				}
				return err
			}
		}
		return nil
	})
}

// EnsureSalespersons seeds a default salesperson so the picker is never
// empty on a fresh install.
func EnsureSalespersons(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Raw(`SELECT COUNT(*) FROM salespersons`).Scan(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		person := reference.Salesperson{
			ID:   node.Generate(),
			Name: "Default Salesperson",
		}
		return tx.Create(&person).Error
	})
}

// EnsureDemoCatalog seeds a small product and service catalog for local
// development. Gated behind SEED_DEMO_DATA.
func EnsureDemoCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Raw(`SELECT COUNT(*) FROM products`).Scan(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		var gst18 taxdomain.GSTRate
		if err := tx.Raw(`SELECT id FROM gst_taxes WHERE name = ?`, "GST @ 18%").Scan(&gst18).Error; err != nil {
			return err
		}
		var taxID *snowflake.ID
		if gst18.ID != 0 {
			id := gst18.ID
			taxID = &id
		}

		price := decimal.RequireFromString("250.00")
		stock := decimal.RequireFromString("100")
		product := catalogdomain.Product{
			ID:            node.Generate(),
			Name:          "Demo Product",
			ItemCode:      "DP-001",
			SalesPrice:    &price,
			CurrentStock:  stock,
			HSNCode:       "8471",
			GSTTaxID:      taxID,
			MeasuringUnit: "Pcs",
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		svcPrice := decimal.RequireFromString("500.00")
		service := catalogdomain.ServiceItem{
			ID:            node.Generate(),
			Name:          "Demo Service",
			ItemCode:      "DS-001",
			SalesPrice:    &svcPrice,
			SACCode:       "9983",
			GSTTaxID:      taxID,
			MeasuringUnit: "Hrs",
		}
		return tx.Create(&service).Error
	})
}
