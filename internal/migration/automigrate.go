package migration

import (
	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/1913176/ess-billing/internal/reference"
	taxdomain "github.com/1913176/ess-billing/internal/tax/domain"
	"gorm.io/gorm"
)

// AutoMigrate builds the schema from the gorm models. Used for the sqlite
// and mysql dialects; postgres uses the versioned SQL files instead.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&partydomain.Party{},
		&partydomain.ShippingAddress{},
		&catalogdomain.Product{},
		&catalogdomain.ServiceItem{},
		&taxdomain.GSTRate{},
		&reference.Salesperson{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
	)
}
