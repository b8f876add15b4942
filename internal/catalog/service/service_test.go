package service

import (
	"context"
	"fmt"
	"testing"

	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	catalogrepo "github.com/1913176/ess-billing/internal/catalog/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (catalogdomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalogdomain.Product{}, &catalogdomain.ServiceItem{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		Log:  zap.NewNop(),
		Repo: catalogrepo.NewRepository(db),
	})
	return svc, db, node
}

func TestList_NormalizesProductDefaults(t *testing.T) {
	svc, db, node := newTestService(t)

	// Sparse record: no prices, no codes, no unit.
	require.NoError(t, db.Create(&catalogdomain.Product{
		ID:   node.Generate(),
		Name: "Bare Product",
	}).Error)

	items, err := svc.List(context.Background(), catalogdomain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, "0.00", it.SalesPrice)
	assert.Equal(t, "0.00", it.PurchasePrice)
	assert.Equal(t, "N/A", it.Description)
	assert.Equal(t, "-", it.ItemCode)
	assert.Equal(t, "-", it.HSNCode)
	assert.Equal(t, "Unit", it.MeasuringUnit)
	assert.Equal(t, catalogdomain.TypeProduct, it.Type)
}

func TestList_NormalizesServiceDefaults(t *testing.T) {
	svc, db, node := newTestService(t)

	require.NoError(t, db.Create(&catalogdomain.ServiceItem{
		ID:   node.Generate(),
		Name: "Bare Service",
	}).Error)

	items, err := svc.List(context.Background(), catalogdomain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, catalogdomain.TypeService, it.Type)
	assert.Equal(t, catalogdomain.ServiceStockDisplay, it.CurrentStock)
	assert.Equal(t, "-", it.SACCode)
	assert.Equal(t, "0.00", it.PurchasePrice)
}

func TestList_PriceFormatting(t *testing.T) {
	svc, db, node := newTestService(t)

	price := dec("99.9")
	require.NoError(t, db.Create(&catalogdomain.Product{
		ID:         node.Generate(),
		Name:       "Priced",
		SalesPrice: &price,
	}).Error)

	items, err := svc.List(context.Background(), catalogdomain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "99.90", items[0].SalesPrice)
}

func TestList_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc, db, node := newTestService(t)

	require.NoError(t, db.Create(&catalogdomain.Product{ID: node.Generate(), Name: "Steel Bolt"}).Error)
	require.NoError(t, db.Create(&catalogdomain.Product{ID: node.Generate(), Name: "Copper Wire"}).Error)
	require.NoError(t, db.Create(&catalogdomain.ServiceItem{ID: node.Generate(), Name: "Bolt Fitting"}).Error)

	items, err := svc.List(context.Background(), catalogdomain.ListFilter{Search: "bolt"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Steel Bolt", items[0].Name)
	assert.Equal(t, "Bolt Fitting", items[1].Name)
}

func TestList_TypeFilter(t *testing.T) {
	svc, db, node := newTestService(t)

	require.NoError(t, db.Create(&catalogdomain.Product{ID: node.Generate(), Name: "Steel Bolt"}).Error)
	require.NoError(t, db.Create(&catalogdomain.ServiceItem{ID: node.Generate(), Name: "Bolt Fitting"}).Error)

	products, err := svc.List(context.Background(), catalogdomain.ListFilter{Type: catalogdomain.TypeProduct})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, catalogdomain.TypeProduct, products[0].Type)

	services, err := svc.List(context.Background(), catalogdomain.ListFilter{Type: catalogdomain.TypeService})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, catalogdomain.TypeService, services[0].Type)

	_, err = svc.List(context.Background(), catalogdomain.ListFilter{Type: "Bundle"})
	assert.ErrorIs(t, err, catalogdomain.ErrInvalidType)
}

func TestFind_MissingRecordReturnsNil(t *testing.T) {
	svc, _, node := newTestService(t)

	item, err := svc.Find(context.Background(), catalogdomain.TypeProduct, node.Generate())
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestFind_ByKind(t *testing.T) {
	svc, db, node := newTestService(t)

	id := node.Generate()
	require.NoError(t, db.Create(&catalogdomain.Product{ID: id, Name: "Steel Bolt"}).Error)

	item, err := svc.Find(context.Background(), catalogdomain.TypeProduct, id)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Steel Bolt", item.Name)

	// Same id under the other kind does not exist.
	item, err = svc.Find(context.Background(), catalogdomain.TypeService, id)
	require.NoError(t, err)
	assert.Nil(t, item)
}
