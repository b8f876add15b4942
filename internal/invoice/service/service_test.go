package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/1913176/ess-billing/internal/cache"
	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	catalogrepo "github.com/1913176/ess-billing/internal/catalog/repository"
	catalogservice "github.com/1913176/ess-billing/internal/catalog/service"
	"github.com/1913176/ess-billing/internal/clock"
	"github.com/1913176/ess-billing/internal/config"
	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	invoicerepo "github.com/1913176/ess-billing/internal/invoice/repository"
	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	partyrepo "github.com/1913176/ess-billing/internal/party/repository"
	partyservice "github.com/1913176/ess-billing/internal/party/service"
	"github.com/1913176/ess-billing/internal/providers/postal"
	taxdomain "github.com/1913176/ess-billing/internal/tax/domain"
	taxrepo "github.com/1913176/ess-billing/internal/tax/repository"
	taxservice "github.com/1913176/ess-billing/internal/tax/service"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubPostal struct{}

func (stubPostal) Lookup(ctx context.Context, pincode string) (*postal.Location, error) {
	return nil, postal.ErrNotFound
}

// hookedPartyService runs a callback before each Resolve, so tests can
// interleave draft operations with an in-flight party lookup.
type hookedPartyService struct {
	partydomain.Service
	beforeResolve func()
}

func (h *hookedPartyService) Resolve(ctx context.Context, ref partydomain.PartyRef) (*partydomain.Party, error) {
	if h.beforeResolve != nil {
		h.beforeResolve()
	}
	return h.Service.Resolve(ctx, ref)
}

type fixture struct {
	svc     invoicedomain.Service
	db      *gorm.DB
	node    *snowflake.Node
	cache   cache.InvoiceCache
	clock   *clock.FakeClock
	party   *hookedPartyService
	partyID snowflake.ID
	prodID  snowflake.ID
	gst18ID snowflake.ID
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	// Named shared-cache DSN so every pooled connection sees the same
	// in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&partydomain.Party{},
		&partydomain.ShippingAddress{},
		&catalogdomain.Product{},
		&catalogdomain.ServiceItem{},
		&taxdomain.GSTRate{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	log := zap.NewNop()

	zero := taxdomain.GSTRate{ID: node.Generate(), Name: taxdomain.ZeroRateName}
	gst18 := taxdomain.GSTRate{ID: node.Generate(), Name: "GST @ 18%", GSTRate: dec("18")}
	require.NoError(t, db.Create(&zero).Error)
	require.NoError(t, db.Create(&gst18).Error)

	limit := dec("150")
	party := partydomain.Party{
		ID:           node.Generate(),
		PartyName:    "Acme Traders",
		MobileNumber: "9876543210",
		CreditLimit:  &limit,
	}
	require.NoError(t, db.Create(&party).Error)
	addr := partydomain.ShippingAddress{
		ID:      node.Generate(),
		PartyID: party.ID,
		Name:    "Acme Traders",
		Street:  "12 Market Road",
		City:    "Chennai",
		State:   "Tamil Nadu",
		Pincode: "600001",
	}
	require.NoError(t, db.Create(&addr).Error)

	price := dec("100.00")
	taxID := gst18.ID
	product := catalogdomain.Product{
		ID:            node.Generate(),
		Name:          "Widget",
		SalesPrice:    &price,
		CurrentStock:  dec("50"),
		HSNCode:       "8471",
		GSTTaxID:      &taxID,
		MeasuringUnit: "Pcs",
	}
	require.NoError(t, db.Create(&product).Error)

	partySvc := partyservice.New(partyservice.Params{
		Log:    log,
		Repo:   partyrepo.NewRepository(db),
		Postal: stubPostal{},
	})
	catalogSvc := catalogservice.New(catalogservice.Params{
		Log:  log,
		Repo: catalogrepo.NewRepository(db),
	})
	taxSvc := taxservice.New(taxservice.Params{
		Log:  log,
		Repo: taxrepo.NewRepository(db),
	})

	memCache := cache.NewMemoryCache()
	fakeClock := clock.NewFakeClock(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
	hooked := &hookedPartyService{Service: partySvc}

	svc := New(Params{
		Log:     log,
		Config:  config.Config{InvoiceNumberTemplate: "{YYYY}{MM}{DD}-{SEQ4}"},
		Clock:   fakeClock,
		GenID:   node,
		Repo:    invoicerepo.NewRepository(db),
		Party:   hooked,
		Catalog: catalogSvc,
		Tax:     taxSvc,
		Cache:   memCache,
	})

	return &fixture{
		svc:     svc,
		db:      db,
		node:    node,
		cache:   memCache,
		clock:   fakeClock,
		party:   hooked,
		partyID: party.ID,
		prodID:  product.ID,
		gst18ID: gst18.ID,
	}
}

func (f *fixture) draftWithItem(t *testing.T, qty string) *invoicedomain.Draft {
	t.Helper()
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, invoicedomain.CreateDraftRequest{Party: partydomain.RefByID(f.partyID)})
	require.NoError(t, err)

	draft, err = f.svc.AddItems(ctx, draft.ID, []invoicedomain.ItemSelection{
		{CatalogID: f.prodID, Type: catalogdomain.TypeProduct, Qty: qty},
	})
	require.NoError(t, err)
	return draft
}

func TestCreateDraft_ResolvesPartyAndAddress(t *testing.T) {
	f := newFixture(t)

	draft, err := f.svc.CreateDraft(context.Background(), invoicedomain.CreateDraftRequest{Party: partydomain.RefByID(f.partyID)})
	require.NoError(t, err)

	require.NotNil(t, draft.Party)
	assert.Equal(t, "Acme Traders", draft.Party.PartyName)
	assert.Equal(t, "Acme Traders\n12 Market Road\nChennai, Tamil Nadu - 600001", draft.ShippingDisplay)
	assert.Equal(t, "20250615-0001", draft.InvoiceNo)
}

func TestCreateDraft_UnknownPartyFallsBackToCashSale(t *testing.T) {
	f := newFixture(t)

	draft, err := f.svc.CreateDraft(context.Background(), invoicedomain.CreateDraftRequest{
		Party: partydomain.RefByID(f.node.Generate()),
	})
	require.NoError(t, err)

	require.NotNil(t, draft.Party)
	assert.Equal(t, partydomain.CashSaleName, draft.Party.PartyName)
}

func TestAddItems_CopiesCatalogFieldsAndTax(t *testing.T) {
	f := newFixture(t)
	draft := f.draftWithItem(t, "2")

	require.Len(t, draft.Items, 1)
	it := draft.Items[0]
	assert.Equal(t, "Widget", it.Name)
	assert.Equal(t, "100.00", it.Price)
	assert.Equal(t, "8471", it.Code)
	assert.Equal(t, "GST @ 18%", it.TaxLabel)
	assert.True(t, it.TaxRate.Equal(dec("18")))
	assert.NotZero(t, it.LineID)
	assert.True(t, draft.Totals.GrandTotal.Equal(dec("236")))
}

func TestAddItems_ZeroQtySkipped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, invoicedomain.CreateDraftRequest{Party: partydomain.RefByID(0)})
	require.NoError(t, err)

	draft, err = f.svc.AddItems(ctx, draft.ID, []invoicedomain.ItemSelection{
		{CatalogID: f.prodID, Type: catalogdomain.TypeProduct, Qty: "0"},
		{CatalogID: f.prodID, Type: catalogdomain.TypeProduct, Qty: "-1"},
	})
	require.NoError(t, err)

	assert.Empty(t, draft.Items)
}

func TestAddItems_DanglingTaxFallsBackToZeroRate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	orphanTax := f.node.Generate()
	price := dec("40.00")
	product := catalogdomain.Product{
		ID:         f.node.Generate(),
		Name:       "Orphan",
		SalesPrice: &price,
		GSTTaxID:   &orphanTax,
	}
	require.NoError(t, f.db.Create(&product).Error)

	draft, err := f.svc.CreateDraft(ctx, invoicedomain.CreateDraftRequest{Party: partydomain.RefByID(0)})
	require.NoError(t, err)
	draft, err = f.svc.AddItems(ctx, draft.ID, []invoicedomain.ItemSelection{
		{CatalogID: product.ID, Type: catalogdomain.TypeProduct, Qty: "1"},
	})
	require.NoError(t, err)

	require.Len(t, draft.Items, 1)
	assert.Equal(t, taxdomain.ZeroRateName, draft.Items[0].TaxLabel)
	assert.True(t, draft.Items[0].TaxRate.IsZero())
}

func TestUpdateItem_UnknownTaxLabelResetsSilently(t *testing.T) {
	f := newFixture(t)
	draft := f.draftWithItem(t, "2")

	label := "GST @ 99%"
	draft, err := f.svc.UpdateItem(context.Background(), draft.ID, draft.Items[0].LineID, invoicedomain.ItemPatch{
		TaxLabel: &label,
	})
	require.NoError(t, err)

	it := draft.Items[0]
	assert.Nil(t, it.TaxID)
	assert.Empty(t, it.TaxLabel)
	assert.True(t, it.TaxRate.IsZero())
	assert.True(t, draft.Totals.TaxTotal.IsZero())
}

func TestUpdateItem_PatchRecomputesTotals(t *testing.T) {
	f := newFixture(t)
	draft := f.draftWithItem(t, "2")

	qty := "3"
	discount := "10"
	draft, err := f.svc.UpdateItem(context.Background(), draft.ID, draft.Items[0].LineID, invoicedomain.ItemPatch{
		Qty:         &qty,
		DiscountPct: &discount,
	})
	require.NoError(t, err)

	// 300 + 54 tax - 30 discount
	assert.True(t, draft.Totals.GrandTotal.Equal(dec("324")))
}

func TestSave_CreatesOnceThenUpdates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	wire, created, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, wire.ID)

	// A second save of the locked draft must not create a duplicate.
	wire2, created2, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)
	assert.False(t, created2)
	assert.Equal(t, wire.ID, wire2.ID)

	var count int64
	require.NoError(t, f.db.Raw(`SELECT COUNT(*) FROM sales_invoices`).Scan(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSave_NoValidItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, invoicedomain.CreateDraftRequest{Party: partydomain.RefByID(0)})
	require.NoError(t, err)

	_, _, err = f.svc.Save(ctx, draft.ID)
	assert.ErrorIs(t, err, invoicedomain.ErrNoValidItems)

	var count int64
	require.NoError(t, f.db.Raw(`SELECT COUNT(*) FROM sales_invoices`).Scan(&count).Error)
	assert.Zero(t, count)
}

func TestSave_UpdatesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	wire, _, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)

	cached, err := f.cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, wire.ID, cached[0].ID)
}

func TestLockedDraft_RejectsMutations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	_, _, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)

	qty := "5"
	_, err = f.svc.UpdateItem(ctx, draft.ID, draft.Items[0].LineID, invoicedomain.ItemPatch{Qty: &qty})
	assert.ErrorIs(t, err, invoicedomain.ErrDraftLocked)

	_, err = f.svc.AddItems(ctx, draft.ID, []invoicedomain.ItemSelection{
		{CatalogID: f.prodID, Type: catalogdomain.TypeProduct, Qty: "1"},
	})
	assert.ErrorIs(t, err, invoicedomain.ErrDraftLocked)

	_, err = f.svc.RemoveItem(ctx, draft.ID, draft.Items[0].LineID)
	assert.ErrorIs(t, err, invoicedomain.ErrDraftLocked)

	_, err = f.svc.SetAdjustments(ctx, draft.ID, invoicedomain.DraftAdjustments{})
	assert.ErrorIs(t, err, invoicedomain.ErrDraftLocked)

	_, err = f.svc.SelectParty(ctx, draft.ID, partydomain.RefByID(f.partyID))
	assert.ErrorIs(t, err, invoicedomain.ErrDraftLocked)
}

func TestReopen_UnlocksForEditing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	_, _, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)

	reopened, err := f.svc.Reopen(ctx, draft.ID)
	require.NoError(t, err)
	assert.False(t, reopened.IsSaved)

	qty := "5"
	updated, err := f.svc.UpdateItem(ctx, draft.ID, draft.Items[0].LineID, invoicedomain.ItemPatch{Qty: &qty})
	require.NoError(t, err)
	assert.Equal(t, "5", updated.Items[0].Qty)
}

func TestReopenInvoice_RebuildsEditableState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	wire, _, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)

	reopened, err := f.svc.ReopenInvoice(ctx, wire.ID)
	require.NoError(t, err)

	require.Len(t, reopened.Items, 1)
	assert.NotEqual(t, draft.Items[0].LineID, reopened.Items[0].LineID)
	assert.Equal(t, "Widget", reopened.Items[0].Name)
	assert.Equal(t, "GST @ 18%", reopened.Items[0].TaxLabel)
	assert.Equal(t, wire.ID, reopened.SavedInvoiceID)
	require.NotNil(t, reopened.Party)
	assert.Equal(t, "Acme Traders", reopened.Party.PartyName)
	assert.False(t, reopened.IsSaved)
}

func TestDelete_RemovesInvoiceAndCacheEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	wire, _, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, wire.ID))

	_, err = f.svc.Get(ctx, wire.ID)
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)

	cached, err := f.cache.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cached)

	var itemCount int64
	require.NoError(t, f.db.Raw(`SELECT COUNT(*) FROM sales_invoice_items`).Scan(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestDelete_UnknownInvoiceLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	wire, _, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)

	err = f.svc.Delete(ctx, f.node.Generate())
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)

	got, err := f.svc.Get(ctx, wire.ID)
	require.NoError(t, err)
	assert.Equal(t, wire.ID, got.ID)
}

func TestDraft_CreditLimitWarningSurfaced(t *testing.T) {
	f := newFixture(t)

	// 2 x 100 + 18% tax = 236, above the party's 150 limit.
	draft := f.draftWithItem(t, "2")
	assert.True(t, draft.ExceedsCreditLimit)

	qty := "1"
	draft, err := f.svc.UpdateItem(context.Background(), draft.ID, draft.Items[0].LineID, invoicedomain.ItemPatch{Qty: &qty})
	require.NoError(t, err)
	assert.False(t, draft.ExceedsCreditLimit)
}

func TestSelectParty_StaleCompletionDiscarded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, invoicedomain.CreateDraftRequest{Party: partydomain.RefByID(0)})
	require.NoError(t, err)

	// Two selections complete in order; the second wins and the draft
	// reflects it.
	_, err = f.svc.SelectParty(ctx, draft.ID, partydomain.RefByID(f.node.Generate()))
	require.NoError(t, err)

	got, err := f.svc.SelectParty(ctx, draft.ID, partydomain.RefByID(f.partyID))
	require.NoError(t, err)
	require.NotNil(t, got.Party)
	assert.Equal(t, "Acme Traders", got.Party.PartyName)
}

func TestSelectParty_SaveDuringLookupKeepsLockedDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "1")

	other := partydomain.Party{ID: f.node.Generate(), PartyName: "Beta Supplies"}
	require.NoError(t, f.db.Create(&other).Error)

	// Lock the draft while the selection's lookup is still in flight.
	f.party.beforeResolve = func() {
		f.party.beforeResolve = nil
		_, _, err := f.svc.Save(ctx, draft.ID)
		require.NoError(t, err)
	}

	_, err := f.svc.SelectParty(ctx, draft.ID, partydomain.RefByID(other.ID))
	assert.ErrorIs(t, err, invoicedomain.ErrDraftLocked)

	got, err := f.svc.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSaved)
	require.NotNil(t, got.Party)
	assert.Equal(t, "Acme Traders", got.Party.PartyName)
}

func TestCreateDraft_ResolvesPartyByPosition(t *testing.T) {
	f := newFixture(t)

	draft, err := f.svc.CreateDraft(context.Background(), invoicedomain.CreateDraftRequest{
		Party: partydomain.PartyRef{Index: 0},
	})
	require.NoError(t, err)

	require.NotNil(t, draft.Party)
	assert.Equal(t, f.partyID, draft.Party.ID)
	assert.Equal(t, "Acme Traders", draft.Party.PartyName)
	require.Len(t, draft.ShippingAddresses, 1)
}

func TestCreateDraft_ResolvesInlineParty(t *testing.T) {
	f := newFixture(t)

	draft, err := f.svc.CreateDraft(context.Background(), invoicedomain.CreateDraftRequest{
		Party: partydomain.PartyRef{
			Index:  partydomain.NoIndex,
			Inline: &partydomain.Party{PartyName: "Walk-in Customer", MobileNumber: "9000000001"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, draft.Party)
	assert.Equal(t, "Walk-in Customer", draft.Party.PartyName)
	assert.Equal(t, snowflake.ID(0), draft.Party.ID)
	assert.Empty(t, draft.ShippingAddresses)
}

func TestSelectParty_ByPosition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, invoicedomain.CreateDraftRequest{Party: partydomain.RefByID(0)})
	require.NoError(t, err)

	got, err := f.svc.SelectParty(ctx, draft.ID, partydomain.PartyRef{Index: 0})
	require.NoError(t, err)
	require.NotNil(t, got.Party)
	assert.Equal(t, "Acme Traders", got.Party.PartyName)
	assert.Equal(t, "Acme Traders\n12 Market Road\nChennai, Tamil Nadu - 600001", got.ShippingDisplay)
}

func TestDiscardDraft_RemovesEditableState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	wire, _, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.DiscardDraft(ctx, draft.ID))

	_, err = f.svc.GetDraft(ctx, draft.ID)
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)

	// The saved invoice outlives its draft.
	got, err := f.svc.Get(ctx, wire.ID)
	require.NoError(t, err)
	assert.Equal(t, wire.ID, got.ID)

	err = f.svc.DiscardDraft(ctx, draft.ID)
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)
}

func TestReopenInvoice_DeletedPartyFallsBackToSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	wire, _, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)

	require.NoError(t, f.db.Delete(&partydomain.Party{}, "id = ?", f.partyID).Error)

	reopened, err := f.svc.ReopenInvoice(ctx, wire.ID)
	require.NoError(t, err)

	require.NotNil(t, reopened.Party)
	assert.Equal(t, "Acme Traders", reopened.Party.PartyName)
	assert.Equal(t, "9876543210", reopened.Party.MobileNumber)
	assert.Equal(t, snowflake.ID(0), reopened.Party.ID)
}

func TestCreateInvoice_DirectPathRecomputesTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	prodID := f.prodID
	wire := &invoicedomain.WireInvoice{
		InvoiceNo:   "CUSTOM-1",
		InvoiceDate: "2025-06-15",
		DueDate:     "2025-06-30",
		PartyName:   "Acme Traders",
		IsFullyPaid: true,
		SalesInvoiceItems: []invoicedomain.WireItem{
			{
				ProductItem:  &prodID,
				Name:         "Widget",
				Quantity:     dec("2"),
				PricePerItem: dec("100"),
				Discount:     dec("10"),
				GSTRate:      dec("18"),
			},
			{
				// No catalog reference; must be dropped.
				Name:         "Scratch note",
				Quantity:     dec("1"),
				PricePerItem: dec("9"),
			},
		},
		TotalAmount: invoicedomain.WireTotal{Total: dec("999")},
	}

	saved, err := f.svc.CreateInvoice(ctx, wire)
	require.NoError(t, err)

	require.Len(t, saved.SalesInvoiceItems, 1)
	assert.True(t, saved.TotalAmount.Total.Equal(dec("216")), "total = %s", saved.TotalAmount.Total)
	assert.True(t, saved.BalanceAmount.IsZero())
	assert.True(t, saved.ReceivedAmount.Equal(dec("216")))

	// The stored line amount taxes the discounted base: 180 + 18% = 212.4.
	amount := saved.SalesInvoiceItems[0].Amount
	assert.True(t, amount.Equal(dec("212.4")), "line amount = %s", amount)
}

func TestCreateInvoice_AllItemsInvalid(t *testing.T) {
	f := newFixture(t)

	wire := &invoicedomain.WireInvoice{
		InvoiceDate: "2025-06-15",
		DueDate:     "2025-06-30",
		SalesInvoiceItems: []invoicedomain.WireItem{
			{Name: "Loose line", Quantity: dec("1"), PricePerItem: dec("10")},
		},
	}

	_, err := f.svc.CreateInvoice(context.Background(), wire)
	assert.ErrorIs(t, err, invoicedomain.ErrNoValidItems)
}

func TestList_FallsBackToRepositoryAndWarmsCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.draftWithItem(t, "2")

	wire, _, err := f.svc.Save(ctx, draft.ID)
	require.NoError(t, err)
	require.NoError(t, f.cache.Clear(ctx))

	listed, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, wire.ID, listed[0].ID)

	cached, err := f.cache.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)
}
