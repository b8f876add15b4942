package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/1913176/ess-billing/internal/cache"
	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	"github.com/1913176/ess-billing/internal/clock"
	"github.com/1913176/ess-billing/internal/config"
	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/1913176/ess-billing/internal/invoice/format"
	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/1913176/ess-billing/internal/reference"
	taxdomain "github.com/1913176/ess-billing/internal/tax/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Config  config.Config
	Clock   clock.Clock
	GenID   *snowflake.Node
	Repo    invoicedomain.Repository
	Party   partydomain.Service
	Catalog catalogdomain.Service
	Tax     taxdomain.Service
	Cache   cache.InvoiceCache
}

type Service struct {
	log     *zap.Logger
	cfg     config.Config
	clock   clock.Clock
	genID   *snowflake.Node
	repo    invoicedomain.Repository
	party   partydomain.Service
	catalog catalogdomain.Service
	tax     taxdomain.Service
	cache   cache.InvoiceCache
	drafts  *draftStore
}

func New(p Params) invoicedomain.Service {
	return &Service{
		log:     p.Log.Named("invoice.service"),
		cfg:     p.Config,
		clock:   p.Clock,
		genID:   p.GenID,
		repo:    p.Repo,
		party:   p.Party,
		catalog: p.Catalog,
		tax:     p.Tax,
		cache:   p.Cache,
		drafts:  newDraftStore(),
	}
}

func (s *Service) newID() snowflake.ID {
	return s.genID.Generate()
}

// snapshot returns a copy safe to hand out after the draft lock is
// released.
func snapshot(d *invoicedomain.Draft) *invoicedomain.Draft {
	cp := *d
	cp.Items = append([]invoicedomain.DraftItem(nil), d.Items...)
	cp.ShippingAddresses = append([]partydomain.ShippingAddress(nil), d.ShippingAddresses...)
	return &cp
}

func dueDate(invoiceDate time.Time, termID int) time.Time {
	days := 0
	if term := reference.PaymentTermByID(termID); term != nil {
		days = term.Days
	}
	return invoiceDate.AddDate(0, 0, days)
}

func (s *Service) CreateDraft(ctx context.Context, req invoicedomain.CreateDraftRequest) (*invoicedomain.Draft, error) {
	termID := req.PaymentTermID
	if reference.PaymentTermByID(termID) == nil {
		termID = reference.PaymentTerms[0].ID
	}

	now := s.clock.Now()
	d := &invoicedomain.Draft{
		ID:            s.newID(),
		InvoiceNo:     strings.TrimSpace(req.InvoiceNo),
		InvoiceDate:   now,
		DueDate:       dueDate(now, termID),
		PaymentTermID: termID,
		SalespersonID: req.SalespersonID,
		Items:         []invoicedomain.DraftItem{},
	}

	party, err := s.party.Resolve(ctx, req.Party)
	if err != nil {
		// Resolver failures degrade to a cash sale, never block the draft.
		s.log.Warn("party resolution failed", zap.Error(err))
		party = &partydomain.Party{PartyName: partydomain.CashSaleName}
	}
	d.Party = party
	if party.ID != 0 {
		s.loadAddresses(ctx, d, party.ID)
	}

	if d.InvoiceNo == "" {
		if no, err := s.suggestInvoiceNo(ctx, now); err == nil {
			d.InvoiceNo = no
		} else {
			s.log.Warn("invoice number suggestion failed", zap.Error(err))
		}
	}

	d.Recompute()
	s.drafts.put(d)
	s.log.Info("draft created",
		zap.Int64("draft_id", int64(d.ID)),
		zap.String("party", d.Party.PartyName),
	)
	return snapshot(d), nil
}

func (s *Service) loadAddresses(ctx context.Context, d *invoicedomain.Draft, partyID snowflake.ID) {
	addrs, err := s.party.ListAddresses(ctx, partyID)
	if err != nil {
		s.log.Warn("address fetch failed", zap.Int64("party_id", int64(partyID)), zap.Error(err))
		return
	}
	d.ShippingAddresses = addrs
	if len(addrs) > 0 {
		addr := addrs[0]
		d.SelectedShipping = &addr
		d.ShippingDisplay = partydomain.FormatAddress(addr)
	} else {
		d.SelectedShipping = nil
		d.ShippingDisplay = ""
	}
}

func (s *Service) suggestInvoiceNo(ctx context.Context, at time.Time) (string, error) {
	seq, err := s.repo.NextSequence(ctx)
	if err != nil {
		return "", err
	}
	template := s.cfg.InvoiceNumberTemplate
	if template == "" {
		template = format.DefaultInvoiceNumberTemplate
	}
	return format.NextInvoiceNumber(template, at, seq)
}

func (s *Service) GetDraft(ctx context.Context, draftID snowflake.ID) (*invoicedomain.Draft, error) {
	var out *invoicedomain.Draft
	err := s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		out = snapshot(d)
		return nil
	})
	return out, err
}

func (s *Service) SelectParty(ctx context.Context, draftID snowflake.ID, ref partydomain.PartyRef) (*invoicedomain.Draft, error) {
	var gen uint64
	err := s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		if d.IsSaved {
			return invoicedomain.ErrDraftLocked
		}
		d.PartyGeneration++
		gen = d.PartyGeneration
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Lookups run outside the draft lock so a slow fetch does not block
	// other edits.
	party, perr := s.party.Resolve(ctx, ref)
	var addrs []partydomain.ShippingAddress
	if perr == nil && party.ID != 0 {
		addrs, _ = s.party.ListAddresses(ctx, party.ID)
	}

	var out *invoicedomain.Draft
	err = s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		// Save does not bump the generation, so a draft locked while the
		// lookups were in flight has to be re-checked here.
		if d.IsSaved {
			return invoicedomain.ErrDraftLocked
		}
		if d.PartyGeneration != gen {
			// A newer selection completed first; this result is stale.
			s.log.Debug("discarding stale party selection",
				zap.Int64("draft_id", int64(draftID)),
				zap.Uint64("generation", gen),
			)
			out = snapshot(d)
			return nil
		}
		if perr != nil {
			s.log.Warn("party resolution failed", zap.Error(perr))
			party = &partydomain.Party{PartyName: partydomain.CashSaleName}
		}
		d.Party = party
		d.ShippingAddresses = addrs
		if len(addrs) > 0 {
			addr := addrs[0]
			d.SelectedShipping = &addr
			d.ShippingDisplay = partydomain.FormatAddress(addr)
		} else {
			d.SelectedShipping = nil
			d.ShippingDisplay = ""
		}
		d.Recompute()
		out = snapshot(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) SetShipping(ctx context.Context, draftID snowflake.ID, req invoicedomain.ShippingRequest) (*invoicedomain.Draft, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, partydomain.ErrInvalidName
	}
	if strings.TrimSpace(req.Street) == "" {
		return nil, partydomain.ErrInvalidStreet
	}

	var out *invoicedomain.Draft
	err := s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		if d.IsSaved {
			return invoicedomain.ErrDraftLocked
		}
		addr := partydomain.ShippingAddress{
			ID:      req.AddressID,
			Name:    strings.TrimSpace(req.Name),
			Street:  strings.TrimSpace(req.Street),
			City:    req.City,
			State:   req.State,
			Pincode: req.Pincode,
		}
		if d.Party != nil {
			addr.PartyID = d.Party.ID
		}
		if addr.ID == 0 {
			addr.ID = s.newID()
			d.ShippingAddresses = append(d.ShippingAddresses, addr)
		} else {
			replaced := false
			for i := range d.ShippingAddresses {
				if d.ShippingAddresses[i].ID == addr.ID {
					d.ShippingAddresses[i] = addr
					replaced = true
					break
				}
			}
			if !replaced {
				d.ShippingAddresses = append(d.ShippingAddresses, addr)
			}
		}
		d.SelectedShipping = &addr
		d.ShippingDisplay = partydomain.FormatAddress(addr)
		d.Recompute()
		out = snapshot(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) AddItems(ctx context.Context, draftID snowflake.ID, selections []invoicedomain.ItemSelection) (*invoicedomain.Draft, error) {
	// Catalog and tax lookups happen before taking the draft lock.
	lines := make([]invoicedomain.DraftItem, 0, len(selections))
	for _, sel := range selections {
		qty := invoicedomain.ParseNonNegativeDecimal(sel.Qty)
		if !qty.IsPositive() {
			continue
		}
		item, err := s.catalog.Find(ctx, sel.Type, sel.CatalogID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}

		line := invoicedomain.DraftItem{
			LineID:        s.newID(),
			Type:          item.Type,
			Name:          item.Name,
			Qty:           sel.Qty,
			Price:         item.SalesPrice,
			DiscountPct:   "0",
			MeasuringUnit: item.MeasuringUnit,
		}
		id := item.ID
		line.CatalogID = &id
		if item.Type == catalogdomain.TypeService {
			line.Code = item.SACCode
		} else {
			line.Code = item.HSNCode
		}

		rate, err := s.resolveItemTax(ctx, item.GSTTaxID)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			taxID := rate.ID
			line.TaxID = &taxID
			line.TaxLabel = rate.Name
			line.TaxRate = rate.GSTRate
			line.CessRate = rate.CessRate
		}
		lines = append(lines, line)
	}

	var out *invoicedomain.Draft
	err := s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		if d.IsSaved {
			return invoicedomain.ErrDraftLocked
		}
		d.Items = append(d.Items, lines...)
		d.Recompute()
		out = snapshot(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// resolveItemTax maps a catalog tax reference onto the tax table, falling
// back to the zero-rate entry when the reference is missing or dangling.
func (s *Service) resolveItemTax(ctx context.Context, taxID *snowflake.ID) (*taxdomain.GSTRate, error) {
	if taxID != nil {
		rate, err := s.tax.FindByID(ctx, *taxID)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			return rate, nil
		}
	}
	return s.tax.ZeroRate(ctx)
}

func (s *Service) UpdateItem(ctx context.Context, draftID, lineID snowflake.ID, patch invoicedomain.ItemPatch) (*invoicedomain.Draft, error) {
	// Label resolution happens before the lock; the draft apply below is
	// purely in-memory.
	var rate *taxdomain.GSTRate
	if patch.TaxLabel != nil {
		var err error
		rate, err = s.tax.FindByLabel(ctx, *patch.TaxLabel)
		if err != nil {
			return nil, err
		}
	}

	var out *invoicedomain.Draft
	err := s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		if d.IsSaved {
			return invoicedomain.ErrDraftLocked
		}
		i := d.FindItem(lineID)
		if i < 0 {
			return invoicedomain.ErrLineNotFound
		}
		it := &d.Items[i]
		if patch.Qty != nil {
			it.Qty = *patch.Qty
		}
		if patch.Price != nil {
			it.Price = *patch.Price
		}
		if patch.DiscountPct != nil {
			it.DiscountPct = *patch.DiscountPct
		}
		if patch.TaxLabel != nil {
			if rate != nil {
				taxID := rate.ID
				it.TaxID = &taxID
				it.TaxLabel = rate.Name
				it.TaxRate = rate.GSTRate
				it.CessRate = rate.CessRate
			} else {
				// Unknown label resets the tax silently.
				it.TaxID = nil
				it.TaxLabel = ""
				it.TaxRate = decimal.Zero
				it.CessRate = decimal.Zero
			}
		}
		d.Recompute()
		out = snapshot(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) RemoveItem(ctx context.Context, draftID, lineID snowflake.ID) (*invoicedomain.Draft, error) {
	var out *invoicedomain.Draft
	err := s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		if d.IsSaved {
			return invoicedomain.ErrDraftLocked
		}
		if !d.RemoveItem(lineID) {
			return invoicedomain.ErrLineNotFound
		}
		d.Recompute()
		out = snapshot(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) SetAdjustments(ctx context.Context, draftID snowflake.ID, adj invoicedomain.DraftAdjustments) (*invoicedomain.Draft, error) {
	var out *invoicedomain.Draft
	err := s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		if d.IsSaved {
			return invoicedomain.ErrDraftLocked
		}
		d.Adjustments = adj
		d.Recompute()
		out = snapshot(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Save(ctx context.Context, draftID snowflake.ID) (*invoicedomain.WireInvoice, bool, error) {
	var wire *invoicedomain.WireInvoice
	var created bool
	err := s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		d.Recompute()
		if d.InvoiceNo == "" {
			no, err := s.suggestInvoiceNo(ctx, d.InvoiceDate)
			if err != nil {
				return err
			}
			d.InvoiceNo = no
		}

		inv, err := d.ToInvoice(s.newID)
		if err != nil {
			return err
		}

		if d.SavedInvoiceID != 0 {
			inv.ID = d.SavedInvoiceID
			if err := s.repo.Update(ctx, inv); err != nil {
				return err
			}
		} else {
			inv.ID = s.newID()
			if err := s.repo.Create(ctx, inv); err != nil {
				return err
			}
			created = true
		}

		d.SavedInvoiceID = inv.ID
		d.IsSaved = true
		wire = invoicedomain.ToWire(inv)
		if err := s.cache.Set(ctx, wire); err != nil {
			s.log.Warn("invoice cache update failed", zap.Error(err))
		}
		s.log.Info("invoice saved",
			zap.Int64("invoice_id", int64(inv.ID)),
			zap.String("invoice_no", inv.InvoiceNo),
			zap.Bool("created", created),
		)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return wire, created, nil
}

func (s *Service) Reopen(ctx context.Context, draftID snowflake.ID) (*invoicedomain.Draft, error) {
	var out *invoicedomain.Draft
	err := s.drafts.with(draftID, func(d *invoicedomain.Draft) error {
		d.IsSaved = false
		d.Recompute()
		out = snapshot(d)
		return nil
	})
	return out, err
}

func (s *Service) DiscardDraft(ctx context.Context, draftID snowflake.ID) error {
	if s.drafts.get(draftID) == nil {
		return invoicedomain.ErrNotFound
	}
	s.drafts.remove(draftID)
	s.log.Info("draft discarded", zap.Int64("draft_id", int64(draftID)))
	return nil
}

func (s *Service) ReopenInvoice(ctx context.Context, invoiceID snowflake.ID) (*invoicedomain.Draft, error) {
	inv, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, invoicedomain.ErrNotFound
	}

	// The stored snapshot backs the lookup: a party deleted since the save
	// still reopens with the name and mobile captured on the invoice.
	ref := partydomain.PartyRef{
		Index: partydomain.NoIndex,
		Inline: &partydomain.Party{
			PartyName:    inv.PartyName,
			MobileNumber: inv.MobileNumber,
		},
	}
	if inv.PartyID != nil {
		ref.ID = *inv.PartyID
	}
	party, err := s.party.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	d := &invoicedomain.Draft{ID: s.newID()}
	d.ApplyInvoice(inv, party, s.newID)
	if party.ID != 0 {
		s.loadAddresses(ctx, d, party.ID)
		d.ShippingDisplay = inv.ShippingAddress
	}
	s.fillTaxLabels(ctx, d)
	d.Recompute()

	s.drafts.put(d)
	return snapshot(d), nil
}

// fillTaxLabels resolves display labels for lines restored from storage.
func (s *Service) fillTaxLabels(ctx context.Context, d *invoicedomain.Draft) {
	for i := range d.Items {
		it := &d.Items[i]
		if it.TaxID == nil || it.TaxLabel != "" {
			continue
		}
		rate, err := s.tax.FindByID(ctx, *it.TaxID)
		if err != nil || rate == nil {
			continue
		}
		it.TaxLabel = rate.Name
	}
}

func (s *Service) CreateInvoice(ctx context.Context, w *invoicedomain.WireInvoice) (*invoicedomain.WireInvoice, error) {
	inv := invoicedomain.FromWire(w)
	if err := s.normalizeInvoice(inv); err != nil {
		return nil, err
	}
	inv.ID = s.newID()
	for i := range inv.Items {
		inv.Items[i].ID = s.newID()
		inv.Items[i].InvoiceID = inv.ID
	}
	if inv.InvoiceNo == "" {
		no, err := s.suggestInvoiceNo(ctx, s.clock.Now())
		if err != nil {
			return nil, err
		}
		inv.InvoiceNo = no
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	wire := invoicedomain.ToWire(inv)
	if err := s.cache.Set(ctx, wire); err != nil {
		s.log.Warn("invoice cache update failed", zap.Error(err))
	}
	return wire, nil
}

func (s *Service) UpdateInvoice(ctx context.Context, invoiceID snowflake.ID, w *invoicedomain.WireInvoice) (*invoicedomain.WireInvoice, error) {
	if invoiceID == 0 {
		return nil, invoicedomain.ErrInvalidID
	}
	inv := invoicedomain.FromWire(w)
	if err := s.normalizeInvoice(inv); err != nil {
		return nil, err
	}
	inv.ID = invoiceID
	for i := range inv.Items {
		if inv.Items[i].ID == 0 {
			inv.Items[i].ID = s.newID()
		}
		inv.Items[i].InvoiceID = invoiceID
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	wire := invoicedomain.ToWire(inv)
	if err := s.cache.Set(ctx, wire); err != nil {
		s.log.Warn("invoice cache update failed", zap.Error(err))
	}
	return wire, nil
}

// normalizeInvoice drops lines without a catalog reference and re-derives
// every total server-side, so stored invoices always satisfy the balance
// invariant regardless of what the client sent.
func (s *Service) normalizeInvoice(inv *invoicedomain.Invoice) error {
	items := inv.Items[:0]
	for _, it := range inv.Items {
		if it.ProductItemID == nil && it.ServiceItemID == nil {
			continue
		}
		items = append(items, it)
	}
	inv.Items = items
	if len(inv.Items) == 0 {
		return invoicedomain.ErrNoValidItems
	}

	lines := make([]invoicedomain.LineInput, 0, len(inv.Items))
	for i := range inv.Items {
		it := &inv.Items[i]
		it.Amount = invoicedomain.LineAmount(it.Quantity, it.PricePerItem, it.DiscountPct, it.GSTRate)
		lines = append(lines, invoicedomain.LineInput{
			Qty:         it.Quantity,
			Price:       it.PricePerItem,
			DiscountPct: it.DiscountPct,
			TaxPct:      it.GSTRate,
		})
	}
	totals := invoicedomain.ComputeTotals(lines, invoicedomain.Adjustments{
		AdditionalCharge:        inv.AdditionalCharge,
		AdditionalChargeTaxPct:  inv.AdditionalChargeTaxRate,
		DiscountAfterTax:        inv.DiscountAfterTax,
		DiscountAfterTaxPercent: inv.DiscountAfterTaxPercent,
		AutoRoundOff:            inv.AutoRoundOff,
		RoundOffValue:           inv.RoundOffValue,
	})
	inv.Subtotal = totals.Subtotal
	inv.TaxTotal = totals.TaxTotal
	inv.DiscountTotal = totals.DiscountTotal
	inv.GrandTotal = totals.GrandTotal
	inv.BalanceAmount = invoicedomain.BalanceAmount(totals.GrandTotal, inv.IsFullyPaid)
	if inv.IsFullyPaid {
		inv.ReceivedAmount = totals.GrandTotal
	}
	if inv.PartyName == "" {
		inv.PartyName = partydomain.CashSaleName
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, invoiceID snowflake.ID) error {
	if invoiceID == 0 {
		return invoicedomain.ErrInvalidID
	}
	if err := s.repo.Delete(ctx, invoiceID); err != nil {
		return err
	}
	if err := s.cache.Remove(ctx, invoiceID); err != nil {
		s.log.Warn("invoice cache removal failed", zap.Error(err))
	}
	s.log.Info("invoice deleted", zap.Int64("invoice_id", int64(invoiceID)))
	return nil
}

func (s *Service) List(ctx context.Context) ([]*invoicedomain.WireInvoice, error) {
	cached, err := s.cache.List(ctx)
	if err == nil && len(cached) > 0 {
		// The cache medium keeps no order; ids are time-sortable.
		sort.Slice(cached, func(i, j int) bool { return cached[i].ID > cached[j].ID })
		return cached, nil
	}
	if err != nil {
		s.log.Warn("invoice cache read failed", zap.Error(err))
	}

	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	wires := make([]*invoicedomain.WireInvoice, 0, len(invoices))
	for i := range invoices {
		wire := invoicedomain.ToWire(&invoices[i])
		wires = append(wires, wire)
		if err := s.cache.Set(ctx, wire); err != nil {
			s.log.Warn("invoice cache update failed", zap.Error(err))
		}
	}
	return wires, nil
}

func (s *Service) Get(ctx context.Context, invoiceID snowflake.ID) (*invoicedomain.WireInvoice, error) {
	if invoiceID == 0 {
		return nil, invoicedomain.ErrInvalidID
	}
	inv, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, invoicedomain.ErrNotFound
	}
	return invoicedomain.ToWire(inv), nil
}
