package repository

import (
	"context"

	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) partydomain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]partydomain.Party, error) {
	var parties []partydomain.Party
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, party_name, mobile_number, credit_limit,
		        opening_balance_amount, opening_balance, created_at, updated_at
		 FROM parties
		 ORDER BY id ASC`,
	).Scan(&parties).Error
	if err != nil {
		return nil, err
	}
	return parties, nil
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*partydomain.Party, error) {
	var party partydomain.Party
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, party_name, mobile_number, credit_limit,
		        opening_balance_amount, opening_balance, created_at, updated_at
		 FROM parties WHERE id = ?`,
		id,
	).Scan(&party).Error
	if err != nil {
		return nil, err
	}
	if party.ID == 0 {
		return nil, nil
	}
	return &party, nil
}

func (r *repository) ListAddresses(ctx context.Context, partyID snowflake.ID) ([]partydomain.ShippingAddress, error) {
	var addrs []partydomain.ShippingAddress
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, party_id, name, street, city, state, pincode, created_at, updated_at
		 FROM shipping_addresses
		 WHERE party_id = ?
		 ORDER BY id ASC`,
		partyID,
	).Scan(&addrs).Error
	if err != nil {
		return nil, err
	}
	return addrs, nil
}

func (r *repository) SaveAddress(ctx context.Context, addr *partydomain.ShippingAddress) (*partydomain.ShippingAddress, error) {
	if err := r.db.WithContext(ctx).Create(addr).Error; err != nil {
		return nil, err
	}
	return addr, nil
}
