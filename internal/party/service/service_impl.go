package service

import (
	"context"
	"strings"

	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/1913176/ess-billing/internal/providers/postal"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log    *zap.Logger
	Repo   partydomain.Repository
	Postal postal.Client
}

type Service struct {
	log    *zap.Logger
	repo   partydomain.Repository
	postal postal.Client
}

func New(p Params) partydomain.Service {
	return &Service{
		log:    p.Log.Named("party.service"),
		repo:   p.Repo,
		postal: p.Postal,
	}
}

func (s *Service) List(ctx context.Context) ([]partydomain.Party, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByID(ctx context.Context, id snowflake.ID) (*partydomain.Party, error) {
	if id == 0 {
		return nil, partydomain.ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Resolve(ctx context.Context, ref partydomain.PartyRef) (*partydomain.Party, error) {
	if ref.ID != 0 {
		party, err := s.repo.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if party != nil {
			return party, nil
		}
	}

	if ref.Index >= 0 {
		parties, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		if ref.Index < len(parties) {
			p := parties[ref.Index]
			return &p, nil
		}
	}

	if ref.Inline != nil && ref.Inline.PartyName != "" {
		return ref.Inline, nil
	}

	return &partydomain.Party{PartyName: partydomain.CashSaleName}, nil
}

func (s *Service) ListAddresses(ctx context.Context, partyID snowflake.ID) ([]partydomain.ShippingAddress, error) {
	if partyID == 0 {
		return nil, partydomain.ErrInvalidID
	}
	return s.repo.ListAddresses(ctx, partyID)
}

func (s *Service) SaveAddress(ctx context.Context, req partydomain.SaveAddressRequest) (*partydomain.ShippingAddress, error) {
	if req.PartyID == 0 {
		return nil, partydomain.ErrInvalidID
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, partydomain.ErrInvalidName
	}
	if strings.TrimSpace(req.Street) == "" {
		return nil, partydomain.ErrInvalidStreet
	}
	if req.Pincode != "" && !postal.ValidPincode(req.Pincode) {
		return nil, partydomain.ErrInvalidPincode
	}
	if req.State != "" && !partydomain.IsIndianState(req.State) {
		return nil, partydomain.ErrInvalidState
	}

	party, err := s.repo.FindByID(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, partydomain.ErrNotFound
	}

	city, state := req.City, req.State
	if (city == "" || state == "") && req.Pincode != "" {
		loc, err := s.postal.Lookup(ctx, req.Pincode)
		if err != nil {
			// Autofill is best effort. The caller's own values stand.
			s.log.Warn("pincode autofill failed", zap.String("pincode", req.Pincode), zap.Error(err))
		} else {
			if city == "" {
				city = loc.City
			}
			if state == "" && partydomain.IsIndianState(loc.State) {
				state = loc.State
			}
		}
	}

	addr := &partydomain.ShippingAddress{
		PartyID: req.PartyID,
		Name:    strings.TrimSpace(req.Name),
		Street:  strings.TrimSpace(req.Street),
		City:    city,
		State:   state,
		Pincode: req.Pincode,
	}
	saved, err := s.repo.SaveAddress(ctx, addr)
	if err != nil {
		return nil, err
	}
	s.log.Info("shipping address saved",
		zap.Int64("party_id", int64(req.PartyID)),
		zap.Int64("address_id", int64(saved.ID)),
	)
	return saved, nil
}
