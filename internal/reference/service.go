package reference

import (
	"context"

	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo Repository
}

type service struct {
	log  *zap.Logger
	repo Repository
}

func NewService(p Params) Service {
	return &service{
		log:  p.Log.Named("reference.service"),
		repo: p.Repo,
	}
}

func (s *service) ListPaymentTerms(ctx context.Context) ([]PaymentTerm, error) {
	return PaymentTerms, nil
}

func (s *service) ListSalespersons(ctx context.Context) ([]Salesperson, error) {
	return s.repo.ListSalespersons(ctx)
}

func (s *service) FindSalesperson(ctx context.Context, id snowflake.ID) (*Salesperson, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return s.repo.FindSalesperson(ctx, id)
}

func (s *service) ListStates(ctx context.Context) ([]string, error) {
	return partydomain.IndianStates, nil
}

var Module = fx.Module("reference.service",
	fx.Provide(NewRepository),
	fx.Provide(NewService),
)
