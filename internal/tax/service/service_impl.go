package service

import (
	"context"
	"strings"

	taxdomain "github.com/1913176/ess-billing/internal/tax/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo taxdomain.Repository
}

type Service struct {
	log  *zap.Logger
	repo taxdomain.Repository
}

func New(p Params) taxdomain.Service {
	return &Service{
		log:  p.Log.Named("tax.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]taxdomain.GSTRate, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByID(ctx context.Context, id snowflake.ID) (*taxdomain.GSTRate, error) {
	if id == 0 {
		return nil, taxdomain.ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindByLabel(ctx context.Context, label string) (*taxdomain.GSTRate, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}
	return s.repo.FindByName(ctx, label)
}

func (s *Service) ZeroRate(ctx context.Context) (*taxdomain.GSTRate, error) {
	return s.repo.FindByName(ctx, taxdomain.ZeroRateName)
}
