package service

import (
	"context"
	"strings"

	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo catalogdomain.Repository
}

type Service struct {
	log  *zap.Logger
	repo catalogdomain.Repository
}

func New(p Params) catalogdomain.Service {
	return &Service{
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, filter catalogdomain.ListFilter) ([]catalogdomain.Item, error) {
	switch filter.Type {
	case "", catalogdomain.TypeProduct, catalogdomain.TypeService:
	default:
		return nil, catalogdomain.ErrInvalidType
	}

	items := make([]catalogdomain.Item, 0)

	if filter.Type == "" || filter.Type == catalogdomain.TypeProduct {
		products, err := s.repo.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			items = append(items, catalogdomain.NormalizeProduct(p))
		}
	}

	if filter.Type == "" || filter.Type == catalogdomain.TypeService {
		services, err := s.repo.ListServices(ctx)
		if err != nil {
			return nil, err
		}
		for _, sv := range services {
			items = append(items, catalogdomain.NormalizeService(sv))
		}
	}

	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), search) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	return items, nil
}

func (s *Service) Find(ctx context.Context, itemType string, id snowflake.ID) (*catalogdomain.Item, error) {
	if id == 0 {
		return nil, catalogdomain.ErrInvalidID
	}
	switch itemType {
	case catalogdomain.TypeProduct:
		product, err := s.repo.FindProduct(ctx, id)
		if err != nil || product == nil {
			return nil, err
		}
		item := catalogdomain.NormalizeProduct(*product)
		return &item, nil
	case catalogdomain.TypeService:
		svc, err := s.repo.FindService(ctx, id)
		if err != nil || svc == nil {
			return nil, err
		}
		item := catalogdomain.NormalizeService(*svc)
		return &item, nil
	default:
		return nil, catalogdomain.ErrInvalidType
	}
}
