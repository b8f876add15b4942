package reference

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListSalespersons(ctx context.Context) ([]Salesperson, error) {
	var persons []Salesperson
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, created_at, updated_at
		 FROM salespersons
		 ORDER BY name ASC, id ASC`,
	).Scan(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *repository) FindSalesperson(ctx context.Context, id snowflake.ID) (*Salesperson, error) {
	var person Salesperson
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, created_at, updated_at
		 FROM salespersons WHERE id = ?`,
		id,
	).Scan(&person).Error
	if err != nil {
		return nil, err
	}
	if person.ID == 0 {
		return nil, nil
	}
	return &person, nil
}
