package repository

import "github.com/cragworks/gearshop/internal/domain/entity"

// CategoryRepository defines the persistence port for Category (DIP).
// Lookups return (nil, nil) when no record matches.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Count() (int, error)
	Delete(id string) error
}
