package repository

import "github.com/cragworks/gearshop/internal/domain/entity"

// GearRepository defines the persistence port for Gear (DIP).
// Lookups return (nil, nil) when no record matches. List and GetByID resolve
// the category reference; ListByCategory does not.
type GearRepository interface {
	Create(gear *entity.Gear) error
	GetByID(id string) (*entity.Gear, error)
	GetByNameAndBrand(name, brand string) (*entity.Gear, error)
	List() ([]*entity.Gear, error)
	ListByCategory(categoryID string) ([]*entity.Gear, error)
	Count() (int, error)
	Update(gear *entity.Gear) error
	Delete(id string) error
}
