package usecase

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cragworks/gearshop/internal/application/dto"
	"github.com/cragworks/gearshop/internal/domain"
	"github.com/cragworks/gearshop/internal/domain/entity"
	"github.com/cragworks/gearshop/internal/domain/repository"
	"github.com/cragworks/gearshop/internal/domain/validate"
)

// Field rules for the gear form. Numeric fields are escaped like the rest but
// validated for parseability and non-negativity instead of length.
var gearRules = []validate.Rule{
	{Field: "name", Label: "Name", Trim: true, Required: true, MaxLen: 50, Escape: true, Capitalize: true},
	{Field: "brand", Label: "Brand", Trim: true, Required: true, MaxLen: 50, Escape: true, Capitalize: true},
	{Field: "description", Label: "Description", Trim: true, Required: true, MaxLen: 200, Escape: true},
	{Field: "price", Label: "Price", Trim: true, Escape: true, Kind: validate.Decimal},
	{Field: "number_in_stock", Label: "Number in stock", Trim: true, Escape: true, Kind: validate.Integer},
	{Field: "category", Label: "Category", Trim: true, Required: true, Escape: true},
}

// GearUseCase orchestrates list/detail/create/update/delete for gear,
// including the category lookups that populate the selection forms.
type GearUseCase struct {
	gear       repository.GearRepository
	categories repository.CategoryRepository
}

// NewGearUseCase builds the workflow.
func NewGearUseCase(gear repository.GearRepository, categories repository.CategoryRepository) *GearUseCase {
	return &GearUseCase{gear: gear, categories: categories}
}

// List returns all gear ordered by category, references resolved.
func (uc *GearUseCase) List() ([]dto.GearView, error) {
	list, err := uc.gear.List()
	if err != nil {
		return nil, err
	}
	return dto.ToGearViews(list), nil
}

// Detail returns one gear item with its category resolved.
// Returns domain.ErrNotFound if absent.
func (uc *GearUseCase) Detail(id string) (*dto.GearView, error) {
	gear, err := uc.gear.GetByID(id)
	if err != nil {
		return nil, err
	}
	if gear == nil {
		return nil, domain.ErrNotFound
	}
	view := dto.ToGearView(gear)
	return &view, nil
}

// CreateForm assembles the create page: the category selector plus the
// existing gear for context, fetched concurrently.
func (uc *GearUseCase) CreateForm() (*dto.GearFormPage, error) {
	var (
		categories []*entity.Category
		gear       []*entity.Gear
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		categories, err = uc.categories.List()
		return err
	})
	g.Go(func() error {
		var err error
		gear, err = uc.gear.List()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.GearFormPage{
		Categories: dto.ToCategoryViews(categories),
		Gear:       dto.ToGearViews(gear),
	}, nil
}

// Create validates and normalizes the form, then inserts unless gear with the
// same normalized (name, brand) already exists; the existing record is then
// the result (idempotent). On validation failure the selector is re-fetched
// so the form can be redisplayed.
func (uc *GearUseCase) Create(in dto.GearForm) (*dto.GearCreateResult, error) {
	res := validate.Apply(in.Values(), gearRules)
	if !res.OK() {
		page, err := uc.redisplay(res, nil)
		if err != nil {
			return nil, err
		}
		return &dto.GearCreateResult{Page: page}, nil
	}

	existing, err := uc.gear.GetByNameAndBrand(res.Values["name"], res.Values["brand"])
	if err != nil {
		return nil, err
	}
	if existing != nil {
		view := dto.ToGearView(existing)
		return &dto.GearCreateResult{Gear: &view}, nil
	}

	now := time.Now()
	gear := &entity.Gear{
		ID:            uuid.New().String(),
		Name:          res.Values["name"],
		Brand:         res.Values["brand"],
		Description:   res.Values["description"],
		Price:         res.Decimal("price"),
		NumberInStock: res.Int("number_in_stock"),
		CategoryID:    res.Values["category"],
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.gear.Create(gear); err != nil {
		if err == domain.ErrDuplicate {
			winner, gerr := uc.gear.GetByNameAndBrand(gear.Name, gear.Brand)
			if gerr != nil {
				return nil, gerr
			}
			if winner != nil {
				view := dto.ToGearView(winner)
				return &dto.GearCreateResult{Gear: &view}, nil
			}
		}
		return nil, err
	}
	view := dto.ToGearView(gear)
	return &dto.GearCreateResult{Gear: &view}, nil
}

// UpdateForm assembles the update page: the gear item and the category
// selector with its current category pre-selected, fetched concurrently.
// Returns domain.ErrNotFound if the gear is absent.
func (uc *GearUseCase) UpdateForm(id string) (*dto.GearFormPage, error) {
	var (
		gear       *entity.Gear
		categories []*entity.Category
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		gear, err = uc.gear.GetByID(id)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = uc.categories.List()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if gear == nil {
		return nil, domain.ErrNotFound
	}
	view := dto.ToGearView(gear)
	return &dto.GearFormPage{
		Categories: dto.ToCategoryViews(categories),
		Selected:   gear.CategoryID,
		Editing:    &view,
		Form: &dto.FormRedisplay{Values: map[string]string{
			"name":            gear.Name,
			"brand":           gear.Brand,
			"description":     gear.Description,
			"price":           gear.Price.String(),
			"number_in_stock": strconv.Itoa(gear.NumberInStock),
		}},
	}, nil
}

// Update overwrites the record at id with the validated field values. The id
// is preserved explicitly; a successful update never mints a new identifier.
// Returns domain.ErrNotFound if the gear is absent.
func (uc *GearUseCase) Update(id string, in dto.GearForm) (*dto.GearUpdateResult, error) {
	gear, err := uc.gear.GetByID(id)
	if err != nil {
		return nil, err
	}
	if gear == nil {
		return nil, domain.ErrNotFound
	}

	editing := dto.ToGearView(gear)
	res := validate.Apply(in.Values(), gearRules)
	if !res.OK() {
		page, perr := uc.redisplay(res, &editing)
		if perr != nil {
			return nil, perr
		}
		return &dto.GearUpdateResult{Page: page}, nil
	}

	gear.Name = res.Values["name"]
	gear.Brand = res.Values["brand"]
	gear.Description = res.Values["description"]
	gear.Price = res.Decimal("price")
	gear.NumberInStock = res.Int("number_in_stock")
	gear.CategoryID = res.Values["category"]
	gear.Category = nil
	gear.UpdatedAt = time.Now()

	if err := uc.gear.Update(gear); err != nil {
		if err == domain.ErrDuplicate {
			// Renamed onto another item's (name, brand); surface as a field error.
			res.Errors = append(res.Errors, validate.FieldError{
				Field:   "name",
				Message: "a gear item with this name and brand already exists",
			})
			page, perr := uc.redisplay(res, &editing)
			if perr != nil {
				return nil, perr
			}
			return &dto.GearUpdateResult{Page: page}, nil
		}
		return nil, err
	}
	view := dto.ToGearView(gear)
	return &dto.GearUpdateResult{Gear: &view}, nil
}

// ConfirmDelete assembles the delete-confirmation view. A missing id is an
// idempotent no-op, matching the delete itself.
func (uc *GearUseCase) ConfirmDelete(id string) (*dto.GearDeleteResult, error) {
	gear, err := uc.gear.GetByID(id)
	if err != nil {
		return nil, err
	}
	if gear == nil {
		return &dto.GearDeleteResult{Missing: true}, nil
	}
	view := dto.ToGearView(gear)
	return &dto.GearDeleteResult{Gear: &view}, nil
}

// Delete removes the gear item unconditionally; nothing references gear.
func (uc *GearUseCase) Delete(id string) (*dto.GearDeleteResult, error) {
	gear, err := uc.gear.GetByID(id)
	if err != nil {
		return nil, err
	}
	if gear == nil {
		return &dto.GearDeleteResult{Missing: true}, nil
	}
	if err := uc.gear.Delete(id); err != nil {
		return nil, err
	}
	return &dto.GearDeleteResult{Deleted: true}, nil
}

// redisplay rebuilds the form page after a validation failure, re-fetching
// the category selector and keeping the user's (sanitized) input.
func (uc *GearUseCase) redisplay(res validate.Result, editing *dto.GearView) (*dto.GearFormPage, error) {
	categories, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	return &dto.GearFormPage{
		Categories: dto.ToCategoryViews(categories),
		Selected:   res.Values["category"],
		Form:       &dto.FormRedisplay{Values: res.Values, Errors: res.Errors},
		Editing:    editing,
	}, nil
}
