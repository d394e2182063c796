package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cragworks/gearshop/internal/application/dto"
	"github.com/cragworks/gearshop/internal/domain"
	"github.com/cragworks/gearshop/internal/domain/entity"
	"github.com/cragworks/gearshop/internal/domain/repository"
	"github.com/cragworks/gearshop/internal/domain/validate"
)

// Field rules for the category form. Capitalization runs before the duplicate
// check so "ropes" and "Ropes" resolve to the same record.
var categoryRules = []validate.Rule{
	{Field: "name", Label: "Category name", Trim: true, Required: true, MaxLen: 50, Escape: true, Capitalize: true},
}

// CategoryUseCase orchestrates list/detail/create/delete for categories,
// including the referential guard against gear.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	gear       repository.GearRepository
}

// NewCategoryUseCase builds the workflow.
func NewCategoryUseCase(categories repository.CategoryRepository, gear repository.GearRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, gear: gear}
}

// List returns all categories ordered by name.
func (uc *CategoryUseCase) List() ([]dto.CategoryView, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryViews(list), nil
}

// Detail returns a category and the gear referencing it, fetched concurrently.
// Returns domain.ErrNotFound if the category does not exist.
func (uc *CategoryUseCase) Detail(id string) (*dto.CategoryDetail, error) {
	detail, err := uc.fetchDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

// Create validates and normalizes the form, then inserts unless a category
// with the same normalized name already exists; in that case the existing
// record is the result (idempotent). A lost insert race resolves the same way.
func (uc *CategoryUseCase) Create(in dto.CategoryForm) (*dto.CategoryCreateResult, error) {
	res := validate.Apply(in.Values(), categoryRules)
	if !res.OK() {
		return &dto.CategoryCreateResult{Form: &dto.FormRedisplay{Values: res.Values, Errors: res.Errors}}, nil
	}

	name := res.Values["name"]
	existing, err := uc.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		view := dto.ToCategoryView(existing)
		return &dto.CategoryCreateResult{Category: &view}, nil
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(category); err != nil {
		if err == domain.ErrDuplicate {
			// Lost the race to a concurrent create of the same name; the
			// winner's record is the result.
			winner, gerr := uc.categories.GetByName(name)
			if gerr != nil {
				return nil, gerr
			}
			if winner != nil {
				view := dto.ToCategoryView(winner)
				return &dto.CategoryCreateResult{Category: &view}, nil
			}
		}
		return nil, err
	}
	view := dto.ToCategoryView(category)
	return &dto.CategoryCreateResult{Category: &view}, nil
}

// ConfirmDelete assembles the data the delete-confirmation view needs:
// whether the id exists, and which gear would block the delete.
func (uc *CategoryUseCase) ConfirmDelete(id string) (*dto.CategoryDeleteResult, error) {
	detail, err := uc.fetchDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return &dto.CategoryDeleteResult{Missing: true}, nil
	}
	return &dto.CategoryDeleteResult{Detail: detail, Blocked: len(detail.Gear) > 0}, nil
}

// Delete removes the category unless gear still references it. A missing id
// is an idempotent no-op; a blocked delete returns the referencing gear so
// the caller can explain the refusal.
func (uc *CategoryUseCase) Delete(id string) (*dto.CategoryDeleteResult, error) {
	detail, err := uc.fetchDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return &dto.CategoryDeleteResult{Missing: true}, nil
	}
	if len(detail.Gear) > 0 {
		return &dto.CategoryDeleteResult{Detail: detail, Blocked: true}, nil
	}
	if err := uc.categories.Delete(id); err != nil {
		if err == domain.ErrConflict {
			// A gear insert slipped in between the check and the delete; the
			// FK kept the reference intact, so report the block.
			fresh, ferr := uc.fetchDetail(id)
			if ferr != nil {
				return nil, ferr
			}
			if fresh != nil {
				return &dto.CategoryDeleteResult{Detail: fresh, Blocked: true}, nil
			}
		}
		return nil, err
	}
	return &dto.CategoryDeleteResult{Deleted: true}, nil
}

// Update is not part of the supported feature set; the route exists and
// reports that explicitly.
func (uc *CategoryUseCase) Update(id string, in dto.CategoryForm) error {
	return domain.ErrUnsupported
}

// fetchDetail loads the category and its gear concurrently. Returns (nil, nil)
// when the category does not exist.
func (uc *CategoryUseCase) fetchDetail(id string) (*dto.CategoryDetail, error) {
	var (
		category *entity.Category
		gear     []*entity.Gear
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		category, err = uc.categories.GetByID(id)
		return err
	})
	g.Go(func() error {
		var err error
		gear, err = uc.gear.ListByCategory(id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return &dto.CategoryDetail{
		Category: dto.ToCategoryView(category),
		Gear:     dto.ToGearViews(gear),
	}, nil
}
