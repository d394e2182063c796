package usecase

import (
	"golang.org/x/sync/errgroup"

	"github.com/cragworks/gearshop/internal/domain/repository"
)

// HomeCounts summary figures for the landing page.
type HomeCounts struct {
	Categories int
	Gear       int
}

// HomeUseCase produces the home/summary view data.
type HomeUseCase struct {
	categories repository.CategoryRepository
	gear       repository.GearRepository
}

// NewHomeUseCase builds the workflow.
func NewHomeUseCase(categories repository.CategoryRepository, gear repository.GearRepository) *HomeUseCase {
	return &HomeUseCase{categories: categories, gear: gear}
}

// Counts fetches both collection counts concurrently.
func (uc *HomeUseCase) Counts() (*HomeCounts, error) {
	var counts HomeCounts
	var g errgroup.Group
	g.Go(func() error {
		var err error
		counts.Categories, err = uc.categories.Count()
		return err
	})
	g.Go(func() error {
		var err error
		counts.Gear, err = uc.gear.Count()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}
