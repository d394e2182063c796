package usecase

import (
	"sort"
	"strings"

	"github.com/cragworks/gearshop/internal/domain"
	"github.com/cragworks/gearshop/internal/domain/entity"
)

// In-memory repositories mirroring the store's behavior closely enough for
// the workflow tests: case-insensitive uniqueness, ordered listing, and
// (nil, nil) on missing lookups.

type memCategoryRepo struct {
	items map[string]*entity.Category
	err   error // forced error for store-failure cases
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{items: make(map[string]*entity.Category)}
}

func (m *memCategoryRepo) Create(category *entity.Category) error {
	if m.err != nil {
		return m.err
	}
	for _, c := range m.items {
		if strings.EqualFold(c.Name, category.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *category
	m.items[category.ID] = &cp
	return nil
}

func (m *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.items {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCategoryRepo) List() ([]*entity.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	list := make([]*entity.Category, 0, len(m.items))
	for _, c := range m.items {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (m *memCategoryRepo) Count() (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.items), nil
}

func (m *memCategoryRepo) Delete(id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.items, id)
	return nil
}

type memGearRepo struct {
	items      map[string]*entity.Gear
	categories *memCategoryRepo // for resolving references on reads
	err        error
}

func newMemGearRepo(categories *memCategoryRepo) *memGearRepo {
	return &memGearRepo{items: make(map[string]*entity.Gear), categories: categories}
}

func (m *memGearRepo) Create(gear *entity.Gear) error {
	if m.err != nil {
		return m.err
	}
	for _, g := range m.items {
		if strings.EqualFold(g.Name, gear.Name) && strings.EqualFold(g.Brand, gear.Brand) {
			return domain.ErrDuplicate
		}
	}
	cp := *gear
	cp.Category = nil
	m.items[gear.ID] = &cp
	return nil
}

func (m *memGearRepo) resolve(g *entity.Gear) *entity.Gear {
	cp := *g
	if c, ok := m.categories.items[g.CategoryID]; ok {
		cc := *c
		cp.Category = &cc
	}
	return &cp
}

func (m *memGearRepo) GetByID(id string) (*entity.Gear, error) {
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return m.resolve(g), nil
}

func (m *memGearRepo) GetByNameAndBrand(name, brand string) (*entity.Gear, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, g := range m.items {
		if strings.EqualFold(g.Name, name) && strings.EqualFold(g.Brand, brand) {
			return m.resolve(g), nil
		}
	}
	return nil, nil
}

func (m *memGearRepo) List() ([]*entity.Gear, error) {
	if m.err != nil {
		return nil, m.err
	}
	list := make([]*entity.Gear, 0, len(m.items))
	for _, g := range m.items {
		list = append(list, m.resolve(g))
	}
	sort.Slice(list, func(i, j int) bool {
		ci, cj := "", ""
		if list[i].Category != nil {
			ci = list[i].Category.Name
		}
		if list[j].Category != nil {
			cj = list[j].Category.Name
		}
		if ci != cj {
			return ci < cj
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (m *memGearRepo) ListByCategory(categoryID string) ([]*entity.Gear, error) {
	if m.err != nil {
		return nil, m.err
	}
	var list []*entity.Gear
	for _, g := range m.items {
		if g.CategoryID == categoryID {
			cp := *g
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (m *memGearRepo) Count() (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.items), nil
}

func (m *memGearRepo) Update(gear *entity.Gear) error {
	if m.err != nil {
		return m.err
	}
	for id, g := range m.items {
		if id == gear.ID {
			continue
		}
		if strings.EqualFold(g.Name, gear.Name) && strings.EqualFold(g.Brand, gear.Brand) {
			return domain.ErrDuplicate
		}
	}
	cp := *gear
	cp.Category = nil
	m.items[gear.ID] = &cp
	return nil
}

func (m *memGearRepo) Delete(id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.items, id)
	return nil
}
