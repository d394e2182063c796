package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cragworks/gearshop/internal/application/dto"
	"github.com/cragworks/gearshop/internal/domain"
)

func newGearFixture(t *testing.T) (*GearUseCase, *CategoryUseCase, *memCategoryRepo, *memGearRepo) {
	t.Helper()
	categories := newMemCategoryRepo()
	gear := newMemGearRepo(categories)
	return NewGearUseCase(gear, categories), NewCategoryUseCase(categories, gear), categories, gear
}

func createGear(t *testing.T, uc *GearUseCase, name, brand, categoryID string) dto.GearView {
	t.Helper()
	result, err := uc.Create(dto.GearForm{
		Name:          name,
		Brand:         brand,
		Description:   "x",
		Price:         "10",
		NumberInStock: "1",
		Category:      categoryID,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Gear, "create %s/%s must succeed", name, brand)
	return *result.Gear
}

func TestGearCreate_EmptyDescriptionFails(t *testing.T) {
	gearUC, categoryUC, _, gearRepo := newGearFixture(t)
	category := mustCreateCategory(t, categoryUC, "Ropes")

	result, err := gearUC.Create(dto.GearForm{
		Name:     "Volta",
		Brand:    "Petzl",
		Price:    "250",
		Category: category.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Page, "validation failure must return redisplay data")
	assert.Nil(t, result.Gear)
	assert.NotEmpty(t, result.Page.Form.Error("description"))
	assert.Len(t, result.Page.Categories, 1, "the selector must be re-fetched for redisplay")
	assert.Equal(t, category.ID, result.Page.Selected, "the chosen category stays selected")

	count, err := gearRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count, "no store mutation on validation failure")
}

func TestGearCreate_NonNumericPriceFails(t *testing.T) {
	gearUC, categoryUC, _, gearRepo := newGearFixture(t)
	category := mustCreateCategory(t, categoryUC, "Ropes")

	result, err := gearUC.Create(dto.GearForm{
		Name:          "Volta",
		Brand:         "Petzl",
		Description:   "x",
		Price:         "expensive",
		NumberInStock: "lots",
		Category:      category.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Page)
	assert.NotEmpty(t, result.Page.Form.Error("price"))
	assert.NotEmpty(t, result.Page.Form.Error("number_in_stock"))

	count, err := gearRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestGearCreate_DuplicateResolvesToExisting(t *testing.T) {
	gearUC, categoryUC, _, gearRepo := newGearFixture(t)
	category := mustCreateCategory(t, categoryUC, "Ropes")

	first := createGear(t, gearUC, "Volta", "Petzl", category.ID)
	second := createGear(t, gearUC, "volta", "petzl", category.ID) // same pair after capitalization

	assert.Equal(t, first.ID, second.ID)
	count, err := gearRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGearUpdate_PreservesID(t *testing.T) {
	gearUC, categoryUC, _, gearRepo := newGearFixture(t)
	ropes := mustCreateCategory(t, categoryUC, "Ropes")
	accessories := mustCreateCategory(t, categoryUC, "Accessories")
	created := createGear(t, gearUC, "Volta", "Petzl", ropes.ID)

	result, err := gearUC.Update(created.ID, dto.GearForm{
		Name:          "Volta Guide",
		Brand:         "Petzl",
		Description:   "dry-treated 9 mm rope",
		Price:         "280",
		NumberInStock: "7",
		Category:      accessories.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Gear)
	assert.Equal(t, created.ID, result.Gear.ID, "update must never mint a new identifier")

	list, err := gearUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "update must overwrite, not insert")
	assert.Equal(t, "Volta Guide", list[0].Name)
	assert.Equal(t, "280", list[0].Price.String())
	assert.Equal(t, 7, list[0].NumberInStock)
	assert.Equal(t, "Accessories", list[0].Category.Name)

	count, err := gearRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGearUpdate_ValidationFailureKeepsID(t *testing.T) {
	gearUC, categoryUC, _, _ := newGearFixture(t)
	ropes := mustCreateCategory(t, categoryUC, "Ropes")
	created := createGear(t, gearUC, "Volta", "Petzl", ropes.ID)

	result, err := gearUC.Update(created.ID, dto.GearForm{Name: "", Brand: "", Description: ""})
	require.NoError(t, err)
	require.NotNil(t, result.Page)
	require.NotNil(t, result.Page.Editing)
	assert.Equal(t, created.ID, result.Page.Editing.ID, "redisplay must carry the id being edited")

	// Record untouched.
	detail, err := gearUC.Detail(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Volta", detail.Name)
}

func TestGearUpdate_NotFound(t *testing.T) {
	gearUC, _, _, _ := newGearFixture(t)

	_, err := gearUC.Update("no-such-id", dto.GearForm{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGearUpdateForm_PreselectsCurrentCategory(t *testing.T) {
	gearUC, categoryUC, _, _ := newGearFixture(t)
	ropes := mustCreateCategory(t, categoryUC, "Ropes")
	mustCreateCategory(t, categoryUC, "Accessories")
	created := createGear(t, gearUC, "Volta", "Petzl", ropes.ID)

	page, err := gearUC.UpdateForm(created.ID)
	require.NoError(t, err)
	assert.Len(t, page.Categories, 2)
	assert.Equal(t, ropes.ID, page.Selected)
	assert.Equal(t, "Volta", page.Form.Value("name"))
	assert.Equal(t, "10", page.Form.Value("price"))
}

func TestGearCreateForm_FetchesGearAndCategories(t *testing.T) {
	gearUC, categoryUC, _, _ := newGearFixture(t)
	ropes := mustCreateCategory(t, categoryUC, "Ropes")
	createGear(t, gearUC, "Volta", "Petzl", ropes.ID)

	page, err := gearUC.CreateForm()
	require.NoError(t, err)
	assert.Len(t, page.Categories, 1)
	assert.Len(t, page.Gear, 1)
	assert.Empty(t, page.Selected)
}

func TestGearDetail_NotFound(t *testing.T) {
	gearUC, _, _, _ := newGearFixture(t)

	_, err := gearUC.Detail("no-such-id")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGearDelete_RemovesUnconditionally(t *testing.T) {
	gearUC, categoryUC, _, gearRepo := newGearFixture(t)
	ropes := mustCreateCategory(t, categoryUC, "Ropes")
	created := createGear(t, gearUC, "Volta", "Petzl", ropes.ID)

	result, err := gearUC.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, result.Deleted)

	count, err := gearRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestGearDelete_MissingIsNoOp(t *testing.T) {
	gearUC, _, _, _ := newGearFixture(t)

	result, err := gearUC.Delete("no-such-id")
	require.NoError(t, err)
	assert.True(t, result.Missing)
	assert.False(t, result.Deleted)
}

// End-to-end walk through the catalog workflows against one shared store.
func TestCatalogScenario_RopesAndVolta(t *testing.T) {
	gearUC, categoryUC, _, _ := newGearFixture(t)

	// Create category "ropes" -> stored as "Ropes".
	created, err := categoryUC.Create(dto.CategoryForm{Name: "ropes"})
	require.NoError(t, err)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Ropes", created.Category.Name)

	// Create gear volta/petzl -> stored as Volta/Petzl.
	gearResult, err := gearUC.Create(dto.GearForm{
		Name:          "volta",
		Brand:         "petzl",
		Description:   "x",
		Price:         "250",
		NumberInStock: "5",
		Category:      created.Category.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, gearResult.Gear)
	assert.Equal(t, "Volta", gearResult.Gear.Name)
	assert.Equal(t, "Petzl", gearResult.Gear.Brand)
	assert.True(t, gearResult.Gear.Price.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 5, gearResult.Gear.NumberInStock)

	// listGear resolves the category reference.
	list, err := gearUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ropes", list[0].Category.Name)

	// Deleting the category is now blocked by the referencing gear.
	deleteResult, err := categoryUC.Delete(created.Category.ID)
	require.NoError(t, err)
	assert.True(t, deleteResult.Blocked)
	require.NotNil(t, deleteResult.Detail)
	require.Len(t, deleteResult.Detail.Gear, 1)
	assert.Equal(t, "Volta", deleteResult.Detail.Gear[0].Name)
}
