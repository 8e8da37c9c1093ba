package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal-backend/internal/domains/category/model"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uuid.UUID]*model.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *model.Category) error {
	for _, c := range r.categories {
		if c.Slug == category.Slug {
			return model.ErrSlugTaken
		}
	}
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, model.ErrCategoryNotFound
	}
	cp := *category
	return &cp, nil
}

func (r *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, model.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *model.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return model.ErrCategoryNotFound
	}
	for id, c := range r.categories {
		if id != category.ID && c.Slug == category.Slug {
			return model.ErrSlugTaken
		}
	}
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return model.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*model.Category, error) {
	var out []*model.Category
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func TestCreateCategoryUsesStableSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	category, err := svc.Create(context.Background(), model.CreateCategoryRequest{
		Name: "Política Regional",
	})

	require.NoError(t, err)
	// No timestamp suffix: category URLs must survive restarts.
	assert.Equal(t, "politica-regional", category.Slug)
}

func TestCreateCategoryRejectsDuplicateSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Economia"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Economia"})

	assert.ErrorIs(t, err, model.ErrSlugTaken)
}

func TestUpdateCategoryRenameChangesSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	created, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Esportes"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, model.UpdateCategoryRequest{
		Name: "Esporte e Lazer",
	})

	require.NoError(t, err)
	assert.Equal(t, "esporte-e-lazer", updated.Slug)
}

func TestUpdateCategoryKeepsSlugWhenNameUnchanged(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Cultura"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, model.UpdateCategoryRequest{
		Description: "Agenda cultural da região",
	})

	require.NoError(t, err)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, "Agenda cultural da região", updated.Description)
}

func TestGetCategoryByUnknownSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.GetBySlug(context.Background(), "nao-existe")

	assert.ErrorIs(t, err, model.ErrCategoryNotFound)
}
