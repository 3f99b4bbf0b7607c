package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yabaMarket/domain"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint64) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateCategoryTrimsName(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil).Once()

	svc := NewCategoryService(repo)

	got, err := svc.CreateCategory(context.Background(), &domain.Category{Name: "  Beauté  ", Position: 2, Active: true})
	require.NoError(t, err)

	assert.Equal(t, "Beauté", got.Name)
	repo.AssertExpectations(t)
}

func TestCreateCategoryValidation(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
	}{
		{"blank name", domain.Category{Name: "   "}},
		{"negative position", domain.Category{Name: "Mode", Position: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCategoryRepository)
			svc := NewCategoryService(repo)

			c := tt.category
			_, err := svc.CreateCategory(context.Background(), &c)

			assert.ErrorIs(t, err, domain.ErrInvalidCategory)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateCategory(t *testing.T) {
	repo := new(MockCategoryRepository)
	input := &domain.Category{CategoryID: 3, Name: "Maison", Position: 1}
	repo.On("Update", mock.Anything, input).Return(nil).Once()
	repo.On("FindByID", mock.Anything, uint64(3)).Return(domain.Category{CategoryID: 3, Name: "Maison", Position: 1}, nil).Once()

	svc := NewCategoryService(repo)

	got, err := svc.UpdateCategory(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Maison", got.Name)
	assert.False(t, got.Active)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(domain.ErrCategoryNotFound).Once()

	svc := NewCategoryService(repo)

	_, err := svc.UpdateCategory(context.Background(), &domain.Category{CategoryID: 9, Name: "Sport"})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDeleteCategory(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("Delete", mock.Anything, uint64(4)).Return(nil).Once()
	repo.On("Delete", mock.Anything, uint64(5)).Return(errors.New("db down")).Once()

	svc := NewCategoryService(repo)

	require.NoError(t, svc.DeleteCategory(context.Background(), 4))
	assert.ErrorContains(t, svc.DeleteCategory(context.Background(), 5), "failed to delete category: db down")
	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), 0), domain.ErrInvalidCategory)
}

func TestGetCategoryByID(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("FindByID", mock.Anything, uint64(1)).Return(domain.Category{}, domain.ErrCategoryNotFound).Once()

	svc := NewCategoryService(repo)

	_, err := svc.GetCategoryByID(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
