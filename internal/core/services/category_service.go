package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portsrepo "github.com/blance-app/blance_backend/internal/core/ports/repositories"
	"github.com/blance-app/blance_backend/internal/dto"
)

// categoryService manages a user's transaction categories.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *categoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// CreateCategory adds an active category for the user. Names are unique per
// user case-insensitively.
func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.UserCategory, error) {
	name := strings.TrimSpace(req.CategoryName)
	if name == "" {
		return nil, fmt.Errorf("%w: category name cannot be blank", apperrors.ErrValidation)
	}

	existing, err := s.categoryRepo.ListCategoriesByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.CategoryName, name) {
			return nil, fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, name)
		}
	}

	now := time.Now()
	category := domain.UserCategory{
		CategoryID:   uuid.NewString(),
		UserID:       userID,
		CategoryName: name,
		IsExpense:    req.IsExpense,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("saving category: %w", err)
	}
	return &category, nil
}

// ListCategories returns the user's categories, optionally active only.
func (s *categoryService) ListCategories(ctx context.Context, userID string, activeOnly bool) ([]domain.UserCategory, error) {
	categories, err := s.categoryRepo.ListCategoriesByUser(ctx, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory renames the category or toggles its flags.
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.UserCategory, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("finding category %s: %w", categoryID, err)
	}
	if category.UserID != userID {
		return nil, fmt.Errorf("%w: category belongs to another user", apperrors.ErrForbidden)
	}

	category.CategoryName = strings.TrimSpace(req.CategoryName)
	if req.IsExpense != nil {
		category.IsExpense = *req.IsExpense
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}
	return category, nil
}
