package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
)

type categoryService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(settingsRepo portsrepo.SettingsRepositoryFacade, options ...ServiceOption) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  newBaseService(options),
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) Resolver(ctx context.Context) (domain.CategoryResolver, error) {
	_, settings, err := s.settings(ctx)
	if err != nil {
		return domain.CategoryResolver{}, err
	}
	return domain.NewCategoryResolver(settings.CustomCategories), nil
}

func (s *categoryService) ListCategories(ctx context.Context, txnType domain.TransactionType) ([]domain.Category, error) {
	if !txnType.IsValid() {
		return nil, apperrors.NewValidationError("invalid transaction type %q", txnType)
	}
	resolver, err := s.Resolver(ctx)
	if err != nil {
		return nil, err
	}
	return resolver.Available(txnType), nil
}

func (s *categoryService) AddCustomCategory(ctx context.Context, txnType domain.TransactionType, name string) (*domain.Category, error) {
	if !txnType.IsValid() {
		return nil, apperrors.NewValidationError("invalid transaction type %q", txnType)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("category name is required")
	}

	userID, settings, err := s.settings(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := domain.Category{ID: domain.NewCustomCategoryID(txnType, now), Name: name}
	if txnType == domain.Income {
		settings.CustomCategories.Income = append(slices.Clone(settings.CustomCategories.Income), category)
	} else {
		settings.CustomCategories.Expense = append(slices.Clone(settings.CustomCategories.Expense), category)
	}
	settings.UpdatedAt = now

	if err := s.settingsRepo.SaveSettings(ctx, userID, settings); err != nil {
		s.LogError(ctx, err, "Failed to save custom category")
		return nil, fmt.Errorf("failed to save custom category: %w", err)
	}
	s.LogInfo(ctx, "Custom category added", slog.String("category_id", category.ID), slog.String("type", string(txnType)))
	return &category, nil
}

func (s *categoryService) DeleteCustomCategory(ctx context.Context, txnType domain.TransactionType, categoryID string) error {
	if !txnType.IsValid() {
		return apperrors.NewValidationError("invalid transaction type %q", txnType)
	}
	userID, settings, err := s.settings(ctx)
	if err != nil {
		return err
	}

	byID := func(c domain.Category) bool { return c.ID == categoryID }
	current := settings.CustomCategories.For(txnType)
	if !slices.ContainsFunc(current, byID) {
		return nil
	}
	remaining := slices.DeleteFunc(slices.Clone(current), byID)
	if txnType == domain.Income {
		settings.CustomCategories.Income = remaining
	} else {
		settings.CustomCategories.Expense = remaining
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.SaveSettings(ctx, userID, settings); err != nil {
		s.LogError(ctx, err, "Failed to delete custom category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete custom category %s: %w", categoryID, err)
	}
	s.LogInfo(ctx, "Custom category deleted", slog.String("category_id", categoryID))
	return nil
}

func (s *categoryService) settings(ctx context.Context) (string, domain.Settings, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return "", domain.Settings{}, err
	}
	settings, err := loadSettings(ctx, s.settingsRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return "", domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return userID, settings, nil
}
