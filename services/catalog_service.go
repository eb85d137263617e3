package services

import (
	"context"
	"errors"

	"github.com/voiceorder/menu-api/models"
	"gorm.io/gorm"
)

// CatalogReader is the part of the catalog the pricing engine needs.
type CatalogReader interface {
	GetMenuItem(ctx context.Context, id uint) (*models.MenuItemDetail, error)
	ListOptions(ctx context.Context, optionType models.OptionType) ([]models.Option, error)
}

// CatalogService reads categories, menu items and options. Catalog rows are
// never written here, so reads need no locking.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListCategories returns every category in creation order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &CategoryNotFoundError{ID: id}
		}
		return nil, err
	}
	return &category, nil
}

// ListMenuItems returns the available items of a category. An existing
// category without items yields an empty slice.
func (s *CatalogService) ListMenuItems(ctx context.Context, categoryID uint) ([]models.MenuItem, error) {
	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	items := make([]models.MenuItem, 0)
	err := s.DB.WithContext(ctx).
		Where("category_id = ? AND is_available = ?", categoryID, true).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetMenuItem returns an available menu item with its category.
// Unavailable items are reported as not found.
func (s *CatalogService) GetMenuItem(ctx context.Context, id uint) (*models.MenuItemDetail, error) {
	if id == 0 {
		return nil, &MenuItemNotFoundError{ID: id}
	}

	var item models.MenuItem
	err := s.DB.WithContext(ctx).
		Preload("Category").
		Where("is_available = ?", true).
		First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &MenuItemNotFoundError{ID: id}
		}
		return nil, err
	}

	return &models.MenuItemDetail{
		MenuItem:            item,
		CategoryName:        item.Category.Name,
		CategoryDisplayName: item.Category.DisplayName,
	}, nil
}

// ListOptions returns the available options of one option type.
func (s *CatalogService) ListOptions(ctx context.Context, optionType models.OptionType) ([]models.Option, error) {
	if !optionType.Valid() {
		return nil, &InvalidOptionTypeError{Type: string(optionType)}
	}

	options := make([]models.Option, 0)
	err := s.DB.WithContext(ctx).
		Where("option_type = ? AND is_available = ?", optionType, true).
		Order("id asc").
		Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// OptionsForMenuItem returns the options selectable for an item, or an empty
// slice when its category has no option type.
func (s *CatalogService) OptionsForMenuItem(ctx context.Context, item *models.MenuItemDetail) ([]models.Option, error) {
	optionType, ok := item.OptionType()
	if !ok {
		return make([]models.Option, 0), nil
	}
	return s.ListOptions(ctx, optionType)
}
