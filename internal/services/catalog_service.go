package services

import (
	"context"
	"errors"

	"github.com/lostfound-vn/backend/internal/models"
	"gorm.io/gorm"
)

// CatalogService reads the service package catalog. Packages are reference
// data: seeded at startup, never mutated through this core.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListPackages(ctx context.Context) ([]models.ServicePackage, error) {
	var packages []models.ServicePackage
	err := s.db.WithContext(ctx).Order("position ASC").Find(&packages).Error
	return packages, err
}

func (s *CatalogService) GetPackage(ctx context.Context, id uint) (*models.ServicePackage, error) {
	var pkg models.ServicePackage
	err := s.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}
