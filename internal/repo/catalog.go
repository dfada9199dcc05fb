package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/storeflow/storefront/internal/db"
	"github.com/storeflow/storefront/internal/models"
)

// CatalogRepo reads on the anonymous handle and writes on the
// service-role handle, mirroring how the public and admin routes map
// onto the two connections.
type CatalogRepo struct {
	Client *db.Client
}

func (r *CatalogRepo) ListProducts(ctx context.Context, offset, limit int) ([]models.Product, int64, error) {
	var total int64
	if err := r.Client.Anon().WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Product
	if err := r.Client.Anon().WithContext(ctx).
		Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CatalogRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.Client.Anon().WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.Client.Service().WithContext(ctx).Create(p).Error
}

func (r *CatalogRepo) SaveProduct(ctx context.Context, p *models.Product) error {
	return r.Client.Service().WithContext(ctx).Save(p).Error
}

func (r *CatalogRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.Client.Service().WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CatalogRepo) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var items []models.Brand
	if err := r.Client.Anon().WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepo) GetBrand(ctx context.Context, id uint) (*models.Brand, error) {
	var b models.Brand
	if err := r.Client.Anon().WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *CatalogRepo) CreateBrand(ctx context.Context, b *models.Brand) error {
	return r.Client.Service().WithContext(ctx).Create(b).Error
}

func (r *CatalogRepo) SaveBrand(ctx context.Context, b *models.Brand) error {
	return r.Client.Service().WithContext(ctx).Save(b).Error
}

func (r *CatalogRepo) DeleteBrand(ctx context.Context, id uint) error {
	res := r.Client.Service().WithContext(ctx).Delete(&models.Brand{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	if err := r.Client.Anon().WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepo) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	if err := r.Client.Anon().WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepo) CreateCategory(ctx context.Context, c *models.Category) error {
	return r.Client.Service().WithContext(ctx).Create(c).Error
}

func (r *CatalogRepo) SaveCategory(ctx context.Context, c *models.Category) error {
	return r.Client.Service().WithContext(ctx).Save(c).Error
}

func (r *CatalogRepo) DeleteCategory(ctx context.Context, id uint) error {
	res := r.Client.Service().WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
