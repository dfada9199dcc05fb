package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/storeflow/storefront/internal/events"
	"github.com/storeflow/storefront/internal/logging"
	"github.com/storeflow/storefront/internal/models"
	"github.com/storeflow/storefront/internal/repo"
	"github.com/storeflow/storefront/internal/search"
	"github.com/storeflow/storefront/internal/transport"
)

// CatalogService covers products, brands and categories. Search index
// maintenance and event publishing are best-effort side effects of the
// admin writes; a failure there never fails the request.
type CatalogService struct {
	Repo   *repo.CatalogRepo
	Index  search.Indexer
	Events events.Publisher
}

func (s *CatalogService) ListProducts(ctx context.Context, offset, limit int) ([]models.Product, int64, error) {
	return s.Repo.ListProducts(ctx, offset, limit)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	p := &models.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
	}
	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.reindex(ctx, p)
	s.publish(ctx, map[string]any{"type": "product_created", "product_id": p.ID, "sku": p.SKU}, p.ID)
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.UpdateProductRequest) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.BrandID != nil {
		p.BrandID = req.BrandID
	}
	if req.CategoryID != nil {
		p.CategoryID = req.CategoryID
	}

	if err := s.Repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}
	s.reindex(ctx, p)
	s.publish(ctx, map[string]any{"type": "product_updated", "product_id": p.ID, "sku": p.SKU}, p.ID)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return mapNotFound(err)
	}
	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search deindex failed", "product_id", id, "error", err)
		}
	}
	s.publish(ctx, map[string]any{"type": "product_deleted", "product_id": id}, id)
	return nil
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return s.Repo.ListBrands(ctx)
}

func (s *CatalogService) GetBrand(ctx context.Context, id uint) (*models.Brand, error) {
	b, err := s.Repo.GetBrand(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return b, nil
}

func (s *CatalogService) CreateBrand(ctx context.Context, req transport.CreateBrandRequest) (*models.Brand, error) {
	b := &models.Brand{Name: req.Name, Slug: req.Slug}
	if err := s.Repo.CreateBrand(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *CatalogService) UpdateBrand(ctx context.Context, id uint, req transport.UpdateBrandRequest) (*models.Brand, error) {
	b, err := s.Repo.GetBrand(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Slug != nil {
		b.Slug = *req.Slug
	}
	if err := s.Repo.SaveBrand(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id uint) error {
	return mapNotFound(s.Repo.DeleteBrand(ctx, id))
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	c, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	if req.ParentID != nil {
		if _, err := s.Repo.GetCategory(ctx, *req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: parent category not found", ErrValidation)
			}
			return nil, err
		}
	}
	c := &models.Category{Name: req.Name, Slug: req.Slug, ParentID: req.ParentID}
	if err := s.Repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, req transport.UpdateCategoryRequest) (*models.Category, error) {
	c, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Slug != nil {
		c.Slug = *req.Slug
	}
	if req.ParentID != nil {
		c.ParentID = req.ParentID
	}
	if err := s.Repo.SaveCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	return mapNotFound(s.Repo.DeleteCategory(ctx, id))
}

func (s *CatalogService) reindex(ctx context.Context, p *models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search index failed", "product_id", p.ID, "error", err)
	}
}

func (s *CatalogService) publish(ctx context.Context, event map[string]any, key uint) {
	if s.Events == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pctx, events.TopicProductEvents, strconv.FormatUint(uint64(key), 10), event); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "topic", events.TopicProductEvents, "error", err)
	}
}
