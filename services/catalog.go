package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/models"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/repository"
)

// CatalogService owns products, categories and product comments.
type CatalogService struct {
	products repository.ProductRepository
	comments repository.CommentRepository
	logger   *zap.Logger
}

func NewCatalogService(products repository.ProductRepository, comments repository.CommentRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{products: products, comments: comments, logger: logger}
}

type CreateProductInput struct {
	Name          string
	Description   string
	Price         int64
	Count         int
	SubCategoryID uint
}

// UpdateProductInput carries partial updates; nil fields are left alone.
type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *int64
	Count         *int
	SubCategoryID *uint
}

func (s *CatalogService) CreateProduct(ctx context.Context, userID string, in CreateProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if in.Count < 0 {
		return nil, fmt.Errorf("%w: count must not be negative", ErrValidation)
	}

	product := &models.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Count:         in.Count,
		SubCategoryID: in.SubCategoryID,
		UserID:        userID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.Uint("product_id", product.ID),
		zap.String("user_id", userID))
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	return product, err
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

// UpdateProduct applies the non-nil fields. Only the owning user may
// update a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, userID string, id uint, in UpdateProductInput) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	if product.UserID != userID {
		return nil, fmt.Errorf("%w: only the owner may update this product", ErrForbidden)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
		product.Price = *in.Price
	}
	if in.Count != nil {
		if *in.Count < 0 {
			return nil, fmt.Errorf("%w: count must not be negative", ErrValidation)
		}
		product.Count = *in.Count
	}
	if in.SubCategoryID != nil {
		product.SubCategoryID = *in.SubCategoryID
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product; owner-only, like UpdateProduct.
func (s *CatalogService) DeleteProduct(ctx context.Context, userID string, id uint) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return err
	}
	if product.UserID != userID {
		return fmt.Errorf("%w: only the owner may delete this product", ErrForbidden)
	}
	return s.products.Delete(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.products.ListCategories(ctx)
}

// ListComments returns all comments on a product. An unknown product is
// ErrNotFound; a missing/zero id never reaches the repository.
func (s *CatalogService) ListComments(ctx context.Context, productID uint) ([]models.Comment, error) {
	if productID == 0 {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, err
	}
	return s.comments.ListByProduct(ctx, productID)
}
