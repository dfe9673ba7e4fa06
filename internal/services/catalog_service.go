package services

import (
	"database/sql"
	"errors"

	"petcatalog/internal/domain"
	"petcatalog/internal/repos"
)

var ErrNotFound = errors.New("not found")

type CatalogService struct {
	Cats   *repos.CategoryRepo
	Brands *repos.BrandRepo
	Prods  *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, brands *repos.BrandRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Brands: brands, Prods: prods}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) ListBrands() ([]domain.Brand, error) {
	return s.Brands.List()
}

func (s *CatalogService) CreateProduct(in domain.ProductIn) (domain.Product, error) {
	return s.Prods.Create(in)
}

// UpdateProduct replaces an existing product. Missing ids report ErrNotFound
// rather than creating.
func (s *CatalogService) UpdateProduct(id int64, in domain.ProductIn) (domain.Product, error) {
	if _, err := s.Prods.Get(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	return s.Prods.Update(id, in)
}

func (s *CatalogService) ListProducts(f repos.ProductFilter) ([]domain.Product, error) {
	return s.Prods.List(f)
}
