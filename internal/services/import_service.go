package services

import (
	"fmt"

	"petcatalog/internal/domain"
	"petcatalog/internal/ingest"
	"petcatalog/internal/repos"
)

// ImportService loads pipeline output into the relational catalog. Category
// and brand labels are resolved to rows on first sight; one product row is
// inserted per record.
type ImportService struct {
	Cats   *repos.CategoryRepo
	Brands *repos.BrandRepo
	Prods  *repos.ProductRepo
}

func NewImportService(cats *repos.CategoryRepo, brands *repos.BrandRepo, prods *repos.ProductRepo) *ImportService {
	return &ImportService{Cats: cats, Brands: brands, Prods: prods}
}

// Load inserts the records and returns how many were stored. It stops on the
// first storage error: a failing store is fatal, unlike malformed source
// cells.
func (s *ImportService) Load(records []ingest.ProductRecord) (int, error) {
	loaded := 0
	for _, r := range records {
		catID, err := s.Cats.GetOrCreate(r.Category)
		if err != nil {
			return loaded, fmt.Errorf("category %q: %w", r.Category, err)
		}
		brandID, err := s.Brands.GetOrCreate(r.Brand)
		if err != nil {
			return loaded, fmt.Errorf("brand %q: %w", r.Brand, err)
		}
		_, err = s.Prods.Create(domain.ProductIn{
			Name:        r.Name,
			Description: r.Description,
			CategoryID:  catID,
			BrandID:     brandID,
			Price:       r.Price,
			Stock:       r.Stock,
		})
		if err != nil {
			return loaded, fmt.Errorf("product %q: %w", r.Name, err)
		}
		loaded++
	}
	return loaded, nil
}
