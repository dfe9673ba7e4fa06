package handlers

import (
	"petcatalog/internal/repos"
	"petcatalog/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler  *ProductHandler
	TaxonomyHandler *TaxonomyHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	brandRepo := repos.NewBrandRepo(db)
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, brandRepo, prodRepo)

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		TaxonomyHandler: &TaxonomyHandler{Catalog: catalogSvc},
	}
}
