package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "petcatalog/internal/log"
	"petcatalog/internal/services"
)

type TaxonomyHandler struct {
	Catalog *services.CatalogService
}

func (h *TaxonomyHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "category.list", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(cats)
}

func (h *TaxonomyHandler) Brands(c *fiber.Ctx) error {
	brands, err := h.Catalog.ListBrands()
	if err != nil {
		applog.Error(c, "brand.list", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(brands)
}
