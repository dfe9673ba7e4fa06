package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"petcatalog/internal/domain"
	applog "petcatalog/internal/log"
	"petcatalog/internal/repos"
	"petcatalog/internal/services"
	"petcatalog/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// productOut is the wire shape: category and brand as names, not FK ids.
type productOut struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func toOut(p domain.Product) productOut {
	return productOut{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.CategoryName,
		Brand:       p.BrandName,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in domain.ProductIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if in.Name == "" || in.CategoryID < 1 || in.BrandID < 1 {
		applog.Warn(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, category_id and brand_id are required"})
	}
	p, err := h.Catalog.CreateProduct(in)
	if err != nil {
		applog.Error(c, "product.create", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.Status(fiber.StatusCreated).JSON(toOut(p))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	var in domain.ProductIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, err := h.Catalog.UpdateProduct(id, in)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		applog.Error(c, "product.update", err, map[string]any{"id": id})
		return fiber.ErrInternalServerError
	}
	return c.JSON(toOut(p))
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	var f repos.ProductFilter
	if q := c.Query("name"); q != "" {
		name, ok := validate.Name(q)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name filter"})
		}
		f.Name = name
	}
	if q := c.Query("category_id"); q != "" {
		id, ok := validate.ID(q)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category_id"})
		}
		f.CategoryID = id
	}
	if q := c.Query("brand_id"); q != "" {
		id, ok := validate.ID(q)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid brand_id"})
		}
		f.BrandID = id
	}

	products, err := h.Catalog.ListProducts(f)
	if err != nil {
		applog.Error(c, "product.list", err, nil)
		return fiber.ErrInternalServerError
	}
	out := make([]productOut, 0, len(products))
	for _, p := range products {
		out = append(out, toOut(p))
	}
	return c.JSON(out)
}
