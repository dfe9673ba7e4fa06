package ingest

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Margin above which a product is flagged for promotional display.
const featuredMarginPct = 150

// Timestamps are fixed: the source table carries no dates and the output
// document must be reproducible run to run.
const catalogTimestamp = "2025-01-01T00:00:00Z"

var spaceRuns = regexp.MustCompile(`\s+`)

// CleanName flattens embedded newlines and collapses whitespace runs.
func CleanName(name string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(strings.ReplaceAll(name, "\n", " "), " "))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildRecord assembles a ProductRecord from the normalized fields. The
// second return is false when the row must be dropped (non-positive final
// price), in which case no id is consumed.
func BuildRecord(id int, f NormalizedFields, row RawRow, variant Variant) (ProductRecord, bool) {
	finalPrice := f.UnitPrice
	promoApplied := f.PromoPrice > 0 && f.PromoPrice < f.UnitPrice
	if promoApplied {
		finalPrice = f.PromoPrice
	}
	if finalPrice <= 0 {
		return ProductRecord{}, false
	}

	category := CategoryFor(f.Name)
	brand := DefaultBrand
	if variant == VariantFull {
		brand = BrandFor(f.Name, row["NCM"])
	}
	stock := StockTier(f.Cost)
	s := Slugify(f.Name)

	rec := ProductRecord{
		ID:    id,
		Name:  f.Name,
		Slug:  s,
		Price: round2(finalPrice),
		Cost:   round2(f.Cost),
		Margin: round2(f.Margin),
		Image:  fmt.Sprintf("/images/products/%s.jpg", s),
		Images: []string{
			fmt.Sprintf("/images/products/%s.jpg", s),
			fmt.Sprintf("/images/products/%s-2.jpg", s),
		},
		Description:      fmt.Sprintf("%s. Produto de alta qualidade para seu pet.", f.Name),
		ShortDescription: f.Name,
		Category:         category,
		Brand:            brand,
		Stock:            stock,
		InStock:          stock > 0,
		Featured:         f.Margin > featuredMarginPct,
		Active:           strings.EqualFold(strings.TrimSpace(row["cadastro"]), "ok"),
		Weight:           0.5,
		Dimensions:       Dimensions{Width: 10, Height: 5, Depth: 10},
		Tags:             buildTags(category, brand, variant),
		SEO: SEO{
			Title:       fmt.Sprintf("%s - %s", f.Name, brand),
			Description: fmt.Sprintf("Compre %s na nossa loja. %s de qualidade para seu pet.", f.Name, category),
			Keywords:    buildKeywords(f.Name, category, brand, variant),
		},
		CreatedAt: catalogTimestamp,
		UpdatedAt: catalogTimestamp,
	}
	if promoApplied {
		orig := round2(f.UnitPrice)
		rec.OriginalPrice = &orig
	}
	return rec, true
}

func buildTags(category, brand string, variant Variant) []string {
	catTag := strings.ReplaceAll(strings.ToLower(category), " ", "-")
	if variant == VariantFull {
		return []string{catTag, strings.ToLower(brand), "pet", "animal"}
	}
	return []string{catTag, "pet", "animal"}
}

func buildKeywords(name, category, brand string, variant Variant) []string {
	if variant == VariantFull {
		return []string{strings.ToLower(name), strings.ToLower(category), strings.ToLower(brand), "pet"}
	}
	return []string{strings.ToLower(name), strings.ToLower(category), "pet"}
}
