package ingest

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

const (
	DefaultCategory = "Geral"
	DefaultBrand    = "Pet Shop"
	DefaultSlug     = "produto"
)

type categoryRule struct {
	label    string
	keywords []string
}

// categoryRules is an ordered list, not a map: the first category with any
// keyword substring match wins, so declaration order is the tie-breaker.
var categoryRules = []categoryRule{
	{"Comedouros e Bebedouros", []string{"comedouro", "bebedouro", "af", "anti-formiga"}},
	{"Brinquedos", []string{"ratinho", "varinha", "bola", "brinquedo", "rato"}},
	{"Higiene", []string{"escova", "tira pelo", "luva", "vapor", "pente", "pulga"}},
	{"Acessórios para Gato", []string{"bandeja", "pá", "gato", "kit", "graminha", "trilho"}},
	{"Acessórios para Cão", []string{"xixi dog", "sanitário", "cão"}},
	{"Transporte", []string{"caixa", "transporte", "mma"}},
	{"Diversos", []string{"mamadeira", "refil", "cata caca", "caneta", "gravadora"}},
}

var knownBrands = []string{"ferplast", "mma"}

// CategoryFor derives a catalog category from the product name.
func CategoryFor(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultCategory
	}
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return DefaultCategory
}

// BrandFor scans the name for known vendor brands. The NCM tax code is
// accepted for future hinting but not yet consulted.
func BrandFor(name, ncm string) string {
	lower := strings.ToLower(name)
	for _, b := range knownBrands {
		if strings.Contains(lower, b) {
			return strings.ToUpper(b[:1]) + b[1:]
		}
	}
	return DefaultBrand
}

// StockTier buckets a coarse stock estimate by unit cost: cheap items are
// stocked deep, expensive ones shallow. Thresholds are inclusive.
func StockTier(cost float64) int {
	switch {
	case cost <= 2.0:
		return 25
	case cost <= 10.0:
		return 15
	case cost <= 30.0:
		return 8
	default:
		return 3
	}
}

// Slugify turns a product name into a URL-safe token. Never empty.
func Slugify(name string) string {
	if s := goslug.Make(name); s != "" {
		return s
	}
	return DefaultSlug
}
