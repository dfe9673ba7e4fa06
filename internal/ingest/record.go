package ingest

// RawRow maps a CSV column name to its raw cell text. Rows are consumed once
// per pipeline run.
type RawRow map[string]string

// NormalizedFields holds the per-row numeric fields after locale cleanup.
// Discarded once the record is built.
type NormalizedFields struct {
	Name       string
	UnitPrice  float64
	PromoPrice float64
	Cost       float64
	Margin     float64 // bare percentage, 150 means 150%
}

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Depth  int `json:"depth"`
}

type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// ProductRecord is the pipeline's output unit. Field order matters for the
// serialized document.
type ProductRecord struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Price            float64    `json:"price"`
	OriginalPrice    *float64   `json:"originalPrice,omitempty"`
	Cost             float64    `json:"cost"`
	Margin           float64    `json:"margin"`
	Image            string     `json:"image"`
	Images           []string   `json:"images"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"shortDescription"`
	Category         string     `json:"category"`
	Brand            string     `json:"brand"`
	Stock            int        `json:"stock"`
	InStock          bool       `json:"inStock"`
	Featured         bool       `json:"featured"`
	Active           bool       `json:"active"`
	Weight           float64    `json:"weight"`
	Dimensions       Dimensions `json:"dimensions"`
	Tags             []string   `json:"tags"`
	SEO              SEO        `json:"seo"`
	CreatedAt        string     `json:"createdAt"`
	UpdatedAt        string     `json:"updatedAt"`
}
