package domain

type Category struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at,omitempty"`
}

type Brand struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at,omitempty"`
}

type Product struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Description  string  `db:"description"`
	CategoryID   int64   `db:"category_id"`
	BrandID      int64   `db:"brand_id"`
	CategoryName string  `db:"category_name"`
	BrandName    string  `db:"brand_name"`
	Price        float64 `db:"price"`
	Stock        int     `db:"stock"`
	CreatedAt    string  `db:"created_at"`
	UpdatedAt    string  `db:"updated_at"`
}

// ProductIn is the write shape accepted by the API and the importer adapter.
type ProductIn struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"category_id"`
	BrandID     int64   `json:"brand_id"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}
