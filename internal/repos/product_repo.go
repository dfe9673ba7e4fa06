package repos

import (
	"strings"

	"petcatalog/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// ProductFilter narrows List results; zero values mean no filtering.
type ProductFilter struct {
	Name       string
	CategoryID int64
	BrandID    int64
}

const productSelect = `
  SELECT
    p.id, p.name, COALESCE(p.description,'') AS description,
    p.category_id, p.brand_id,
    c.name AS category_name, b.name AS brand_name,
    p.price, p.stock,
    p.created_at, COALESCE(p.updated_at,'') AS updated_at
  FROM products p
  JOIN categories c ON c.id = p.category_id
  JOIN brands b     ON b.id = p.brand_id`

func (r *ProductRepo) Create(in domain.ProductIn) (domain.Product, error) {
	res, err := r.db.Exec(`
  INSERT INTO products(name, description, category_id, brand_id, price, stock)
  VALUES (?,?,?,?,?,?)`,
		in.Name, in.Description, in.CategoryID, in.BrandID, in.Price, in.Stock)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(id)
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, productSelect+` WHERE p.id = ?`, id)
	return p, err
}

func (r *ProductRepo) Update(id int64, in domain.ProductIn) (domain.Product, error) {
	_, err := r.db.Exec(`
  UPDATE products
  SET name = ?, description = ?, category_id = ?, brand_id = ?, price = ?, stock = ?,
      updated_at = CURRENT_TIMESTAMP
  WHERE id = ?`,
		in.Name, in.Description, in.CategoryID, in.BrandID, in.Price, in.Stock, id)
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(id)
}

func (r *ProductRepo) List(f ProductFilter) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if f.Name != "" {
		where += ` AND LOWER(p.name) LIKE ?`
		args = append(args, "%"+strings.ToLower(f.Name)+"%")
	}
	if f.CategoryID > 0 {
		where += ` AND p.category_id = ?`
		args = append(args, f.CategoryID)
	}
	if f.BrandID > 0 {
		where += ` AND p.brand_id = ?`
		args = append(args, f.BrandID)
	}

	var out []domain.Product
	err := r.db.Select(&out, productSelect+` WHERE `+where+` ORDER BY p.id`, args...)
	return out, err
}
