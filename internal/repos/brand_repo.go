package repos

import (
	"petcatalog/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BrandRepo struct{ db *sqlx.DB }

func NewBrandRepo(db *sqlx.DB) *BrandRepo { return &BrandRepo{db: db} }

func (r *BrandRepo) List() ([]domain.Brand, error) {
	var out []domain.Brand
	err := r.db.Select(&out, `
  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
  FROM brands
  ORDER BY name`)
	return out, err
}

func (r *BrandRepo) GetOrCreate(name string) (int64, error) {
	if _, err := r.db.Exec(`
  INSERT INTO brands(name) VALUES (?)
  ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return 0, err
	}
	var id int64
	err := r.db.Get(&id, `SELECT id FROM brands WHERE name = ?`, name)
	return id, err
}
