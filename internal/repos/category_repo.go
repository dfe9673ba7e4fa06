package repos

import (
	"petcatalog/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
  FROM categories
  ORDER BY name`)
	return out, err
}

// GetOrCreate resolves a category id by name, inserting on first sight.
// Used by the import path where categories arrive as labels.
func (r *CategoryRepo) GetOrCreate(name string) (int64, error) {
	if _, err := r.db.Exec(`
  INSERT INTO categories(name) VALUES (?)
  ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return 0, err
	}
	var id int64
	err := r.db.Get(&id, `SELECT id FROM categories WHERE name = ?`, name)
	return id, err
}
