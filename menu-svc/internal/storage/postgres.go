package storage

import (
	"context"
	"database/sql"
	"fmt"

	"tatini-menu/menu-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_categories (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS menu_dishes (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL REFERENCES menu_categories(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			image_url TEXT,
			is_veg BOOLEAN NOT NULL DEFAULT FALSE,
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS menu_addons (
			dish_id TEXT NOT NULL REFERENCES menu_dishes(id) ON DELETE CASCADE,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (dish_id, id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// LoadCatalog reads categories, dishes and add-ons in display order.
// Categories without dishes are kept so the menu can show them empty.
func (r *PostgresRepository) LoadCatalog(ctx context.Context) ([]domain.Category, error) {
	categories, err := r.listCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, nil
	}

	addons, err := r.listAddons(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]int, len(categories))
	for i, c := range categories {
		byCategory[c.ID] = i
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, category_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), is_veg
		FROM menu_dishes
		ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dish domain.Dish
		var categoryID string
		if err := rows.Scan(&dish.ID, &categoryID, &dish.Name, &dish.Description, &dish.Price, &dish.ImageURL, &dish.IsVeg); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		i, ok := byCategory[categoryID]
		if !ok {
			continue
		}
		dish.Addons = addons[dish.ID]
		categories[i].Dishes = append(categories[i].Dishes, dish)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}

	return categories, nil
}

func (r *PostgresRepository) listCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title
		FROM menu_categories
		ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c := domain.Category{Dishes: []domain.Dish{}}
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) listAddons(ctx context.Context) (map[string][]domain.Addon, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT dish_id, id, name, price
		FROM menu_addons
		ORDER BY dish_id, position, id`)
	if err != nil {
		return nil, fmt.Errorf("list addons: %w", err)
	}
	defer rows.Close()

	addons := map[string][]domain.Addon{}
	for rows.Next() {
		var dishID string
		var a domain.Addon
		if err := rows.Scan(&dishID, &a.ID, &a.Name, &a.Price); err != nil {
			return nil, fmt.Errorf("scan addon: %w", err)
		}
		addons[dishID] = append(addons[dishID], a)
	}
	return addons, rows.Err()
}
