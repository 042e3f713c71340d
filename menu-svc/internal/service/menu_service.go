package service

import (
	"context"
	"errors"
	"fmt"

	"tatini-menu/menu-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

var ErrInvalidTable = errors.New("table number out of range")

// LoadCatalog returns the catalog held by repo, or the built-in menu when
// there is no repository or it holds no categories.
func LoadCatalog(ctx context.Context, repo CatalogRepository) ([]domain.Category, error) {
	if repo == nil {
		return domain.DefaultCatalog(), nil
	}
	categories, err := repo.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(categories) == 0 {
		logrus.WithField("service", "menu-svc").Info("catalog tables empty, serving built-in menu")
		return domain.DefaultCatalog(), nil
	}
	return categories, nil
}

// MenuService serves the catalog, which never changes after construction.
type MenuService struct {
	categories []domain.Category
	dishes     map[string]domain.Dish
	venue      domain.Venue
	tableCount int
	qr         QRGenerator
	reviewURL  string
}

func NewMenuService(categories []domain.Category, venue domain.Venue, tableCount int, qr QRGenerator, reviewURL string) *MenuService {
	dishes := make(map[string]domain.Dish)
	for _, c := range categories {
		for _, d := range c.Dishes {
			dishes[d.ID] = d
		}
	}
	return &MenuService{
		categories: categories,
		dishes:     dishes,
		venue:      venue,
		tableCount: tableCount,
		qr:         qr,
		reviewURL:  reviewURL,
	}
}

func (s *MenuService) Categories() []domain.Category {
	return s.categories
}

func (s *MenuService) Dish(id string) (domain.Dish, bool) {
	d, ok := s.dishes[id]
	return d, ok
}

func (s *MenuService) Venue() domain.Venue {
	return s.venue
}

func (s *MenuService) TableCount() int {
	return s.tableCount
}

func (s *MenuService) TableQRCode(table int) ([]byte, error) {
	if table < 1 || table > s.tableCount {
		return nil, ErrInvalidTable
	}
	return s.qr.Generate(table)
}

func (s *MenuService) ReviewLink() string {
	return s.reviewURL
}
