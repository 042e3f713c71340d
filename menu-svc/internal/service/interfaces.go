package service

import (
	"context"

	"tatini-menu/menu-svc/internal/domain"
)

type CatalogRepository interface {
	LoadCatalog(ctx context.Context) ([]domain.Category, error)
}

type TableStore interface {
	GetTable(ctx context.Context, deviceID string) (int, bool, error)
	SetTable(ctx context.Context, deviceID string, table int) error
	ClearTable(ctx context.Context, deviceID string) error
}

type ReviewGate interface {
	TryMark(ctx context.Context, sessionID string) (bool, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type DishLookup interface {
	Dish(id string) (domain.Dish, bool)
}

type MenuServiceInterface interface {
	DishLookup
	Categories() []domain.Category
	Venue() domain.Venue
	TableCount() int
	TableQRCode(table int) ([]byte, error)
	ReviewLink() string
}

type OrderingServiceInterface interface {
	View(ctx context.Context, id domain.Identity) domain.SessionView
	SelectTable(ctx context.Context, id domain.Identity, table int) (domain.SessionView, error)
	ClearTable(ctx context.Context, id domain.Identity) (domain.SessionView, error)
	AddItem(ctx context.Context, id domain.Identity, dishID, addonID string) (domain.SessionView, error)
	ChangeQuantity(ctx context.Context, id domain.Identity, lineID string, delta int) (domain.SessionView, error)
	SetLineNote(ctx context.Context, id domain.Identity, lineID, note string) (domain.SessionView, error)
	SetOrderNote(ctx context.Context, id domain.Identity, note string) (domain.SessionView, error)
	OpenCart(ctx context.Context, id domain.Identity) (domain.SessionView, error)
	CloseCart(ctx context.Context, id domain.Identity) (domain.SessionView, error)
	ShowToWaiter(ctx context.Context, id domain.Identity) (domain.WaiterConfirmation, error)
	DismissReview(ctx context.Context, id domain.Identity) (domain.SessionView, error)
	WhatsAppLink(ctx context.Context, id domain.Identity) (domain.OutboundLink, error)
}

var (
	_ MenuServiceInterface     = (*MenuService)(nil)
	_ OrderingServiceInterface = (*OrderingService)(nil)
)
