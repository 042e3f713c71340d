package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"tatini-menu/menu-svc/internal/cart"
	"tatini-menu/menu-svc/internal/domain"
	"tatini-menu/menu-svc/internal/order"
	"tatini-menu/menu-svc/internal/session"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownDish        = errors.New("dish not on the menu")
	ErrUnknownAddon       = errors.New("add-on not offered with this dish")
	ErrAddonParentMissing = errors.New("add the dish before its add-ons")
)

type OrderingConfig struct {
	TableCount    int
	WhatsAppPhone string
	Session       session.Options
}

type sessionEntry struct {
	session  *session.Session
	lastSeen time.Time
}

// OrderingService keeps one in-memory session per browser session and
// persists only the table selection, per device. A new browser session
// starts with an empty cart and picks up the device's table.
type OrderingService struct {
	menu      DishLookup
	tables    TableStore
	gate      ReviewGate
	publisher OrderPublisher
	cfg       OrderingConfig
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewOrderingService wires the service. publisher may be nil, in which
// case hand-offs are not announced.
func NewOrderingService(menu DishLookup, tables TableStore, gate ReviewGate, publisher OrderPublisher, cfg OrderingConfig) *OrderingService {
	return &OrderingService{
		menu:      menu,
		tables:    tables,
		gate:      gate,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		sessions:  make(map[string]*sessionEntry),
	}
}

func (s *OrderingService) View(ctx context.Context, id domain.Identity) domain.SessionView {
	return s.session(ctx, id).View()
}

func (s *OrderingService) SelectTable(ctx context.Context, id domain.Identity, table int) (domain.SessionView, error) {
	if table < 1 || table > s.cfg.TableCount {
		return domain.SessionView{}, ErrInvalidTable
	}
	sess := s.session(ctx, id)
	if err := sess.SelectTable(table); err != nil {
		return domain.SessionView{}, err
	}
	if err := s.tables.SetTable(ctx, id.DeviceID, table); err != nil {
		s.logger(id).WithError(err).Warn("table selection not persisted")
	}
	return sess.View(), nil
}

func (s *OrderingService) ClearTable(ctx context.Context, id domain.Identity) (domain.SessionView, error) {
	if err := s.tables.ClearTable(ctx, id.DeviceID); err != nil {
		return domain.SessionView{}, err
	}
	sess := s.session(ctx, id)
	sess.Reset()
	return sess.View(), nil
}

func (s *OrderingService) AddItem(ctx context.Context, id domain.Identity, dishID, addonID string) (domain.SessionView, error) {
	dish, ok := s.menu.Dish(dishID)
	if !ok {
		return domain.SessionView{}, ErrUnknownDish
	}

	sess := s.session(ctx, id)
	line := domain.CartLine{
		ID:          dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		Price:       dish.Price,
		IsVeg:       dish.IsVeg,
	}
	if addonID != "" {
		addon, ok := dish.Addon(addonID)
		if !ok {
			return domain.SessionView{}, ErrUnknownAddon
		}
		if _, inCart := sess.Line(dish.ID); !inCart {
			return domain.SessionView{}, ErrAddonParentMissing
		}
		line = domain.CartLine{
			ID:          cart.AddonLineID(dish.ID, addon.ID),
			Name:        addon.Name,
			Description: "Add-on for " + dish.Name,
			Price:       addon.Price,
			IsVeg:       true,
			IsAddon:     true,
		}
	}

	if err := sess.AddItem(line); err != nil {
		return domain.SessionView{}, err
	}
	return sess.View(), nil
}

func (s *OrderingService) ChangeQuantity(ctx context.Context, id domain.Identity, lineID string, delta int) (domain.SessionView, error) {
	sess := s.session(ctx, id)
	if err := sess.ChangeQuantity(lineID, delta); err != nil {
		return domain.SessionView{}, err
	}
	return sess.View(), nil
}

func (s *OrderingService) SetLineNote(ctx context.Context, id domain.Identity, lineID, note string) (domain.SessionView, error) {
	sess := s.session(ctx, id)
	if err := sess.SetLineNote(lineID, note); err != nil {
		return domain.SessionView{}, err
	}
	return sess.View(), nil
}

func (s *OrderingService) SetOrderNote(ctx context.Context, id domain.Identity, note string) (domain.SessionView, error) {
	sess := s.session(ctx, id)
	if err := sess.SetOrderNote(note); err != nil {
		return domain.SessionView{}, err
	}
	return sess.View(), nil
}

func (s *OrderingService) OpenCart(ctx context.Context, id domain.Identity) (domain.SessionView, error) {
	sess := s.session(ctx, id)
	if err := sess.OpenCart(); err != nil {
		return domain.SessionView{}, err
	}
	return sess.View(), nil
}

func (s *OrderingService) CloseCart(ctx context.Context, id domain.Identity) (domain.SessionView, error) {
	sess := s.session(ctx, id)
	if err := sess.CloseCart(); err != nil {
		return domain.SessionView{}, err
	}
	return sess.View(), nil
}

// ShowToWaiter closes the cart and returns the confirmation screen. The
// review prompt is offered at most once per browser session; if the gate
// cannot be reached the prompt is skipped.
func (s *OrderingService) ShowToWaiter(ctx context.Context, id domain.Identity) (domain.WaiterConfirmation, error) {
	sess := s.session(ctx, id)
	view, prompt, err := sess.ShowToWaiter(func() bool {
		if id.SessionID == "" {
			return false
		}
		first, err := s.gate.TryMark(ctx, id.SessionID)
		if err != nil {
			s.logger(id).WithError(err).Warn("review gate unavailable")
			return false
		}
		return first
	})
	if err != nil {
		return domain.WaiterConfirmation{}, err
	}

	table := *view.Table
	s.publish(ctx, id, domain.EventOrderWaiter, table, view)

	return domain.WaiterConfirmation{
		Table:        table,
		Lines:        view.Lines,
		TotalAmount:  view.TotalAmount,
		OrderNote:    view.OrderNote,
		OrderText:    order.FormatText(table, view.Lines, view.OrderNote),
		ReviewPrompt: prompt,
	}, nil
}

func (s *OrderingService) DismissReview(ctx context.Context, id domain.Identity) (domain.SessionView, error) {
	sess := s.session(ctx, id)
	if err := sess.DismissReview(); err != nil {
		return domain.SessionView{}, err
	}
	return sess.View(), nil
}

func (s *OrderingService) WhatsAppLink(ctx context.Context, id domain.Identity) (domain.OutboundLink, error) {
	view := s.session(ctx, id).View()
	if view.Table == nil {
		return domain.OutboundLink{}, session.ErrNoTable
	}
	if len(view.Lines) == 0 {
		return domain.OutboundLink{}, session.ErrEmptyCart
	}

	table := *view.Table
	encoded := order.FormatOrder(table, view.Lines, view.OrderNote)
	s.publish(ctx, id, domain.EventOrderWhatsApp, table, view)

	return domain.OutboundLink{
		URL:  order.WhatsAppLink(s.cfg.WhatsAppPhone, encoded),
		Text: order.FormatText(table, view.Lines, view.OrderNote),
	}, nil
}

// Sweep closes and forgets sessions idle for longer than maxIdle and
// reports how many were evicted.
func (s *OrderingService) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			e.session.Close()
			delete(s.sessions, key)
			evicted++
		}
	}
	return evicted
}

// RunSweeper sweeps every interval until ctx is done.
func (s *OrderingService) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(maxIdle); n > 0 {
				logrus.WithField("service", "menu-svc").WithField("evicted", n).Info("swept idle sessions")
			}
		}
	}
}

func (s *OrderingService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.sessions {
		e.session.Close()
		delete(s.sessions, key)
	}
}

// session returns the browser session's state, creating it from the
// device's persisted table on first use. A table store failure starts the
// session without a table instead of failing the request.
func (s *OrderingService) session(ctx context.Context, id domain.Identity) *session.Session {
	key := sessionKey(id)
	if sess := s.lookup(key); sess != nil {
		return sess
	}

	table, ok, err := s.tables.GetTable(ctx, id.DeviceID)
	if err != nil {
		s.logger(id).WithError(err).Warn("table store unreadable, starting without table")
	}
	if err != nil || !ok {
		table = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, exists := s.sessions[key]; exists {
		e.lastSeen = s.now()
		return e.session
	}
	sess := session.New(table, s.cfg.Session)
	s.sessions[key] = &sessionEntry{session: sess, lastSeen: s.now()}
	return sess
}

func (s *OrderingService) lookup(key string) *session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[key]; ok {
		e.lastSeen = s.now()
		return e.session
	}
	return nil
}

// sessionKey falls back to the device for clients that send no session id.
func sessionKey(id domain.Identity) string {
	if id.SessionID != "" {
		return id.SessionID
	}
	return id.DeviceID
}

func (s *OrderingService) publish(ctx context.Context, id domain.Identity, eventType string, table int, view domain.SessionView) {
	if s.publisher == nil {
		return
	}
	items := make([]domain.OrderEventItem, 0, len(view.Lines))
	for _, l := range view.Lines {
		items = append(items, domain.OrderEventItem{
			DishID:   l.ID,
			Name:     l.Name,
			Quantity: l.Quantity,
			IsAddon:  l.IsAddon,
		})
	}
	event := domain.OrderEvent{
		Type:      eventType,
		Table:     table,
		Items:     items,
		Total:     view.TotalAmount,
		Timestamp: s.now().UTC(),
	}
	if err := s.publisher.PublishOrder(ctx, event); err != nil {
		s.logger(id).WithError(err).WithField("type", eventType).Warn("order event not published")
	}
}

func (s *OrderingService) logger(id domain.Identity) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"service": "menu-svc",
		"device":  id.DeviceID,
		"session": id.SessionID,
	})
}
