// Package session models what one device is looking at: the view state,
// its table, its cart and the order note.
package session

import (
	"errors"
	"sync"
	"time"

	"tatini-menu/menu-svc/internal/cart"
	"tatini-menu/menu-svc/internal/domain"
)

var (
	ErrNoTable   = errors.New("no table selected")
	ErrEmptyCart = errors.New("cart is empty")
)

type Options struct {
	SplashDelay       time.Duration
	ReviewPromptDelay time.Duration
}

// Session is safe for concurrent use. Its timers belong to it: once the
// session is closed or reset, pending timers never change its state.
type Session struct {
	mu sync.Mutex

	opts      Options
	state     State
	table     int
	cart      *cart.Cart
	orderNote string

	splashTimer *time.Timer
	reviewTimer *time.Timer
	// generation is bumped on reset and close so callbacks that already
	// fired but lost the race for mu can tell they are stale.
	generation int
	closed     bool
}

// New starts a session on the splash screen. table is the persisted table
// number, 0 when none is known.
func New(table int, opts Options) *Session {
	s := &Session{
		opts:  opts,
		state: StateSplash,
		table: table,
		cart:  cart.New(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if opts.SplashDelay <= 0 {
		s.finishSplashLocked()
		return s
	}
	s.splashTimer = s.scheduleLocked(opts.SplashDelay, s.finishSplashLocked)
	return s
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Table() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table, s.table > 0
}

// SelectTable records the table. During the splash the table is only
// remembered and the splash exit lands on the menu.
func (s *Session) SelectTable(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSplash {
		s.table = n
		return nil
	}
	if err := s.fireLocked(EventTableSelected); err != nil {
		return err
	}
	s.table = n
	return nil
}

// Reset discards the table, cart, order note and pending timers and shows
// the table picker, as a fresh session would.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimersLocked()
	if s.state == StateSplash {
		s.state = StateTableSelect
	} else {
		_ = s.fireLocked(EventTableCleared)
	}
	s.table = 0
	s.cart.Reset()
	s.orderNote = ""
}

func (s *Session) AddItem(line domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == 0 {
		return ErrNoTable
	}
	s.cart.AddItem(line)
	return nil
}

func (s *Session) ChangeQuantity(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == 0 {
		return ErrNoTable
	}
	s.cart.ChangeQuantity(id, delta)
	return nil
}

func (s *Session) SetLineNote(id, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == 0 {
		return ErrNoTable
	}
	s.cart.SetLineNote(id, note)
	return nil
}

func (s *Session) SetOrderNote(note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == 0 {
		return ErrNoTable
	}
	s.orderNote = note
	return nil
}

func (s *Session) Line(id string) (domain.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Line(id)
}

func (s *Session) OpenCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Len() == 0 {
		return ErrEmptyCart
	}
	return s.fireLocked(EventCartOpened)
}

func (s *Session) CloseCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fireLocked(EventCartClosed)
}

// ShowToWaiter closes the cart and returns what the waiter is shown.
// allowPrompt is consulted only once the transition succeeded; when it
// returns true the review prompt appears after ReviewPromptDelay.
func (s *Session) ShowToWaiter(allowPrompt func() bool) (domain.SessionView, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table == 0 {
		return domain.SessionView{}, false, ErrNoTable
	}
	if err := s.fireLocked(EventOrderShown); err != nil {
		return domain.SessionView{}, false, err
	}

	prompt := allowPrompt != nil && allowPrompt()
	if prompt {
		if s.opts.ReviewPromptDelay <= 0 {
			_ = s.fireLocked(EventReviewPrompted)
		} else {
			s.reviewTimer = s.scheduleLocked(s.opts.ReviewPromptDelay, func() {
				// A cart reopened meanwhile is closed by the prompt.
				_ = s.fireLocked(EventReviewPrompted)
			})
		}
	}
	return s.viewLocked(), prompt, nil
}

func (s *Session) DismissReview() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fireLocked(EventReviewDismissed)
}

func (s *Session) View() domain.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Close stops pending timers. A closed session keeps answering reads but
// no timer will mutate it again.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimersLocked()
}

func (s *Session) viewLocked() domain.SessionView {
	v := domain.SessionView{
		State:         string(s.state),
		Lines:         s.cart.Lines(),
		TotalQuantity: s.cart.TotalQuantity(),
		TotalAmount:   s.cart.TotalAmount(),
		OrderNote:     s.orderNote,
	}
	if s.table > 0 {
		table := s.table
		v.Table = &table
	}
	return v
}

func (s *Session) finishSplashLocked() {
	if err := s.fireLocked(EventSplashDone); err != nil {
		return
	}
	if s.table > 0 {
		_ = s.fireLocked(EventTableSelected)
	}
}

func (s *Session) fireLocked(ev Event) error {
	to, err := Transition(s.state, ev)
	if err != nil {
		return err
	}
	s.state = to
	return nil
}

func (s *Session) scheduleLocked(delay time.Duration, fn func()) *time.Timer {
	gen := s.generation
	return time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.generation != gen {
			return
		}
		fn()
	})
}

func (s *Session) stopTimersLocked() {
	s.generation++
	if s.splashTimer != nil {
		s.splashTimer.Stop()
		s.splashTimer = nil
	}
	if s.reviewTimer != nil {
		s.reviewTimer.Stop()
		s.reviewTimer = nil
	}
}
