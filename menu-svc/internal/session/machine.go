package session

import (
	"errors"
	"fmt"
)

type State string

const (
	StateSplash           State = "splash"
	StateTableSelect      State = "table_select"
	StateMenu             State = "menu"
	StateMenuCartOpen     State = "menu_cart_open"
	StateMenuReviewPrompt State = "menu_review_prompt"
)

type Event string

const (
	EventSplashDone      Event = "splash_done"
	EventTableSelected   Event = "table_selected"
	EventTableCleared    Event = "table_cleared"
	EventCartOpened      Event = "cart_opened"
	EventCartClosed      Event = "cart_closed"
	EventOrderShown      Event = "order_shown"
	EventReviewPrompted  Event = "review_prompted"
	EventReviewDismissed Event = "review_dismissed"
)

var ErrInvalidTransition = errors.New("invalid view transition")

var transitions = map[State]map[Event]State{
	StateSplash: {
		EventSplashDone: StateTableSelect,
	},
	StateTableSelect: {
		EventTableSelected: StateMenu,
		EventTableCleared:  StateTableSelect,
	},
	StateMenu: {
		EventCartOpened:     StateMenuCartOpen,
		EventReviewPrompted: StateMenuReviewPrompt,
		EventTableCleared:   StateTableSelect,
	},
	StateMenuCartOpen: {
		EventCartClosed:     StateMenu,
		EventOrderShown:     StateMenu,
		EventReviewPrompted: StateMenuReviewPrompt,
		EventTableCleared:   StateTableSelect,
	},
	StateMenuReviewPrompt: {
		EventReviewDismissed: StateMenu,
		EventTableCleared:    StateTableSelect,
	},
}

// Transition returns the state reached from `from` on ev.
func Transition(from State, ev Event) (State, error) {
	if to, ok := transitions[from][ev]; ok {
		return to, nil
	}
	return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, from)
}
