package entity

import (
	"errors"

	"grafica-order-bot/internal/constant"
)

var ErrEmptyCart = errors.New("cart is empty")
var ErrEmptyMaterial = errors.New("material cannot be empty")

// CartItem is one (material, quantity) line of an in-progress order.
// Quantity is deliberately free text: the shop writes things like
// "3 caixas", and the stored rows already contain such values.
type CartItem struct {
	Material string
	Quantity string
}

// Session is the per-user state of one order dialogue. It lives only in
// the in-memory session store, never in the database.
type Session struct {
	UserId          int64
	State           constant.DialogueState
	ClientName      string
	OrderDate       string // DD/MM/AAAA, set once validated
	DeliveryDate    string // DD/MM/AAAA, derived from OrderDate
	SubmitterLabel  string
	PendingMaterial string
	cart            []CartItem
}

func NewSession(userId int64, submitterLabel string) *Session {
	return &Session{
		UserId:         userId,
		State:          constant.StateAwaitingName,
		SubmitterLabel: submitterLabel,
		cart:           make([]CartItem, 0),
	}
}

// AddItem appends a line to the cart. Insertion order is preserved and
// becomes the row order in the pedidos table.
func (s *Session) AddItem(material, quantity string) error {
	if material == "" {
		return ErrEmptyMaterial
	}
	s.cart = append(s.cart, CartItem{Material: material, Quantity: quantity})
	return nil
}

func (s *Session) CartSize() int {
	return len(s.cart)
}

// SnapshotAndClear hands the accumulated items over for persistence and
// empties the cart. Finalizing a zero-item order is refused here.
func (s *Session) SnapshotAndClear() ([]CartItem, error) {
	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}
	items := s.cart
	s.cart = make([]CartItem, 0)
	return items, nil
}
