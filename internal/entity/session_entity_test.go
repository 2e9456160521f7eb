package entity

import (
	"testing"

	"grafica-order-bot/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionStartsEmpty(t *testing.T) {
	s := NewSession(42, "Maria")

	assert.Equal(t, constant.StateAwaitingName, s.State)
	assert.Equal(t, "Maria", s.SubmitterLabel)
	assert.Equal(t, 0, s.CartSize())
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	s := NewSession(42, "Maria")

	assert.NoError(t, s.AddItem("Banner", "3"))
	assert.NoError(t, s.AddItem("Cartão", "500"))
	assert.NoError(t, s.AddItem("Adesivo", "2 caixas"))

	items, err := s.SnapshotAndClear()
	assert.NoError(t, err)
	assert.Equal(t, []CartItem{
		{Material: "Banner", Quantity: "3"},
		{Material: "Cartão", Quantity: "500"},
		{Material: "Adesivo", Quantity: "2 caixas"},
	}, items)
}

func TestAddItemRejectsEmptyMaterial(t *testing.T) {
	s := NewSession(42, "Maria")

	err := s.AddItem("", "3")
	assert.ErrorIs(t, err, ErrEmptyMaterial)
	assert.Equal(t, 0, s.CartSize())

	// Quantity stays free text, anything goes.
	assert.NoError(t, s.AddItem("Banner", "3 caixas"))
}

func TestSnapshotAndClearEmptyCart(t *testing.T) {
	s := NewSession(42, "Maria")

	items, err := s.SnapshotAndClear()
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, items)
}

func TestSnapshotAndClearEmptiesTheCart(t *testing.T) {
	s := NewSession(42, "Maria")
	assert.NoError(t, s.AddItem("Banner", "3"))

	_, err := s.SnapshotAndClear()
	assert.NoError(t, err)
	assert.Equal(t, 0, s.CartSize())

	_, err = s.SnapshotAndClear()
	assert.ErrorIs(t, err, ErrEmptyCart)
}
