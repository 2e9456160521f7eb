package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is the finalized unit handed to persistence. One Order with K
// items becomes K rows in the pedidos table, all sharing the four
// order-level fields.
type Order struct {
	Id             uuid.UUID
	ClientName     string
	OrderDate      string // DD/MM/AAAA
	DeliveryDate   string // DD/MM/AAAA
	SubmitterLabel string
	Items          []CartItem
	CreatedAt      time.Time
}

// Employee is one enrolled telegram user. Created on first successful
// secret entry, never expired or revoked.
type Employee struct {
	Id           uuid.UUID
	TelegramId   int64
	DisplayLabel string
	CreatedAt    time.Time
}
