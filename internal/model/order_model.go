package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderRow mirrors the pedidos table the previous bot wrote to. Column
// names and the DD/MM/AAAA string dates are a compatibility contract
// with the rows already stored there.
type OrderRow struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId     uuid.UUID `gorm:"type:uuid;not null;index"` // groups the rows of one multi-item order
	Cliente     string    `gorm:"column:cliente;type:text;not null"`
	Quantidade  string    `gorm:"column:quantidade;type:text;not null"`
	Material    string    `gorm:"column:material;type:text;not null"`
	DataPedido  string    `gorm:"column:data_pedido;type:text;not null"`
	DataEntrega string    `gorm:"column:data_entrega;type:text;not null"`
	Atendente   string    `gorm:"column:atendente;type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (OrderRow) TableName() string {
	return "pedidos"
}
