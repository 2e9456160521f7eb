package model

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TelegramId int64     `gorm:"column:telegram_id;uniqueIndex;not null"`
	Nome       string    `gorm:"column:nome;type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Employee) TableName() string {
	return "funcionarios"
}
