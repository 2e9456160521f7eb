package specification

import "gorm.io/gorm"

// ByTelegramId filters employees by their telegram user id.
type ByTelegramId struct {
	TelegramId int64
}

func (s ByTelegramId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("telegram_id = ?", s.TelegramId)
}
