package config

import "errors"

var (
	ErrMissingDatabase = errors.New("DB_CONNECTION_STRING is required")
	ErrMissingSecret   = errors.New("BOT_SECRET is required")
)
