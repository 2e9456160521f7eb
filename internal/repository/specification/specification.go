package specification

import "gorm.io/gorm"

// Specification narrows a query. Implementations are small value types
// combined freely at the call site.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
