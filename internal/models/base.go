package models

import "time"

// Base contains common columns for all tables. Identifiers are
// store-assigned integers, monotonically increasing and never reused.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
