package models

import "time"

// JournalEntry represents one balanced double-entry posting. An entry
// exists only together with at least two transaction lines whose debit
// and credit amounts balance; entries are immutable once written.
type JournalEntry struct {
	Base
	Date        time.Time `gorm:"not null;index" json:"date"`
	Description string    `gorm:"not null" json:"description"`

	Lines []TransactionLine `gorm:"foreignKey:JournalEntryID" json:"transactions"`
}
