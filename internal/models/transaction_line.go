package models

import "github.com/shopspring/decimal"

// TransactionLine is one side of a journal entry: a strictly positive
// amount posted against an account, flagged as either debit or credit.
// Lines are created only together with their parent entry.
type TransactionLine struct {
	Base
	JournalEntryID uint            `gorm:"not null;index" json:"journal_entry_id"`
	AccountID      uint            `gorm:"not null;index" json:"account_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	IsDebit        bool            `gorm:"not null" json:"is_debit"`

	Account Account `gorm:"foreignKey:AccountID" json:"account"`
}
