package services

import (
	"time"

	"github.com/shopspring/decimal"

	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
)

// AccountServicer defines the contract for chart-of-accounts logic.
type AccountServicer interface {
	CreateAccount(name string, accountType models.AccountType, description string) (*models.Account, error)
	GetAccountByID(accountID uint) (*models.Account, error)
	ListAccounts() ([]models.Account, error)
	SeedDefaultAccounts() error
}

// JournalLine is one proposed line of a journal entry before it is
// persisted: an account reference, a strictly positive amount, and the
// debit/credit flag.
type JournalLine struct {
	AccountID uint
	Amount    decimal.Decimal
	IsDebit   bool
}

// JournalServicer defines the contract for the journal write and read
// paths. CreateJournalEntry is the sole write path into the ledger.
type JournalServicer interface {
	CreateJournalEntry(date time.Time, description string, lines []JournalLine) (*models.JournalEntry, error)
	GetJournalEntry(entryID uint) (*models.JournalEntry, error)
	ListJournalEntries(page pagination.PageRequest) (*pagination.PageResponse[models.JournalEntry], error)
}

// LedgerServicer defines the contract for the derived per-account
// ledger views.
type LedgerServicer interface {
	GetLedgerAccount(accountID uint) (*models.LedgerAccount, error)
	ListLedgerAccounts() ([]models.LedgerAccount, error)
}

// ReportServicer defines the contract for period reporting.
type ReportServicer interface {
	GetIncomeStatement(startDate, endDate time.Time, inventory *models.InventoryInput) (*models.IncomeStatement, error)
}
