package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"ledgerbook/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates an account of the given type with a unique name.
func CreateTestAccount(t *testing.T, db *gorm.DB, accountType models.AccountType) *models.Account {
	t.Helper()
	return CreateTestAccountWithName(t, db, fmt.Sprintf("Test Account %d", nextID()), accountType)
}

// CreateTestAccountWithName creates an account with the given name and type.
func CreateTestAccountWithName(t *testing.T, db *gorm.DB, name string, accountType models.AccountType) *models.Account {
	t.Helper()

	account := &models.Account{
		Name: name,
		Type: accountType,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestEntry creates a journal entry with the given lines, bypassing
// the service-level balance check. Tests that exercise the check should
// go through the journal service instead.
func CreateTestEntry(t *testing.T, db *gorm.DB, date time.Time, lines ...models.TransactionLine) *models.JournalEntry {
	t.Helper()

	entry := &models.JournalEntry{
		Date:        date,
		Description: fmt.Sprintf("Test Entry %d", nextID()),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test journal entry: %v", err)
	}

	for i := range lines {
		lines[i].JournalEntryID = entry.ID
		if err := db.Create(&lines[i]).Error; err != nil {
			t.Fatalf("failed to create test transaction line: %v", err)
		}
	}
	entry.Lines = lines
	return entry
}

// DebitLine builds an unsaved debit line for the given account.
func DebitLine(accountID uint, amount string) models.TransactionLine {
	return models.TransactionLine{
		AccountID: accountID,
		Amount:    decimal.RequireFromString(amount),
		IsDebit:   true,
	}
}

// CreditLine builds an unsaved credit line for the given account.
func CreditLine(accountID uint, amount string) models.TransactionLine {
	return models.TransactionLine{
		AccountID: accountID,
		Amount:    decimal.RequireFromString(amount),
		IsDebit:   false,
	}
}

// Date builds a UTC calendar date for fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
