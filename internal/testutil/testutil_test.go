package testutil_test

import (
	"testing"

	"ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"accounts", "journal_entries", "transaction_lines"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	cash := testutil.CreateTestAccount(t, db, models.AccountTypeAsset)
	if cash.ID == 0 {
		t.Fatal("account should have a non-zero ID")
	}
	revenue := testutil.CreateTestAccount(t, db, models.AccountTypeRevenue)

	entry := testutil.CreateTestEntry(t, db, testutil.Date(2024, 1, 15),
		testutil.DebitLine(cash.ID, "500"),
		testutil.CreditLine(revenue.ID, "500"),
	)
	if entry.ID == 0 {
		t.Fatal("entry should have a non-zero ID")
	}
	if len(entry.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(entry.Lines))
	}
	for _, line := range entry.Lines {
		if line.JournalEntryID != entry.ID {
			t.Errorf("line %d not bound to entry %d", line.ID, entry.ID)
		}
	}
	testutil.AssertDecimal(t, entry.Lines[0].Amount, "500")
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrAccountNotFound, "custom message")
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
