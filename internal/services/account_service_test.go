package services

import (
	"testing"

	"ledgerbook/internal/models"
	"ledgerbook/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("creates_account_with_next_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		first, err := svc.CreateAccount("Cash", models.AccountTypeAsset, "Cash on hand")
		testutil.AssertNoError(t, err)
		if first.ID == 0 {
			t.Fatal("expected non-zero account ID")
		}

		second, err := svc.CreateAccount("Revenue", models.AccountTypeRevenue, "")
		testutil.AssertNoError(t, err)
		if second.ID <= first.ID {
			t.Errorf("expected monotonically increasing IDs, got %d then %d", first.ID, second.ID)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount("", models.AccountTypeAsset, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount("Petty Cash", models.AccountType("vault"), "")
		testutil.AssertAppError(t, err, "INVALID_ACCOUNT_TYPE")
	})
}

func TestGetAccountByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		created := testutil.CreateTestAccount(t, db, models.AccountTypeLiability)

		account, err := svc.GetAccountByID(created.ID)
		testutil.AssertNoError(t, err)
		if account.Name != created.Name {
			t.Errorf("expected name %q, got %q", created.Name, account.Name)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.GetAccountByID(99999)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestListAccounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db)

	first := testutil.CreateTestAccount(t, db, models.AccountTypeAsset)
	second := testutil.CreateTestAccount(t, db, models.AccountTypeExpense)

	accounts, err := svc.ListAccounts()
	testutil.AssertNoError(t, err)
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].ID != first.ID || accounts[1].ID != second.ID {
		t.Errorf("expected insertion order %d, %d; got %d, %d",
			first.ID, second.ID, accounts[0].ID, accounts[1].ID)
	}
}

func TestSeedDefaultAccounts(t *testing.T) {
	t.Run("seeds_full_chart", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		testutil.AssertNoError(t, svc.SeedDefaultAccounts())

		accounts, err := svc.ListAccounts()
		testutil.AssertNoError(t, err)
		if len(accounts) != 11 {
			t.Fatalf("expected 11 default accounts, got %d", len(accounts))
		}

		byName := make(map[string]models.AccountType)
		for _, account := range accounts {
			byName[account.Name] = account.Type
		}
		for name, accountType := range map[string]models.AccountType{
			"Cash":             models.AccountTypeAsset,
			"Accounts Payable": models.AccountTypeLiability,
			"Revenue":          models.AccountTypeRevenue,
			"Rent Expense":     models.AccountTypeExpense,
		} {
			if byName[name] != accountType {
				t.Errorf("expected default account %q of type %s, got %s", name, accountType, byName[name])
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		testutil.AssertNoError(t, svc.SeedDefaultAccounts())
		testutil.AssertNoError(t, svc.SeedDefaultAccounts())

		accounts, err := svc.ListAccounts()
		testutil.AssertNoError(t, err)
		if len(accounts) != 11 {
			t.Errorf("expected seeding to be idempotent, got %d accounts", len(accounts))
		}
	})

	t.Run("skips_non_empty_registry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		testutil.CreateTestAccount(t, db, models.AccountTypeAsset)

		testutil.AssertNoError(t, svc.SeedDefaultAccounts())

		accounts, err := svc.ListAccounts()
		testutil.AssertNoError(t, err)
		if len(accounts) != 1 {
			t.Errorf("expected existing chart to be left alone, got %d accounts", len(accounts))
		}
	})
}
