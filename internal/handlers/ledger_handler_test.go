package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/services"
)

// --- mock ledger service ---

type mockLedgerService struct {
	getLedgerAccountFn   func(accountID uint) (*models.LedgerAccount, error)
	listLedgerAccountsFn func() ([]models.LedgerAccount, error)
}

func (m *mockLedgerService) GetLedgerAccount(accountID uint) (*models.LedgerAccount, error) {
	if m.getLedgerAccountFn != nil {
		return m.getLedgerAccountFn(accountID)
	}
	return &models.LedgerAccount{}, nil
}

func (m *mockLedgerService) ListLedgerAccounts() ([]models.LedgerAccount, error) {
	if m.listLedgerAccountsFn != nil {
		return m.listLedgerAccountsFn()
	}
	return []models.LedgerAccount{}, nil
}

// verify interface compliance
var _ services.LedgerServicer = (*mockLedgerService)(nil)

func setupLedgerRouter(handler *LedgerHandler) *gin.Engine {
	r := gin.New()
	r.GET("/ledger", handler.GetLedgerAccounts)
	r.GET("/ledger/:id", handler.GetLedgerAccountByID)
	return r
}

// --- tests ---

func TestLedgerHandler_GetLedgerAccounts(t *testing.T) {
	t.Run("returns 200 with a view per account", func(t *testing.T) {
		ledgerSvc := &mockLedgerService{
			listLedgerAccountsFn: func() ([]models.LedgerAccount, error) {
				return []models.LedgerAccount{
					{
						Account:     models.Account{Base: models.Base{ID: 1}, Name: "Cash", Type: models.AccountTypeAsset},
						Balance:     decimal.RequireFromString("60"),
						DebitNature: true,
					},
					{
						Account: models.Account{Base: models.Base{ID: 2}, Name: "Revenue", Type: models.AccountTypeRevenue},
						Balance: decimal.RequireFromString("100"),
					},
				}, nil
			},
		}
		handler := NewLedgerHandler(ledgerSvc)
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/ledger", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		ledgers := result["ledger_accounts"].([]interface{})
		if len(ledgers) != 2 {
			t.Errorf("expected 2 ledger accounts, got %d", len(ledgers))
		}
	})
}

func TestLedgerHandler_GetLedgerAccountByID(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		ledgerSvc := &mockLedgerService{
			getLedgerAccountFn: func(accountID uint) (*models.LedgerAccount, error) {
				return &models.LedgerAccount{
					Account:     models.Account{Base: models.Base{ID: accountID}, Name: "Cash", Type: models.AccountTypeAsset},
					DebitTotal:  decimal.RequireFromString("100"),
					CreditTotal: decimal.RequireFromString("40"),
					Balance:     decimal.RequireFromString("60"),
					DebitNature: true,
				}, nil
			},
		}
		handler := NewLedgerHandler(ledgerSvc)
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/ledger/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		ledger := result["ledger_account"].(map[string]interface{})
		if ledger["name"] != "Cash" {
			t.Errorf("expected Cash, got %v", ledger["name"])
		}
		if ledger["balance"] != "60" {
			t.Errorf("expected balance 60, got %v", ledger["balance"])
		}
	})

	t.Run("returns 404 when account not found", func(t *testing.T) {
		ledgerSvc := &mockLedgerService{
			getLedgerAccountFn: func(_ uint) (*models.LedgerAccount, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		handler := NewLedgerHandler(ledgerSvc)
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/ledger/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		handler := NewLedgerHandler(&mockLedgerService{})
		r := setupLedgerRouter(handler)

		rec := doRequest(r, "GET", "/ledger/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
