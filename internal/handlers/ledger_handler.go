package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerbook/internal/services"
)

// LedgerHandler handles derived ledger-view requests.
type LedgerHandler struct {
	ledgerService services.LedgerServicer
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService services.LedgerServicer) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// GetLedgerAccounts handles listing the ledger view of every account
// @Summary     List ledger accounts
// @Description Get the derived ledger view (history, running balance, totals) for every account
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Success     200 {array} models.LedgerAccount "Ledger accounts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger [get]
func (h *LedgerHandler) GetLedgerAccounts(c *gin.Context) {
	ledgers, err := h.ledgerService.ListLedgerAccounts()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ledger_accounts": ledgers})
}

// GetLedgerAccountByID handles the retrieval of one account's ledger view
// @Summary     Get ledger account by ID
// @Description Get the derived ledger view for a single account
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     200 {object} models.LedgerAccount "Ledger account"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger/{id} [get]
func (h *LedgerHandler) GetLedgerAccountByID(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	ledger, err := h.ledgerService.GetLedgerAccount(accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ledger_account": ledger})
}
