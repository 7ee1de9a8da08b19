package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/services"
)

// AccountHandler handles chart-of-accounts requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating an account.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Type        string `json:"type" binding:"required,account_type"`
	Description string `json:"description" binding:"max=500"`
}

// CreateAccount handles the creation of a new ledger account
// @Summary     Create an account
// @Description Add a new account to the chart of accounts
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(req.Name, models.AccountType(req.Type), req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts handles the retrieval of the chart of accounts
// @Summary     List accounts
// @Description Get the full chart of accounts in insertion order
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Success     200 {array} models.Account "Accounts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetAccountByID handles the retrieval of a specific account
// @Summary     Get account by ID
// @Description Get a single account from the chart of accounts
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     200 {object} models.Account "Account details"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// ErrorResponse documents the error envelope for swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
