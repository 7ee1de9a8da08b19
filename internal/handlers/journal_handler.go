package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/services"
)

// JournalHandler handles journal-entry requests.
type JournalHandler struct {
	journalService services.JournalServicer
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalService services.JournalServicer) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// JournalLineRequest is one proposed transaction line. Amounts accept
// JSON numbers or strings; strings preserve exact decimal semantics.
type JournalLineRequest struct {
	AccountID uint            `json:"account_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	IsDebit   bool            `json:"is_debit"`
}

// CreateJournalEntryRequest represents the request payload for posting a
// journal entry with its transaction lines.
type CreateJournalEntryRequest struct {
	Date         string               `json:"date" binding:"required"`
	Description  string               `json:"description" binding:"required,min=1,max=500"`
	Transactions []JournalLineRequest `json:"transactions" binding:"required,min=2,dive"`
}

// CreateJournalEntry handles posting a balanced journal entry
// @Summary     Create a journal entry
// @Description Post a balanced journal entry with at least two transaction lines
// @Tags        journal
// @Accept      json
// @Produce     json
// @Param       request body CreateJournalEntryRequest true "Journal entry details"
// @Success     201 {object} models.JournalEntry "Journal entry created"
// @Failure     400 {object} ErrorResponse "Invalid input or unbalanced entry"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries [post]
func (h *JournalHandler) CreateJournalEntry(c *gin.Context) {
	var req CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date format"))
		return
	}

	lines := make([]services.JournalLine, 0, len(req.Transactions))
	for _, line := range req.Transactions {
		lines = append(lines, services.JournalLine{
			AccountID: line.AccountID,
			Amount:    line.Amount,
			IsDebit:   line.IsDebit,
		})
	}

	entry, err := h.journalService.CreateJournalEntry(date, req.Description, lines)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"journal_entry": entry})
}

// GetJournalEntries handles listing journal entries
// @Summary     List journal entries
// @Description Get a paginated list of journal entries with their transaction lines
// @Tags        journal
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 50, max 100)"
// @Success     200 {object} pagination.PageResponse[models.JournalEntry] "Paginated entries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries [get]
func (h *JournalHandler) GetJournalEntries(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.journalService.ListJournalEntries(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetJournalEntryByID handles the retrieval of a specific journal entry
// @Summary     Get journal entry by ID
// @Description Get a journal entry with its transaction lines and resolved accounts
// @Tags        journal
// @Accept      json
// @Produce     json
// @Param       id path int true "Journal entry ID"
// @Success     200 {object} models.JournalEntry "Journal entry"
// @Failure     400 {object} ErrorResponse "Invalid journal entry ID"
// @Failure     404 {object} ErrorResponse "Journal entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/{id} [get]
func (h *JournalHandler) GetJournalEntryByID(c *gin.Context) {
	entryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.journalService.GetJournalEntry(entryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"journal_entry": entry})
}
