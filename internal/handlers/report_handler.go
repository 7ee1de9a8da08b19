package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/services"
)

// ReportHandler handles income-statement requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// IncomeStatementInventoryRequest carries a reporting period together
// with the manually entered inventory figures for the COGS block.
// Figures accept JSON numbers or strings and must be non-negative.
type IncomeStatementInventoryRequest struct {
	StartDate       string          `json:"start_date" binding:"required"`
	EndDate         string          `json:"end_date" binding:"required"`
	OpeningStock    decimal.Decimal `json:"opening_stock"`
	Purchases       decimal.Decimal `json:"purchases"`
	ClosingStock    decimal.Decimal `json:"closing_stock"`
	PurchaseReturns decimal.Decimal `json:"purchase_returns"`
}

// GetIncomeStatement handles income statement generation
// @Summary     Get income statement
// @Description Aggregate revenue and expense activity over an inclusive date range. Dates default to the epoch and now.
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       start_date query string false "Period start (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string false "Period end (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} models.IncomeStatement "Income statement"
// @Failure     400 {object} ErrorResponse "Invalid date format"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income-statement [get]
func (h *ReportHandler) GetIncomeStatement(c *gin.Context) {
	startDate := time.Unix(0, 0).UTC()
	endDate := time.Now()

	var err error
	if value := c.Query("start_date"); value != "" {
		if startDate, err = parseDate(value); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid start_date format"))
			return
		}
	}
	if value := c.Query("end_date"); value != "" {
		if endDate, err = parseDate(value); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid end_date format"))
			return
		}
	}

	statement, err := h.reportService.GetIncomeStatement(startDate, endDate, nil)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income_statement": statement})
}

// GetIncomeStatementWithInventory handles income statement generation with inventory figures
// @Summary     Get income statement with inventory
// @Description Generate the income statement for a period with a COGS block computed from the supplied inventory figures
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       request body IncomeStatementInventoryRequest true "Period and inventory figures"
// @Success     200 {object} models.IncomeStatement "Income statement"
// @Failure     400 {object} ErrorResponse "Invalid dates or negative figures"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income-statement/inventory [post]
func (h *ReportHandler) GetIncomeStatementWithInventory(c *gin.Context) {
	var req IncomeStatementInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid start_date format"))
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid end_date format"))
		return
	}

	inventory := &models.InventoryInput{
		OpeningStock:    req.OpeningStock,
		Purchases:       req.Purchases,
		ClosingStock:    req.ClosingStock,
		PurchaseReturns: req.PurchaseReturns,
	}

	statement, err := h.reportService.GetIncomeStatement(startDate, endDate, inventory)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income_statement": statement})
}
