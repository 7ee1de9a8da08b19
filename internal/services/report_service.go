package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
)

// reportService aggregates journal activity into period reports. Pure
// read side: recomputed from the transaction lines on every call.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// CalculateCOGS computes cost of goods sold from manually entered
// inventory figures: opening stock + purchases - closing stock -
// purchase returns. All inputs must be non-negative; the result is not
// clamped and may be negative if the inputs are inconsistent.
func CalculateCOGS(inventory models.InventoryInput) (decimal.Decimal, error) {
	for _, figure := range []decimal.Decimal{
		inventory.OpeningStock,
		inventory.Purchases,
		inventory.ClosingStock,
		inventory.PurchaseReturns,
	} {
		if figure.IsNegative() {
			return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "inventory figures must be non-negative")
		}
	}

	return inventory.OpeningStock.
		Add(inventory.Purchases).
		Sub(inventory.ClosingStock).
		Sub(inventory.PurchaseReturns), nil
}

// GetIncomeStatement aggregates revenue and expense activity over the
// inclusive date range [startDate, endDate] and combines it with the
// COGS block from the supplied inventory figures (zero if absent).
//
// Gross profit is revenue minus COGS. Net income is revenue minus
// operating expenses and does not subtract COGS; the two figures are
// independent top-line views that deliberately do not compose.
func (s *reportService) GetIncomeStatement(startDate, endDate time.Time, inventory *models.InventoryInput) (*models.IncomeStatement, error) {
	var accounts []models.Account
	if err := s.db.Where("type IN ?", []models.AccountType{
		models.AccountTypeRevenue,
		models.AccountTypeExpense,
	}).Order("id").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	lines, err := s.linesInRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	// Net each account's activity against its normal polarity.
	debitNet := make(map[uint]decimal.Decimal)
	creditNet := make(map[uint]decimal.Decimal)
	for _, line := range lines {
		if line.IsDebit {
			debitNet[line.AccountID] = debitNet[line.AccountID].Add(line.Amount)
		} else {
			creditNet[line.AccountID] = creditNet[line.AccountID].Add(line.Amount)
		}
	}

	revenues := []models.IncomeStatementItem{}
	expenses := []models.IncomeStatementItem{}
	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero

	for _, account := range accounts {
		switch account.Type {
		case models.AccountTypeRevenue:
			amount := creditNet[account.ID].Sub(debitNet[account.ID])
			if amount.IsPositive() {
				revenues = append(revenues, models.IncomeStatementItem{
					AccountID:   account.ID,
					AccountName: account.Name,
					Amount:      amount,
				})
				totalRevenue = totalRevenue.Add(amount)
			}
		case models.AccountTypeExpense:
			amount := debitNet[account.ID].Sub(creditNet[account.ID])
			if amount.IsPositive() {
				expenses = append(expenses, models.IncomeStatementItem{
					AccountID:   account.ID,
					AccountName: account.Name,
					Amount:      amount,
				})
				totalExpenses = totalExpenses.Add(amount)
			}
		}
	}

	inventorySummary := models.InventorySummary{}
	if inventory != nil {
		cogs, err := CalculateCOGS(*inventory)
		if err != nil {
			return nil, err
		}
		inventorySummary = models.InventorySummary{
			InventoryInput: *inventory,
			COGS:           cogs,
		}
	}

	return &models.IncomeStatement{
		Revenues:      revenues,
		Expenses:      expenses,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		Inventory:     inventorySummary,
		GrossProfit:   totalRevenue.Sub(inventorySummary.COGS),
		NetIncome:     totalRevenue.Sub(totalExpenses),
		StartDate:     startDate,
		EndDate:       endDate,
	}, nil
}

// linesInRange selects every transaction line whose parent entry is
// dated within the inclusive range.
func (s *reportService) linesInRange(startDate, endDate time.Time) ([]models.TransactionLine, error) {
	var lines []models.TransactionLine
	err := s.db.
		Joins("JOIN journal_entries ON journal_entries.id = transaction_lines.journal_entry_id").
		Where("journal_entries.date >= ? AND journal_entries.date <= ?", startDate, endDate).
		Find(&lines).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return lines, nil
}
