package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeStatementItem is one revenue or expense line of the statement:
// an account's net activity over the period, always positive (accounts
// netting to zero or below are omitted entirely).
type IncomeStatementItem struct {
	AccountID   uint            `json:"account_id"`
	AccountName string          `json:"account_name"`
	Amount      decimal.Decimal `json:"amount"`
}

// InventoryInput holds the manually entered inventory figures used for
// the cost-of-goods-sold calculation. All four figures must be
// non-negative. Figures are one-shot query parameters, never persisted.
type InventoryInput struct {
	OpeningStock    decimal.Decimal `json:"opening_stock"`
	Purchases       decimal.Decimal `json:"purchases"`
	ClosingStock    decimal.Decimal `json:"closing_stock"`
	PurchaseReturns decimal.Decimal `json:"purchase_returns"`
}

// InventorySummary echoes the inventory inputs alongside the computed
// COGS value inside an income statement.
type InventorySummary struct {
	InventoryInput
	COGS decimal.Decimal `json:"cogs"`
}

// IncomeStatement is the derived period report. Gross profit subtracts
// COGS from revenue; net income subtracts operating expenses from
// revenue. The two are independent views and deliberately do not
// compose (COGS does not flow into net income).
type IncomeStatement struct {
	Revenues      []IncomeStatementItem `json:"revenues"`
	Expenses      []IncomeStatementItem `json:"expenses"`
	TotalRevenue  decimal.Decimal       `json:"total_revenue"`
	TotalExpenses decimal.Decimal       `json:"total_expenses"`
	Inventory     InventorySummary      `json:"inventory"`
	GrossProfit   decimal.Decimal       `json:"gross_profit"`
	NetIncome     decimal.Decimal       `json:"net_income"`
	StartDate     time.Time             `json:"start_date"`
	EndDate       time.Time             `json:"end_date"`
}
