package models

// AccountType represents the type of ledger account. The set is closed:
// these five kinds determine the normal-balance polarity of every account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes returns all valid account types.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeAsset,
		AccountTypeLiability,
		AccountTypeEquity,
		AccountTypeRevenue,
		AccountTypeExpense,
	}
}

// IsValid reports whether t is one of the five account kinds.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// IsDebitNormal reports whether accounts of this type carry a debit-side
// normal balance. Assets and expenses are debit-normal; liabilities,
// equity, and revenue are credit-normal.
func (t AccountType) IsDebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account represents one account in the chart of accounts. Accounts are
// created once and never updated or deleted.
type Account struct {
	Base
	Name        string      `gorm:"not null" json:"name"`
	Type        AccountType `gorm:"not null" json:"type"`
	Description string      `json:"description"`
}
