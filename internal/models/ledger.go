package models

import "github.com/shopspring/decimal"

// LedgerLine is one row of an account's ledger: a transaction line
// enriched with its parent journal entry and the running balance after
// applying the line. Not stored; recomputed on every read.
type LedgerLine struct {
	TransactionLine
	JournalEntry   JournalEntry    `json:"journal_entry"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// LedgerAccount is the derived per-account ledger view: the account's
// full transaction history in date order, unsigned debit/credit totals,
// and the final balance signed by the account's normal polarity.
type LedgerAccount struct {
	Account
	Lines       []LedgerLine    `json:"transactions"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	Balance     decimal.Decimal `json:"balance"`
	DebitNature bool            `json:"is_debit_nature"`
}
