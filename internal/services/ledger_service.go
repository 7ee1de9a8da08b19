package services

import (
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
)

// ledgerService derives per-account ledger views from the journal.
// Views are recomputed from the authoritative transaction lines on
// every read; nothing here is cached or stored.
type ledgerService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB, accountService AccountServicer) LedgerServicer {
	return &ledgerService{db: db, accountService: accountService}
}

// GetLedgerAccount builds the ledger view for one account: its lines in
// entry-date order (ties broken by entry ID, then line ID), a running
// balance signed by the account's normal polarity, unsigned debit and
// credit totals, and the final balance.
func (s *ledgerService) GetLedgerAccount(accountID uint) (*models.LedgerAccount, error) {
	account, err := s.accountService.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	var lines []models.TransactionLine
	if err := s.db.Where("account_id = ?", accountID).Order("id").Find(&lines).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries, err := s.loadEntries(lines)
	if err != nil {
		return nil, err
	}

	ledgerLines := make([]models.LedgerLine, 0, len(lines))
	for _, line := range lines {
		ledgerLines = append(ledgerLines, models.LedgerLine{
			TransactionLine: line,
			JournalEntry:    entries[line.JournalEntryID],
		})
	}

	sort.SliceStable(ledgerLines, func(i, j int) bool {
		a, b := ledgerLines[i], ledgerLines[j]
		if !a.JournalEntry.Date.Equal(b.JournalEntry.Date) {
			return a.JournalEntry.Date.Before(b.JournalEntry.Date)
		}
		if a.JournalEntryID != b.JournalEntryID {
			return a.JournalEntryID < b.JournalEntryID
		}
		return a.ID < b.ID
	})

	debitNature := account.Type.IsDebitNormal()
	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	running := decimal.Zero

	for i := range ledgerLines {
		line := &ledgerLines[i]
		if line.IsDebit {
			debitTotal = debitTotal.Add(line.Amount)
		} else {
			creditTotal = creditTotal.Add(line.Amount)
		}

		effect := line.Amount
		if line.IsDebit != debitNature {
			effect = effect.Neg()
		}
		running = running.Add(effect)
		line.RunningBalance = running
	}

	balance := debitTotal.Sub(creditTotal)
	if !debitNature {
		balance = creditTotal.Sub(debitTotal)
	}

	return &models.LedgerAccount{
		Account:     *account,
		Lines:       ledgerLines,
		DebitTotal:  debitTotal,
		CreditTotal: creditTotal,
		Balance:     balance,
		DebitNature: debitNature,
	}, nil
}

// ListLedgerAccounts builds the ledger view for every account in the
// chart, in insertion order.
func (s *ledgerService) ListLedgerAccounts() ([]models.LedgerAccount, error) {
	accounts, err := s.accountService.ListAccounts()
	if err != nil {
		return nil, err
	}

	ledgers := make([]models.LedgerAccount, 0, len(accounts))
	for _, account := range accounts {
		ledger, err := s.GetLedgerAccount(account.ID)
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, *ledger)
	}
	return ledgers, nil
}

// loadEntries fetches the parent journal entries for a set of lines in
// one query, keyed by entry ID.
func (s *ledgerService) loadEntries(lines []models.TransactionLine) (map[uint]models.JournalEntry, error) {
	entryIDs := make([]uint, 0, len(lines))
	seen := make(map[uint]bool, len(lines))
	for _, line := range lines {
		if !seen[line.JournalEntryID] {
			seen[line.JournalEntryID] = true
			entryIDs = append(entryIDs, line.JournalEntryID)
		}
	}

	result := make(map[uint]models.JournalEntry, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}

	var entries []models.JournalEntry
	if err := s.db.Where("id IN ?", entryIDs).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, entry := range entries {
		result[entry.ID] = entry
	}
	return result, nil
}
