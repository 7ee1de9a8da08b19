package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
)

// balanceTolerance absorbs floating-point rounding in amounts that
// arrive with float provenance. Exact-decimal callers never exercise
// the slack.
var balanceTolerance = decimal.New(1, -3) // 0.001

// journalService owns the journal write path and entry reads.
type journalService struct {
	db *gorm.DB

	// mu serializes the whole check-and-write sequence: the balance
	// check and identifier assignment are not safe to interleave.
	mu sync.Mutex
}

// NewJournalService creates a new JournalServicer.
func NewJournalService(db *gorm.DB) JournalServicer {
	return &journalService{db: db}
}

// CreateJournalEntry validates and persists a balanced journal entry
// together with its transaction lines as a single unit. No mutation
// happens unless every check passes.
func (s *journalService) CreateJournalEntry(date time.Time, description string, lines []JournalLine) (*models.JournalEntry, error) {
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if len(lines) < 2 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least two transaction lines are required")
	}
	if date.IsZero() {
		date = time.Now()
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for _, line := range lines {
		if line.AccountID == 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "every transaction line must reference an account")
		}
		if !line.Amount.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		if line.IsDebit {
			debitTotal = debitTotal.Add(line.Amount)
		} else {
			creditTotal = creditTotal.Add(line.Amount)
		}
	}

	if debitTotal.Sub(creditTotal).Abs().GreaterThanOrEqual(balanceTolerance) {
		return nil, apperrors.WithMessage(apperrors.ErrUnbalancedEntry,
			fmt.Sprintf("debits (%s) must equal credits (%s)", debitTotal.StringFixed(2), creditTotal.StringFixed(2)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &models.JournalEntry{
		Date:        date,
		Description: description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Resolve every account reference inside the transaction so an
		// entry can never commit against a missing account.
		for _, line := range lines {
			var account models.Account
			if err := tx.First(&account, line.AccountID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.WithMessage(apperrors.ErrInvalidInput,
						fmt.Sprintf("account %d does not exist", line.AccountID))
				}
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for _, line := range lines {
			record := models.TransactionLine{
				JournalEntryID: entry.ID,
				AccountID:      line.AccountID,
				Amount:         line.Amount,
				IsDebit:        line.IsDebit,
			}
			if err := tx.Create(&record).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadEntry(entry.ID)
}

// GetJournalEntry retrieves one entry with its lines and each line's
// resolved account.
func (s *journalService) GetJournalEntry(entryID uint) (*models.JournalEntry, error) {
	return s.loadEntry(entryID)
}

// ListJournalEntries retrieves a page of entries with their lines, in
// identifier order. Display ordering (for example date descending) is a
// presentation concern.
func (s *journalService) ListJournalEntries(page pagination.PageRequest) (*pagination.PageResponse[models.JournalEntry], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.JournalEntry{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.JournalEntry
	if err := s.db.Preload("Lines.Account").Order("id").
		Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func (s *journalService) loadEntry(entryID uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := s.db.Preload("Lines.Account").First(&entry, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJournalEntryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}
