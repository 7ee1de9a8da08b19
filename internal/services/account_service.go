package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
)

// accountService handles chart-of-accounts business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// defaultAccounts is the chart seeded on first startup so journal
// entries can be recorded without any setup.
var defaultAccounts = []models.Account{
	{Name: "Cash", Type: models.AccountTypeAsset, Description: "Cash on hand and in bank accounts"},
	{Name: "Accounts Receivable", Type: models.AccountTypeAsset, Description: "Money owed to the company"},
	{Name: "Inventory", Type: models.AccountTypeAsset, Description: "Items held for sale"},
	{Name: "Supplies", Type: models.AccountTypeAsset, Description: "Office and operational supplies"},
	{Name: "Equipment", Type: models.AccountTypeAsset, Description: "Business equipment"},
	{Name: "Accounts Payable", Type: models.AccountTypeLiability, Description: "Money owed by the company"},
	{Name: "Notes Payable", Type: models.AccountTypeLiability, Description: "Formal debt obligations"},
	{Name: "Revenue", Type: models.AccountTypeRevenue, Description: "Income from sales or services"},
	{Name: "Rent Expense", Type: models.AccountTypeExpense, Description: "Cost of renting space"},
	{Name: "Salary Expense", Type: models.AccountTypeExpense, Description: "Employee salaries"},
	{Name: "Utilities Expense", Type: models.AccountTypeExpense, Description: "Costs for electricity, water, etc."},
}

// CreateAccount adds a new account to the chart of accounts.
func (s *accountService) CreateAccount(name string, accountType models.AccountType, description string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if !accountType.IsValid() {
		return nil, apperrors.ErrInvalidAccountType
	}

	account := &models.Account{
		Name:        name,
		Type:        accountType,
		Description: description,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// GetAccountByID retrieves an account by its identifier.
func (s *accountService) GetAccountByID(accountID uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// ListAccounts retrieves the full chart of accounts in insertion order.
func (s *accountService) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Order("id").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// SeedDefaultAccounts populates the default chart of accounts if the
// registry is empty. Idempotent across restarts of a durable store.
func (s *accountService) SeedDefaultAccounts() error {
	var count int64
	if err := s.db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range defaultAccounts {
			account := defaultAccounts[i]
			if err := tx.Create(&account).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
