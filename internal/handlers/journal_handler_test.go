package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/services"
)

// --- mock journal service ---

type mockJournalService struct {
	createJournalEntryFn func(date time.Time, description string, lines []services.JournalLine) (*models.JournalEntry, error)
	getJournalEntryFn    func(entryID uint) (*models.JournalEntry, error)
	listJournalEntriesFn func(page pagination.PageRequest) (*pagination.PageResponse[models.JournalEntry], error)
}

func (m *mockJournalService) CreateJournalEntry(date time.Time, description string, lines []services.JournalLine) (*models.JournalEntry, error) {
	if m.createJournalEntryFn != nil {
		return m.createJournalEntryFn(date, description, lines)
	}
	return &models.JournalEntry{}, nil
}

func (m *mockJournalService) GetJournalEntry(entryID uint) (*models.JournalEntry, error) {
	if m.getJournalEntryFn != nil {
		return m.getJournalEntryFn(entryID)
	}
	return &models.JournalEntry{}, nil
}

func (m *mockJournalService) ListJournalEntries(page pagination.PageRequest) (*pagination.PageResponse[models.JournalEntry], error) {
	if m.listJournalEntriesFn != nil {
		return m.listJournalEntriesFn(page)
	}
	resp := pagination.NewPageResponse([]models.JournalEntry{}, 1, 50, 0)
	return &resp, nil
}

// verify interface compliance
var _ services.JournalServicer = (*mockJournalService)(nil)

func setupJournalRouter(handler *JournalHandler) *gin.Engine {
	r := gin.New()
	r.POST("/journal-entries", handler.CreateJournalEntry)
	r.GET("/journal-entries", handler.GetJournalEntries)
	r.GET("/journal-entries/:id", handler.GetJournalEntryByID)
	return r
}

// --- tests ---

func TestJournalHandler_CreateJournalEntry(t *testing.T) {
	t.Run("returns 201 on balanced entry", func(t *testing.T) {
		var capturedLines []services.JournalLine
		journalSvc := &mockJournalService{
			createJournalEntryFn: func(date time.Time, description string, lines []services.JournalLine) (*models.JournalEntry, error) {
				capturedLines = lines
				return &models.JournalEntry{
					Base:        models.Base{ID: 1},
					Date:        date,
					Description: description,
				}, nil
			},
		}
		handler := NewJournalHandler(journalSvc)
		r := setupJournalRouter(handler)

		rec := doRequest(r, "POST", "/journal-entries", `{
			"date": "2024-01-15",
			"description": "Cash sale",
			"transactions": [
				{"account_id": 1, "amount": "150.00", "is_debit": true},
				{"account_id": 8, "amount": "150.00", "is_debit": false}
			]
		}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		entry := result["journal_entry"].(map[string]interface{})
		if entry["description"] != "Cash sale" {
			t.Errorf("expected Cash sale, got %v", entry["description"])
		}
		if len(capturedLines) != 2 {
			t.Fatalf("expected 2 lines passed to the service, got %d", len(capturedLines))
		}
		if !capturedLines[0].Amount.Equal(decimal.RequireFromString("150.00")) {
			t.Errorf("expected amount 150.00, got %s", capturedLines[0].Amount)
		}
		if !capturedLines[0].IsDebit || capturedLines[1].IsDebit {
			t.Errorf("expected debit then credit, got %+v", capturedLines)
		}
	})

	t.Run("accepts numeric amounts", func(t *testing.T) {
		var capturedLines []services.JournalLine
		journalSvc := &mockJournalService{
			createJournalEntryFn: func(_ time.Time, _ string, lines []services.JournalLine) (*models.JournalEntry, error) {
				capturedLines = lines
				return &models.JournalEntry{}, nil
			},
		}
		handler := NewJournalHandler(journalSvc)
		r := setupJournalRouter(handler)

		rec := doRequest(r, "POST", "/journal-entries", `{
			"date": "2024-01-15",
			"description": "Numeric amounts",
			"transactions": [
				{"account_id": 1, "amount": 99.95, "is_debit": true},
				{"account_id": 2, "amount": 99.95, "is_debit": false}
			]
		}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !capturedLines[0].Amount.Equal(decimal.RequireFromString("99.95")) {
			t.Errorf("expected amount 99.95, got %s", capturedLines[0].Amount)
		}
	})

	t.Run("returns 400 on unbalanced entry", func(t *testing.T) {
		journalSvc := &mockJournalService{
			createJournalEntryFn: func(_ time.Time, _ string, _ []services.JournalLine) (*models.JournalEntry, error) {
				return nil, apperrors.WithMessage(apperrors.ErrUnbalancedEntry, "debits (100) must equal credits (90)")
			},
		}
		handler := NewJournalHandler(journalSvc)
		r := setupJournalRouter(handler)

		rec := doRequest(r, "POST", "/journal-entries", `{
			"date": "2024-01-15",
			"description": "Unbalanced",
			"transactions": [
				{"account_id": 1, "amount": "100", "is_debit": true},
				{"account_id": 2, "amount": "90", "is_debit": false}
			]
		}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNBALANCED_ENTRY")
	})

	t.Run("returns 400 on fewer than two lines", func(t *testing.T) {
		handler := NewJournalHandler(&mockJournalService{})
		r := setupJournalRouter(handler)

		rec := doRequest(r, "POST", "/journal-entries", `{
			"date": "2024-01-15",
			"description": "One line",
			"transactions": [
				{"account_id": 1, "amount": "100", "is_debit": true}
			]
		}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid date", func(t *testing.T) {
		handler := NewJournalHandler(&mockJournalService{})
		r := setupJournalRouter(handler)

		rec := doRequest(r, "POST", "/journal-entries", `{
			"date": "15/01/2024",
			"description": "Bad date",
			"transactions": [
				{"account_id": 1, "amount": "100", "is_debit": true},
				{"account_id": 2, "amount": "100", "is_debit": false}
			]
		}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing description", func(t *testing.T) {
		handler := NewJournalHandler(&mockJournalService{})
		r := setupJournalRouter(handler)

		rec := doRequest(r, "POST", "/journal-entries", `{
			"date": "2024-01-15",
			"transactions": [
				{"account_id": 1, "amount": "100", "is_debit": true},
				{"account_id": 2, "amount": "100", "is_debit": false}
			]
		}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestJournalHandler_GetJournalEntries(t *testing.T) {
	t.Run("returns 200 with paginated entries", func(t *testing.T) {
		journalSvc := &mockJournalService{
			listJournalEntriesFn: func(_ pagination.PageRequest) (*pagination.PageResponse[models.JournalEntry], error) {
				resp := pagination.NewPageResponse([]models.JournalEntry{
					{Base: models.Base{ID: 1}, Description: "First"},
					{Base: models.Base{ID: 2}, Description: "Second"},
				}, 1, 50, 2)
				return &resp, nil
			},
		}
		handler := NewJournalHandler(journalSvc)
		r := setupJournalRouter(handler)

		rec := doRequest(r, "GET", "/journal-entries", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 entries, got %d", len(data))
		}
		if result["total_items"].(float64) != 2 {
			t.Errorf("expected total_items=2, got %v", result["total_items"])
		}
	})

	t.Run("passes pagination params to service", func(t *testing.T) {
		var capturedPage pagination.PageRequest
		journalSvc := &mockJournalService{
			listJournalEntriesFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.JournalEntry], error) {
				capturedPage = page
				resp := pagination.NewPageResponse([]models.JournalEntry{}, 2, 10, 0)
				return &resp, nil
			},
		}
		handler := NewJournalHandler(journalSvc)
		r := setupJournalRouter(handler)

		doRequest(r, "GET", "/journal-entries?page=2&page_size=10", "")

		if capturedPage.Page != 2 {
			t.Errorf("expected page=2, got %d", capturedPage.Page)
		}
		if capturedPage.PageSize != 10 {
			t.Errorf("expected page_size=10, got %d", capturedPage.PageSize)
		}
	})
}

func TestJournalHandler_GetJournalEntryByID(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		journalSvc := &mockJournalService{
			getJournalEntryFn: func(entryID uint) (*models.JournalEntry, error) {
				return &models.JournalEntry{
					Base:        models.Base{ID: entryID},
					Description: "Cash sale",
				}, nil
			},
		}
		handler := NewJournalHandler(journalSvc)
		r := setupJournalRouter(handler)

		rec := doRequest(r, "GET", "/journal-entries/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		entry := result["journal_entry"].(map[string]interface{})
		if entry["description"] != "Cash sale" {
			t.Errorf("expected Cash sale, got %v", entry["description"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		journalSvc := &mockJournalService{
			getJournalEntryFn: func(_ uint) (*models.JournalEntry, error) {
				return nil, apperrors.ErrJournalEntryNotFound
			},
		}
		handler := NewJournalHandler(journalSvc)
		r := setupJournalRouter(handler)

		rec := doRequest(r, "GET", "/journal-entries/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "JOURNAL_ENTRY_NOT_FOUND")
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		handler := NewJournalHandler(&mockJournalService{})
		r := setupJournalRouter(handler)

		rec := doRequest(r, "GET", "/journal-entries/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
