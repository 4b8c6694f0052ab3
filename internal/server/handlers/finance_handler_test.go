package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seogestao/condogest/internal/domain/models"
)

type fakeFinanceStore struct {
	transactions []models.Transaction
	created      []models.Transaction
}

func (f *fakeFinanceStore) ListTransactions(context.Context) ([]models.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeFinanceStore) CreateTransaction(_ context.Context, t models.Transaction) (models.Transaction, error) {
	t.ID = "t1"
	f.created = append(f.created, t)
	return t, nil
}

func newFinanceRouter(store *fakeFinanceStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFinanceHandler(store, nil)

	r := gin.New()
	r.GET("/transactions", h.ListTransactions)
	r.POST("/transactions", h.CreateTransaction)
	r.GET("/finance/summary", h.Summary)
	return r
}

func TestSummaryDerivesFigures(t *testing.T) {
	store := &fakeFinanceStore{transactions: []models.Transaction{
		{Type: models.TransactionIncome, Amount: 1000},
		{Type: models.TransactionExpense, Amount: 100, IVARate: 23},
		{Type: models.TransactionExpense, Amount: 50, IVARate: 6, Category: "Retenção IRS"},
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/finance/summary", nil)
	newFinanceRouter(store).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 1000.0, body["totalIncome"], 1e-9)
	assert.InDelta(t, 150.0, body["totalExpense"], 1e-9)
	assert.InDelta(t, 850.0, body["balance"], 1e-9)
	assert.InDelta(t, 23.0, body["vat23"], 1e-9)
	assert.InDelta(t, 3.0, body["vat6"], 1e-9)
	assert.InDelta(t, 100.0, body["legalReserve"], 1e-9)
	assert.InDelta(t, 50.0, body["irsRetention"], 1e-9)
}

func TestCreateTransactionAcceptsZeroRate(t *testing.T) {
	store := &fakeFinanceStore{}

	payload := `{"date":"2024-06-01","description":"Quota","amount":120,"ivaRate":0,"type":"INCOME"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	newFinanceRouter(store).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
	assert.Zero(t, store.created[0].IVARate)
}

func TestCreateTransactionRejectsUnknownRate(t *testing.T) {
	store := &fakeFinanceStore{}

	payload := `{"date":"2024-06-01","description":"Obra","amount":120,"ivaRate":21,"type":"EXPENSE"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	newFinanceRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.created)
}

func TestCreateTransactionRejectsBadType(t *testing.T) {
	store := &fakeFinanceStore{}

	payload := `{"date":"2024-06-01","description":"Obra","amount":120,"ivaRate":23,"type":"TRANSFER"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	newFinanceRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
