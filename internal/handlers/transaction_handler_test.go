package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fincoach/internal/dto"
	apierrors "fincoach/internal/errors"
	"fincoach/internal/models"
	"fincoach/internal/repositories/repository_mocks"
	"fincoach/internal/services/service_mocks"
	"fincoach/internal/validation"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionHandlerSuite defines the test suite for TransactionHandler
type TransactionHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockTransactionRepositoryInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	handler *TransactionHandler
	echo    *echo.Echo
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.repo, validation.GetValidator(), s.metrics)
	s.echo = echo.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) newContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(OwnerIDContextKey, "demo-user")
	return c, rec
}

func (s *TransactionHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *TransactionHandlerSuite) TestListTransactions() {
	ledger := []models.Transaction{
		{
			ID:          uuid.New(),
			OwnerID:     "demo-user",
			Amount:      decimal.RequireFromString("85.32"),
			Kind:        models.TransactionKindExpense,
			Description: "Groceries",
			Category:    "food",
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}
	s.repo.EXPECT().ListByOwner("demo-user").Return(ledger, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Transactions, 1)
	s.Equal("Groceries", response.Transactions[0].Description)
}

func (s *TransactionHandlerSuite) TestListTransactions_EmptyLedger() {
	s.repo.EXPECT().ListByOwner("demo-user").Return([]models.Transaction{}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"transactions":[]`)
}

func (s *TransactionHandlerSuite) TestListTransactions_RepositoryError() {
	s.repo.EXPECT().ListByOwner("demo-user").Return(nil, errors.New("db down"))

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apierrors.SystemInternalError), s.errorCode(rec))
}

func (s *TransactionHandlerSuite) TestCreateTransaction() {
	s.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(txn *models.Transaction) error {
		s.Equal("demo-user", txn.OwnerID)
		s.True(txn.Amount.Equal(decimal.RequireFromString("42.50")))
		s.Equal(models.TransactionKindExpense, txn.Kind)
		s.True(txn.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
		txn.ID = uuid.New()
		return nil
	})
	s.metrics.EXPECT().RecordTransactionCreated(models.TransactionKindExpense)

	body := dto.CreateTransactionRequest{
		Amount:      "42.50",
		Type:        "expense",
		Description: "Groceries",
		Category:    "food",
		Date:        "2024-03-05",
	}

	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusCreated, rec.Code)

	var response dto.CreateTransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotEmpty(response.ID)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_UppercaseKindNormalized() {
	s.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(txn *models.Transaction) error {
		s.Equal(models.TransactionKindIncome, txn.Kind)
		return nil
	})
	s.metrics.EXPECT().RecordTransactionCreated(models.TransactionKindIncome)

	body := dto.CreateTransactionRequest{
		Amount:      "2500.00",
		Type:        "INCOME",
		Description: "Salary",
		Category:    "salary",
		Date:        "2024-03-01",
	}

	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_ValidationFailures() {
	valid := dto.CreateTransactionRequest{
		Amount:      "42.50",
		Type:        "expense",
		Description: "Groceries",
		Category:    "food",
		Date:        "2024-03-05",
	}

	tests := []struct {
		name   string
		mutate func(*dto.CreateTransactionRequest)
	}{
		{"missing amount", func(r *dto.CreateTransactionRequest) { r.Amount = "" }},
		{"non numeric amount", func(r *dto.CreateTransactionRequest) { r.Amount = "abc" }},
		{"zero amount", func(r *dto.CreateTransactionRequest) { r.Amount = "0" }},
		{"negative amount", func(r *dto.CreateTransactionRequest) { r.Amount = "-5.00" }},
		{"unknown kind", func(r *dto.CreateTransactionRequest) { r.Type = "transfer" }},
		{"missing description", func(r *dto.CreateTransactionRequest) { r.Description = "" }},
		{"missing category", func(r *dto.CreateTransactionRequest) { r.Category = "" }},
		{"bad date", func(r *dto.CreateTransactionRequest) { r.Date = "03/05/2024" }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			body := valid
			tt.mutate(&body)

			c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)
			s.Require().NoError(s.handler.CreateTransaction(c))

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(apierrors.ValidationGeneral), s.errorCode(rec))
		})
	}
}

func (s *TransactionHandlerSuite) TestCreateTransaction_MalformedJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(OwnerIDContextKey, "demo-user")

	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationInvalidFormat), s.errorCode(rec))
}

func (s *TransactionHandlerSuite) TestDeleteTransaction() {
	id := uuid.New()
	s.repo.EXPECT().Delete("demo-user", id).Return(true, nil)
	s.metrics.EXPECT().RecordTransactionDeleted()

	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions?id="+id.String(), nil)
	s.Require().NoError(s.handler.DeleteTransaction(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Transaction deleted successfully")
}

func (s *TransactionHandlerSuite) TestDeleteTransaction_NotFound() {
	id := uuid.New()
	s.repo.EXPECT().Delete("demo-user", id).Return(false, nil)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions?id="+id.String(), nil)
	s.Require().NoError(s.handler.DeleteTransaction(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.TransactionNotFound), s.errorCode(rec))
}

func (s *TransactionHandlerSuite) TestDeleteTransaction_MissingID() {
	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions", nil)
	s.Require().NoError(s.handler.DeleteTransaction(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.TransactionMissingID), s.errorCode(rec))
}

func (s *TransactionHandlerSuite) TestDeleteTransaction_MalformedID() {
	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions?id=not-a-uuid", nil)
	s.Require().NoError(s.handler.DeleteTransaction(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationInvalidFormat), s.errorCode(rec))
}
