package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const invoiceID = "5a9b8c7d-6e5f-4a3b-9c2d-1e0f9a8b7c6d"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func storedInvoice() *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: "INV-1",
		Type:          domain.Incoming,
		NetAmount:     dec("100.00"),
		VatRate:       dec("25"),
		VatAmount:     dec("25.00"),
		GrossAmount:   dec("125.00"),
		Status:        domain.StatusUnpaid,
		DateIssued:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CategoryID:    rentID,
		CreatorFields: domain.CreatorFields{
			CreatorUserID:      ana.UserID,
			CreatorDisplayName: "Ana Horvat",
			CreatedAt:          time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		},
	}
}

const createInvoiceBody = `{
	"invoiceNumber": "INV-1",
	"type": "ULAZNI_RACUN",
	"netAmount": 100,
	"vatRate": 25,
	"vatAmount": 25,
	"grossAmount": 125,
	"status": "NEPLACENO",
	"dateIssued": "2024-03-15T00:00:00Z",
	"categoryId": "` + rentID + `",
	"departmentId": "` + officeID + `"
}`

func (suite *HandlerTestSuite) TestCreateInvoice_Success() {
	suite.invoices.On("CreateInvoice", mock.Anything, isIdentity(ana), mock.MatchedBy(func(r dto.CreateInvoiceRequest) bool {
		return r.InvoiceNumber == "INV-1" &&
			r.NetAmount.Equal(dec("100")) &&
			r.GrossAmount != nil && r.GrossAmount.Equal(dec("125")) &&
			r.DepartmentID != nil && *r.DepartmentID == officeID &&
			r.DateIssued.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	})).Return(storedInvoice(), nil).Once()

	w := suite.request(http.MethodPost, "/api/invoices", createInvoiceBody, ana)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var body dto.InvoiceResponse
	suite.decode(w, &body)
	suite.Equal(invoiceID, body.InvoiceID)
	suite.True(body.GrossAmount.Equal(dec("125")))
	suite.Equal(ana.UserID, body.UserID)
	suite.Equal("Ana Horvat", body.UserOriginal)
}

func (suite *HandlerTestSuite) TestCreateInvoice_Duplicate() {
	suite.invoices.On("CreateInvoice", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: invoice number INV-1 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.request(http.MethodPost, "/api/invoices", createInvoiceBody, ana)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateInvoice_ValidationErrors() {
	suite.invoices.On("CreateInvoice", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, validation.Errors{
			{Field: "netAmount", Message: "must be a positive amount with at most two decimals"},
			{Field: "categoryId", Message: "is required"},
		}).Once()

	w := suite.request(http.MethodPost, "/api/invoices", `{"invoiceNumber":"INV-2","type":"ULAZNI_RACUN","netAmount":-1,"vatRate":25,"status":"NEPLACENO","dateIssued":"2024-03-15T00:00:00Z"}`, ana)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Fields []validation.FieldError `json:"fields"`
	}
	suite.decode(w, &body)
	suite.Len(body.Fields, 2)
}

func (suite *HandlerTestSuite) TestCreateInvoice_RequiresSession() {
	w := suite.request(http.MethodPost, "/api/invoices", createInvoiceBody, domain.Identity{})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestGetInvoice_NotFound() {
	suite.invoices.On("GetInvoice", mock.Anything, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodGet, "/api/invoices/"+invoiceID, "", ana)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateInvoiceStatus() {
	paid := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	updated := storedInvoice()
	updated.Status = domain.StatusPaid
	updated.DatePaid = &paid
	suite.invoices.On("UpdateInvoiceStatus", mock.Anything, isIdentity(ana), invoiceID, mock.MatchedBy(func(r dto.UpdateInvoiceStatusRequest) bool {
		return r.Status == domain.StatusPaid && r.DatePaid != nil && r.DatePaid.Equal(paid)
	})).Return(updated, nil).Once()

	w := suite.request(http.MethodPatch, "/api/invoices/"+invoiceID+"/status",
		`{"status":"PLACENO","datePaid":"2024-04-02T00:00:00Z"}`, ana)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"PLACENO"`)
}

func (suite *HandlerTestSuite) TestDeleteInvoice() {
	suite.invoices.On("DeleteInvoice", mock.Anything, isIdentity(ana), invoiceID).Return(nil).Once()

	w := suite.request(http.MethodDelete, "/api/invoices/"+invoiceID, "", ana)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestInvoiceHistory_PassesRangeAndPaging() {
	office := "Office"
	next := "next-page-token"
	item := domain.InvoiceHistoryItem{
		Invoice:         *storedInvoice(),
		CategoryName:    "Rent",
		CategoryIcon:    "🏠",
		DepartmentName:  &office,
		FormattedAmount: "125,00 €",
	}
	suite.invoices.On("ListInvoiceHistory", mock.Anything,
		mock.MatchedBy(func(rng domain.DateRange) bool {
			return rng.From.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
				rng.To.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
		}),
		50,
		mock.MatchedBy(func(token *string) bool { return token != nil && *token == "abc" }),
	).Return([]domain.InvoiceHistoryItem{item}, &next, nil).Once()

	w := suite.request(http.MethodGet, "/api/invoice-history?from=2024-03-01&to=2024-03-31&limit=50&nextToken=abc", "", ana)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var body dto.ListInvoicesResponse
	suite.decode(w, &body)
	suite.Require().Len(body.Invoices, 1)
	suite.Equal("Rent", body.Invoices[0].Category)
	suite.Equal("Office", *body.Invoices[0].Department)
	suite.Equal("125,00 €", body.Invoices[0].FormattedAmount)
	suite.Require().NotNil(body.NextToken)
	suite.Equal(next, *body.NextToken)
}

func (suite *HandlerTestSuite) TestInvoiceHistory_DefaultLimit() {
	suite.invoices.On("ListInvoiceHistory", mock.Anything, mock.Anything, 100, (*string)(nil)).
		Return([]domain.InvoiceHistoryItem{}, nil, nil).Once()

	w := suite.request(http.MethodGet, "/api/invoice-history?from=2024-03-01&to=2024-03-31", "", ana)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"invoices":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestInvoiceHistory_BadDates() {
	tests := []struct {
		name  string
		query string
	}{
		{"missing to", "from=2024-03-01"},
		{"malformed from", "from=03/01/2024&to=2024-03-31"},
		{"to before from", "from=2024-03-31&to=2024-03-01"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.request(http.MethodGet, "/api/invoice-history?"+tt.query, "", ana)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.invoices.AssertNotCalled(suite.T(), "ListInvoiceHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
