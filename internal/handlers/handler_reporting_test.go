package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func march2024() interface{} {
	return mock.MatchedBy(func(rng domain.DateRange) bool {
		return rng.From.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			rng.To.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	})
}

func sampleBalance() domain.BalanceStats {
	return domain.BalanceStats{
		Income:        dec("125.00"),
		Expense:       dec("50.00"),
		VatPaid:       dec("25.00"),
		VatOwed:       dec("10.00"),
		AmountBalance: dec("75.00"),
		VatBalance:    dec("15.00"),
	}
}

func (suite *HandlerTestSuite) TestBalanceStats() {
	stats := sampleBalance()
	suite.reporting.On("BalanceStats", mock.Anything, march2024()).Return(&stats, nil).Once()

	w := suite.request(http.MethodGet, "/api/stats/balance?from=2024-03-01&to=2024-03-31T00:00:00Z", "", ana)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var body dto.BalanceStatsResponse
	suite.decode(w, &body)
	suite.True(body.AmountBalance.Equal(dec("75")))
	suite.True(body.VatBalance.Equal(dec("15")))
}

func (suite *HandlerTestSuite) TestBalanceStats_BadRange() {
	tests := []struct {
		name  string
		query string
	}{
		{"missing both", ""},
		{"missing from", "?to=2024-03-31"},
		{"to before from", "?from=2024-03-31&to=2024-03-01"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.request(http.MethodGet, "/api/stats/balance"+tt.query, "", ana)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.reporting.AssertNotCalled(suite.T(), "BalanceStats", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCategoryStats() {
	suite.reporting.On("CategoryStats", mock.Anything, march2024()).Return([]domain.CategoryStat{
		{Type: domain.Incoming, CategoryID: rentID, CategoryName: "Rent", CategoryIcon: "🏠", Amount: dec("125.00")},
	}, nil).Once()

	w := suite.request(http.MethodGet, "/api/stats/categories?from=2024-03-01&to=2024-03-31", "", ana)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body []dto.CategoryStatResponse
	suite.decode(w, &body)
	suite.Require().Len(body, 1)
	suite.Equal("Rent", body[0].Category)
	suite.True(body[0].Amount.Equal(dec("125")))
}

func (suite *HandlerTestSuite) TestOverview() {
	suite.reporting.On("Overview", mock.Anything, march2024()).Return(&domain.Overview{
		Balance:    sampleBalance(),
		Categories: []domain.CategoryStat{},
	}, nil).Once()

	w := suite.request(http.MethodGet, "/api/stats/overview?from=2024-03-01&to=2024-03-31", "", ana)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body dto.OverviewResponse
	suite.decode(w, &body)
	suite.True(body.Balance.Income.Equal(dec("125")))
	suite.Empty(body.Categories)
}

func (suite *HandlerTestSuite) TestHistoryData_Month() {
	day := 1
	suite.reporting.On("HistoryData", mock.Anything, domain.TimeframeMonth, 2024, 3).Return([]domain.HistoryPoint{
		{Year: 2024, Month: 3, Day: &day, Income: dec("125.00"), Expense: dec("0"), VatBalance: dec("-25.00")},
	}, nil).Once()

	w := suite.request(http.MethodGet, "/api/history-data?timeframe=month&year=2024&month=3", "", ana)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var body []domain.HistoryPoint
	suite.decode(w, &body)
	suite.Require().Len(body, 1)
	suite.Require().NotNil(body[0].Day)
	suite.Equal(1, *body[0].Day)
	suite.True(body[0].Income.Equal(dec("125")))
	suite.True(body[0].VatBalance.Equal(dec("-25")))
}

func (suite *HandlerTestSuite) TestHistoryData_InvalidParams() {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown timeframe", "timeframe=week&year=2024"},
		{"missing year", "timeframe=year"},
		{"month out of range", "timeframe=month&year=2024&month=13"},
		{"non numeric year", "timeframe=year&year=abc"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.request(http.MethodGet, "/api/history-data?"+tt.query, "", ana)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.reporting.AssertNotCalled(suite.T(), "HistoryData", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestHistoryPeriods() {
	suite.reporting.On("HistoryPeriods", mock.Anything).Return([]int{2023, 2024}, nil).Once()

	w := suite.request(http.MethodGet, "/api/history-periods", "", ana)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"years":[2023,2024]}`, w.Body.String())
}
