package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestMe() {
	w := suite.request(http.MethodGet, "/api/me", "", admin)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.MeResponse
	suite.decode(w, &body)
	suite.Equal(admin.UserID, body.UserID)
	suite.Equal(domain.RoleAdmin, body.Role)
	suite.Equal("Ivo Ivić", body.DisplayName)
}

func (suite *HandlerTestSuite) TestUserHistory() {
	suite.users.On("ListUserHistory", mock.Anything).Return([]domain.UserHistoryItem{
		{User: *verifiedUser(), InvoiceCount: 4},
		{User: domain.User{UserID: admin.UserID, Email: "ivo@example.hr", Role: domain.RoleAdmin, CreatedAt: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)}},
	}, nil).Once()

	w := suite.request(http.MethodGet, "/api/user-history", "", ana)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body []dto.UserHistoryResponse
	suite.decode(w, &body)
	suite.Require().Len(body, 2)
	suite.Equal(4, body[0].InvoiceCount)
	suite.True(body[0].EmailVerified)
	suite.False(body[1].EmailVerified)
	suite.NotContains(w.Body.String(), "hash")
}

func (suite *HandlerTestSuite) TestCreateUser_RequiresAdmin() {
	w := suite.request(http.MethodPost, "/api/users", `{"email":"new@example.hr","name":"Nova","lastName":"Osoba"}`, ana)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.account.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateUser_ByAdmin() {
	suite.account.On("Register", mock.Anything, "new@example.hr", "Nova", "Osoba").
		Return(&domain.User{UserID: "1f2e3d4c-5b6a-4798-8a9b-0c1d2e3f4a5b", Email: "new@example.hr", Name: "Nova", LastName: "Osoba", Role: domain.RoleUser}, nil).Once()

	w := suite.request(http.MethodPost, "/api/users", `{"email":"new@example.hr","name":"Nova","lastName":"Osoba"}`, admin)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"emailVerified":false`)
}

func (suite *HandlerTestSuite) TestCreateUser_DuplicateEmail() {
	suite.account.On("Register", mock.Anything, "ana@example.hr", "Ana", "Horvat").Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.request(http.MethodPost, "/api/users", `{"email":"ana@example.hr","name":"Ana","lastName":"Horvat"}`, admin)

	suite.Equal(http.StatusConflict, w.Code)
}
