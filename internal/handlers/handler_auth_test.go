package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func verifiedUser() *domain.User {
	verified := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	return &domain.User{
		UserID:        ana.UserID,
		Email:         "ana@example.hr",
		Name:          ana.Name,
		LastName:      ana.LastName,
		PasswordHash:  "hash",
		EmailVerified: &verified,
		Role:          domain.RoleUser,
	}
}

func (suite *HandlerTestSuite) TestRegister_Success() {
	suite.account.On("Register", mock.Anything, "ana@example.hr", "Ana", "Horvat").
		Return(&domain.User{UserID: ana.UserID, Email: "ana@example.hr", Name: "Ana", LastName: "Horvat", Role: domain.RoleUser}, nil).Once()

	w := suite.request(http.MethodPost, "/api/auth/register",
		`{"email":"ana@example.hr","name":"Ana","lastName":"Horvat"}`, domain.Identity{})

	suite.Equal(http.StatusCreated, w.Code)
	var body map[string]any
	suite.decode(w, &body)
	suite.Equal("ana@example.hr", body["email"])
	suite.Equal(false, body["emailVerified"])
}

func (suite *HandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.account.On("Register", mock.Anything, "ana@example.hr", "Ana", "Horvat").
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.request(http.MethodPost, "/api/auth/register",
		`{"email":"ana@example.hr","name":"Ana","lastName":"Horvat"}`, domain.Identity{})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestRegister_MalformedBody() {
	w := suite.request(http.MethodPost, "/api/auth/register", `{"email":`, domain.Identity{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.account.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_SetsSessionCookie() {
	user := verifiedUser()
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.account.On("Login", mock.Anything, "ana@example.hr", "secret1").Return(user, nil).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("signed.jwt.value", expires, nil).Once()

	w := suite.request(http.MethodPost, "/api/auth/login",
		`{"email":"ana@example.hr","password":"secret1"}`, domain.Identity{})

	suite.Require().Equal(http.StatusOK, w.Code)
	var body struct {
		Token string `json:"token"`
		User  struct {
			ID            string `json:"id"`
			EmailVerified bool   `json:"emailVerified"`
		} `json:"user"`
	}
	suite.decode(w, &body)
	suite.Equal("signed.jwt.value", body.Token)
	suite.Equal(ana.UserID, body.User.ID)
	suite.True(body.User.EmailVerified)

	cookie := suite.cookie(w, testCookie)
	suite.Require().NotNil(cookie)
	suite.Equal("signed.jwt.value", cookie.Value)
	suite.True(cookie.HttpOnly)
	suite.Greater(cookie.MaxAge, 0)
}

func (suite *HandlerTestSuite) TestLogin_ErrorMapping() {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unverified email", apperrors.ErrEmailNotVerified, http.StatusForbidden},
		{"validation", validation.Field("email", "must be a valid email address"), http.StatusBadRequest},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.account.On("Login", mock.Anything, "ana@example.hr", "pw").Return(nil, tt.err).Once()

			w := suite.request(http.MethodPost, "/api/auth/login",
				`{"email":"ana@example.hr","password":"pw"}`, domain.Identity{})

			suite.Equal(tt.want, w.Code)
			suite.Nil(suite.cookie(w, testCookie))
		})
	}
}

func (suite *HandlerTestSuite) TestLogout_ClearsCookie() {
	w := suite.request(http.MethodPost, "/api/auth/logout", "", domain.Identity{})

	suite.Equal(http.StatusOK, w.Code)
	cookie := suite.cookie(w, testCookie)
	suite.Require().NotNil(cookie)
	suite.Empty(cookie.Value)
	suite.Less(cookie.MaxAge, 0)
}

func (suite *HandlerTestSuite) TestVerify_ExpiredToken() {
	token := "4f1c8e2a-6b3d-4c7e-9f0a-1b2c3d4e5f60"
	suite.account.On("ConfirmAccount", mock.Anything, token, "secret1").Return(apperrors.ErrTokenExpired).Once()

	w := suite.request(http.MethodPost, "/api/auth/verify",
		`{"token":"`+token+`","password":"secret1"}`, domain.Identity{})

	suite.Equal(http.StatusGone, w.Code)
}

func (suite *HandlerTestSuite) TestVerify_Success() {
	token := "4f1c8e2a-6b3d-4c7e-9f0a-1b2c3d4e5f60"
	suite.account.On("ConfirmAccount", mock.Anything, token, "secret1").Return(nil).Once()

	w := suite.request(http.MethodPost, "/api/auth/verify",
		`{"token":"`+token+`","password":"secret1"}`, domain.Identity{})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Email verified"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestReset_ValidationFields() {
	suite.account.On("RequestPasswordReset", mock.Anything, "nope").
		Return(validation.Field("email", "must be a valid email address")).Once()

	w := suite.request(http.MethodPost, "/api/auth/reset", `{"email":"nope"}`, domain.Identity{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Validation failed","fields":[{"field":"email","message":"must be a valid email address"}]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestReset_UnknownEmail() {
	suite.account.On("RequestPasswordReset", mock.Anything, "ghost@example.hr").Return(apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodPost, "/api/auth/reset", `{"email":"ghost@example.hr"}`, domain.Identity{})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestNewPassword_UnknownToken() {
	token := "4f1c8e2a-6b3d-4c7e-9f0a-1b2c3d4e5f60"
	suite.account.On("SetNewPassword", mock.Anything, token, "newsecret").Return(apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodPost, "/api/auth/new-password",
		`{"token":"`+token+`","password":"newsecret"}`, domain.Identity{})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGoogleLogin_RedirectsWithState() {
	suite.google.On("GenerateStateString", mock.Anything).Return("state-123", nil).Once()
	suite.google.On("GetGoogleLoginURL", mock.Anything, "state-123").
		Return("https://accounts.google.com/o/oauth2/auth?state=state-123").Once()

	w := suite.request(http.MethodGet, "/api/auth/google/login", "", domain.Identity{})

	suite.Equal(http.StatusTemporaryRedirect, w.Code)
	suite.Equal("https://accounts.google.com/o/oauth2/auth?state=state-123", w.Header().Get("Location"))
	cookie := suite.cookie(w, "oauth_state")
	suite.Require().NotNil(cookie)
	suite.Equal("state-123", cookie.Value)
}

func (suite *HandlerTestSuite) googleCallback(state, cookieState string) *http.Response {
	req, _ := http.NewRequest(http.MethodGet, "/api/auth/google/callback?code=auth-code&state="+url.QueryEscape(state), nil)
	if cookieState != "" {
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: cookieState})
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w.Result()
}

func (suite *HandlerTestSuite) TestGoogleCallback_StateMismatch() {
	resp := suite.googleCallback("state-123", "other-state")

	suite.Equal(http.StatusTemporaryRedirect, resp.StatusCode)
	suite.Equal(testFrontendURL+"/prijava?error=OAuthCallbackError", resp.Header.Get("Location"))
	suite.google.AssertNotCalled(suite.T(), "ExchangeCode", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGoogleCallback_Success() {
	info := &domain.GoogleUserInfo{Subject: "g-1", Email: "ana@example.hr", EmailVerified: true}
	user := verifiedUser()
	suite.google.On("ExchangeCode", mock.Anything, "auth-code").Return(info, nil).Once()
	suite.account.On("LoginWithGoogle", mock.Anything, info).Return(user, nil).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("google.jwt", time.Now().Add(time.Hour), nil).Once()

	resp := suite.googleCallback("state-123", "state-123")

	suite.Equal(http.StatusTemporaryRedirect, resp.StatusCode)
	suite.Equal(testFrontendURL+"/pregled", resp.Header.Get("Location"))
	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			session = c
		}
	}
	suite.Require().NotNil(session)
	suite.Equal("google.jwt", session.Value)
}

func (suite *HandlerTestSuite) TestGoogleCallback_AccountNotLinked() {
	info := &domain.GoogleUserInfo{Subject: "g-2", Email: "stranger@example.hr", EmailVerified: true}
	suite.google.On("ExchangeCode", mock.Anything, "auth-code").Return(info, nil).Once()
	suite.account.On("LoginWithGoogle", mock.Anything, info).Return(nil, apperrors.ErrInvalidCredentials).Once()

	resp := suite.googleCallback("state-123", "state-123")

	suite.Equal(http.StatusTemporaryRedirect, resp.StatusCode)
	suite.Equal(testFrontendURL+"/prijava?error=OAuthAccountNotLinked", resp.Header.Get("Location"))
	suite.tokens.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestReset_UnverifiedAccount() {
	suite.account.On("RequestPasswordReset", mock.Anything, "ana@example.hr").Return(apperrors.ErrEmailNotVerified).Once()

	w := suite.request(http.MethodPost, "/api/auth/reset", `{"email":"ana@example.hr"}`, domain.Identity{})

	suite.Equal(http.StatusForbidden, w.Code)
}
