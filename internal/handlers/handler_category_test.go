package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/validation"
	"github.com/stretchr/testify/mock"
)

const (
	rentID   = "0b6f3c1e-2a4d-4e8f-9c7b-5d1a2e3f4c5d"
	officeID = "7e2d4c6b-8a1f-4b3e-a5d9-c0b1e2f3a4b5"
)

func rentCategory() *domain.Category {
	return &domain.Category{
		CategoryID:   rentID,
		Name:         "Rent",
		Icon:         "🏠",
		Type:         domain.Incoming,
		InvoiceCount: 3,
		CreatorFields: domain.CreatorFields{
			CreatorUserID:      ana.UserID,
			CreatorDisplayName: "Ana Horvat",
			CreatedAt:          time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func isIdentity(want domain.Identity) interface{} {
	return mock.MatchedBy(func(got domain.Identity) bool { return got == want })
}

func (suite *HandlerTestSuite) TestListCategories_FilterByType() {
	suite.categories.On("ListCategories", mock.Anything, mock.MatchedBy(func(t *domain.InvoiceType) bool {
		return t != nil && *t == domain.Incoming
	})).Return([]domain.Category{*rentCategory()}, nil).Once()

	w := suite.request(http.MethodGet, "/api/categories?type=ULAZNI_RACUN", "", ana)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CategoryResponse
	suite.decode(w, &body)
	suite.Require().Len(body, 1)
	suite.Equal("Rent", body[0].Name)
	suite.Equal(3, body[0].InvoiceCount)
	suite.Equal("Ana Horvat", body[0].UserOriginal)
}

func (suite *HandlerTestSuite) TestListCategories_NoFilter() {
	suite.categories.On("ListCategories", mock.Anything, (*domain.InvoiceType)(nil)).Return([]domain.Category{}, nil).Once()

	w := suite.request(http.MethodGet, "/api/categories", "", ana)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListCategories_InvalidType() {
	suite.categories.On("ListCategories", mock.Anything, mock.Anything).
		Return(nil, validation.Field("type", "must be one of: ULAZNI_RACUN IZLAZNI_RACUN")).Once()

	w := suite.request(http.MethodGet, "/api/categories?type=OTHER", "", ana)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListCategories_ByID() {
	suite.categories.On("GetCategory", mock.Anything, rentID).Return(rentCategory(), nil).Once()

	w := suite.request(http.MethodGet, "/api/categories?categoryId="+rentID, "", ana)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CategoryResponse
	suite.decode(w, &body)
	suite.Equal(rentID, body.CategoryID)
	suite.categories.AssertNotCalled(suite.T(), "ListCategories", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListCategories_ByIDNotFound() {
	suite.categories.On("GetCategory", mock.Anything, rentID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodGet, "/api/categories?categoryId="+rentID, "", ana)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCategory_PassesIdentity() {
	req := dto.CreateCategoryRequest{Name: "Rent", Icon: "🏠", Type: domain.Incoming}
	suite.categories.On("CreateCategory", mock.Anything, isIdentity(ana), req).Return(rentCategory(), nil).Once()

	w := suite.request(http.MethodPost, "/api/categories", `{"name":"Rent","icon":"🏠","type":"ULAZNI_RACUN"}`, ana)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.CategoryResponse
	suite.decode(w, &body)
	suite.Equal(rentID, body.CategoryID)
	suite.Equal(domain.Incoming, body.Type)
}

func (suite *HandlerTestSuite) TestCreateCategory_Duplicate() {
	suite.categories.On("CreateCategory", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: category Rent of type ULAZNI_RACUN already exists", apperrors.ErrDuplicate)).Once()

	w := suite.request(http.MethodPost, "/api/categories", `{"name":"Rent","icon":"🏠","type":"ULAZNI_RACUN"}`, ana)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "already exists")
}

func (suite *HandlerTestSuite) TestUpdateCategory() {
	updated := rentCategory()
	updated.Name = "Office rent"
	suite.categories.On("UpdateCategory", mock.Anything, isIdentity(ana), rentID, mock.MatchedBy(func(r dto.UpdateCategoryRequest) bool {
		return r.Name == "Office rent" && r.Type == domain.Incoming
	})).Return(updated, nil).Once()

	w := suite.request(http.MethodPut, "/api/categories/"+rentID, `{"name":"Office rent","icon":"🏠","type":"ULAZNI_RACUN"}`, ana)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"name":"Office rent"`)
}

func (suite *HandlerTestSuite) TestDeleteCategory_WithReplacement() {
	suite.categories.On("DeleteCategory", mock.Anything, isIdentity(ana), rentID, mock.MatchedBy(func(r *string) bool {
		return r != nil && *r == officeID
	})).Return(nil).Once()

	w := suite.request(http.MethodDelete, "/api/categories/"+rentID+"?replacementId="+officeID, "", ana)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteCategory_InUseWithoutReplacement() {
	suite.categories.On("DeleteCategory", mock.Anything, isIdentity(ana), rentID, (*string)(nil)).
		Return(fmt.Errorf("%w: category has 3 invoices", apperrors.ErrInUse)).Once()

	w := suite.request(http.MethodDelete, "/api/categories/"+rentID, "", ana)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestDepartments() {
	desc := "Back office"
	suite.departments.On("ListDepartments", mock.Anything).Return([]domain.Department{
		{DepartmentID: officeID, Name: "Office", Description: &desc, InvoiceCount: 2},
	}, nil).Once()

	w := suite.request(http.MethodGet, "/api/departments", "", ana)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.DepartmentResponse
	suite.decode(w, &body)
	suite.Require().Len(body, 1)
	suite.Equal("Office", body[0].Name)
	suite.Equal(2, body[0].InvoiceCount)
}

func (suite *HandlerTestSuite) TestCreateDepartment() {
	suite.departments.On("CreateDepartment", mock.Anything, isIdentity(ana), dto.CreateDepartmentRequest{Name: "Office"}).
		Return(&domain.Department{DepartmentID: officeID, Name: "Office"}, nil).Once()

	w := suite.request(http.MethodPost, "/api/departments", `{"name":"Office"}`, ana)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteDepartment_InvalidReplacement() {
	suite.departments.On("DeleteDepartment", mock.Anything, isIdentity(ana), officeID, mock.Anything).
		Return(validation.Field("replacementId", "department does not exist")).Once()

	w := suite.request(http.MethodDelete, "/api/departments/"+officeID+"?replacementId="+rentID, "", ana)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), `"field":"replacementId"`)
}
