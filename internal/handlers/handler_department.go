package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := &departmentHandler{departmentService: departmentService}

	departments := rg.Group("/departments")
	{
		departments.GET("", h.listDepartments)
		departments.POST("", h.createDepartment)
		departments.DELETE("/:id", h.deleteDepartment)
	}
}

// listDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list departments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDepartmentResponse(departments))
}

// createDepartment godoc
// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body dto.CreateDepartmentRequest true "Department"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	department, err := h.departmentService.CreateDepartment(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err, "Failed to create department")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// deleteDepartment godoc
// @Summary Delete department
// @Tags departments
// @Param id path string true "Department ID"
// @Param replacementId query string false "Department taking over the invoices"
// @Success 204
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Department still has invoices"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	if err := h.departmentService.DeleteDepartment(c.Request.Context(), identity, c.Param("id"), optionalQuery(c, "replacementId")); err != nil {
		respondError(c, err, "Failed to delete department")
		return
	}
	c.Status(http.StatusNoContent)
}
