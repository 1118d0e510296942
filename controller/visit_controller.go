// controller/visit_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clinova_errors "github.com/clinova/api/errors"
	"github.com/clinova/api/middleware"
	"github.com/clinova/api/model"
	"github.com/clinova/api/service"
	"github.com/clinova/api/util"
	helper_util "github.com/clinova/api/util/helper"
)

type VisitController struct {
	visitService service.IVisitService
}

func NewVisitController(visitService service.IVisitService) *VisitController {
	return &VisitController{visitService: visitService}
}

// RegisterRoutes registers the API routes
func (vc *VisitController) RegisterRoutes(r *gin.RouterGroup) {
	visits := r.Group("/visits")
	visits.Use(middleware.Authorize(model.RoleAdmin, model.RoleDoctor))
	{
		visits.POST("", vc.CreateVisit)
		visits.PUT("/:id", vc.UpdateVisit)
		visits.GET("/:id", vc.GetVisit)
		visits.GET("", vc.ListVisits)
		visits.DELETE("/:id", vc.DeleteVisit)
	}
}

// CreateVisit endpoint
func (vc *VisitController) CreateVisit(c *gin.Context) {
	var visit model.Visit
	if err := c.ShouldBindJSON(&visit); err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails(err.Error()))
		return
	}

	identity, _ := middleware.IdentityFromContext(c)
	created, err := vc.visitService.CreateVisit(c, visit, identity.UserID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Visit created successfully", created)
}

// UpdateVisit endpoint
func (vc *VisitController) UpdateVisit(c *gin.Context) {
	var visit model.Visit
	if err := c.ShouldBindJSON(&visit); err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails(err.Error()))
		return
	}
	visit.ID = c.Param("id")

	updated, err := vc.visitService.UpdateVisit(c, visit)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Visit updated successfully", updated)
}

// GetVisit endpoint
func (vc *VisitController) GetVisit(c *gin.Context) {
	visit, err := vc.visitService.GetVisit(c, c.Param("id"))
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Visit retrieved successfully", visit)
}

// ListVisits endpoint lists visits for a patient.
func (vc *VisitController) ListVisits(c *gin.Context) {
	patientID := c.Query("patientId")
	if patientID == "" {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails("patientId query parameter is required"))
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails("invalid pagination parameters"))
		return
	}

	visits, err := vc.visitService.ListVisitsByPatient(c, patientID, limit, offset)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Visits retrieved successfully", visits)
}

// DeleteVisit endpoint
func (vc *VisitController) DeleteVisit(c *gin.Context) {
	if err := vc.visitService.DeleteVisit(c, c.Param("id")); err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Visit deleted successfully", nil)
}
