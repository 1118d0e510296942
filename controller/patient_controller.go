// controller/patient_controller.go
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

type PatientController struct {
	patientService service.IPatientService
}

func NewPatientController(patientService service.IPatientService) *PatientController {
	return &PatientController{patientService: patientService}
}

// RegisterRoutes registers the API routes
func (pc *PatientController) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	patients.Use(middleware.Authorize(model.RoleAdmin, model.RoleDoctor, model.RoleStaff))
	{
		patients.POST("", pc.CreatePatient)
		patients.PUT("/:id", pc.UpdatePatient)
		patients.GET("/:id", pc.GetPatient)
		patients.GET("", pc.FindPatients)
		patients.DELETE("/:id", pc.DeletePatient)
	}
}

// CreatePatient endpoint
func (pc *PatientController) CreatePatient(c *gin.Context) {
	var patient model.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails(err.Error()))
		return
	}

	identity, _ := middleware.IdentityFromContext(c)
	created, err := pc.patientService.CreatePatient(c, patient, identity.UserID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Patient created successfully", created)
}

// UpdatePatient endpoint
func (pc *PatientController) UpdatePatient(c *gin.Context) {
	var patient model.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails(err.Error()))
		return
	}
	patient.ID = c.Param("id")

	updated, err := pc.patientService.UpdatePatient(c, patient)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Patient updated successfully", updated)
}

// GetPatient endpoint
func (pc *PatientController) GetPatient(c *gin.Context) {
	patient, err := pc.patientService.GetPatient(c, c.Param("id"))
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Patient retrieved successfully", patient)
}

// FindPatients endpoint
func (pc *PatientController) FindPatients(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails("invalid pagination parameters"))
		return
	}

	filter := model.PatientFilter{
		Name:  c.Query("name"),
		Phone: c.Query("phone"),
	}

	patients, err := pc.patientService.FindPatients(c, filter, limit, offset)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Patients retrieved successfully", patients)
}

// DeletePatient endpoint
func (pc *PatientController) DeletePatient(c *gin.Context) {
	if err := pc.patientService.DeletePatient(c, c.Param("id")); err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Patient deleted successfully", nil)
}
