// controller/schedule_controller.go
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

type ScheduleController struct {
	scheduleService service.IScheduleService
}

func NewScheduleController(scheduleService service.IScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService}
}

// RegisterRoutes registers the API routes. Doctors manage their own
// availability; staff only consult it when placing bookings.
func (sc *ScheduleController) RegisterRoutes(r *gin.RouterGroup) {
	schedules := r.Group("/schedules")
	{
		writeGuard := middleware.Authorize(model.RoleAdmin, model.RoleDoctor)
		readGuard := middleware.Authorize(model.RoleAdmin, model.RoleDoctor, model.RoleStaff)

		schedules.PUT("/:doctorId", writeGuard, sc.UpsertSchedule)
		schedules.DELETE("/:doctorId", writeGuard, sc.DeleteSchedule)
		schedules.GET("/:doctorId", readGuard, sc.GetSchedule)
		schedules.GET("", readGuard, sc.ListSchedules)
	}
}

// UpsertSchedule endpoint
func (sc *ScheduleController) UpsertSchedule(c *gin.Context) {
	var schedule model.Schedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails(err.Error()))
		return
	}
	schedule.DoctorID = c.Param("doctorId")

	saved, err := sc.scheduleService.UpsertSchedule(c, schedule)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Schedule saved successfully", saved)
}

// GetSchedule endpoint
func (sc *ScheduleController) GetSchedule(c *gin.Context) {
	schedule, err := sc.scheduleService.GetSchedule(c, c.Param("doctorId"))
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// ListSchedules endpoint
func (sc *ScheduleController) ListSchedules(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails("invalid pagination parameters"))
		return
	}

	schedules, err := sc.scheduleService.ListSchedules(c, limit, offset)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Schedules retrieved successfully", schedules)
}

// DeleteSchedule endpoint
func (sc *ScheduleController) DeleteSchedule(c *gin.Context) {
	if err := sc.scheduleService.DeleteSchedule(c, c.Param("doctorId")); err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Schedule deleted successfully", nil)
}
