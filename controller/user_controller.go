// controller/user_controller.go
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

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{userService: userService}
}

// RegisterRoutes registers the API routes. Account administration is
// restricted to admins.
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users", middleware.Authorize(model.RoleAdmin))
	{
		users.GET("", uc.ListUsers)
		users.GET("/:id", uc.GetUser)
		users.DELETE("/:id", uc.DeleteUser)
	}
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails("invalid pagination parameters"))
		return
	}

	users, err := uc.userService.ListUsers(c, limit, offset)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Users retrieved successfully", users)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.userService.GetUser(c, c.Param("id"))
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// DeleteUser endpoint
func (uc *UserController) DeleteUser(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	if err := uc.userService.DeleteUser(c, c.Param("id"), identity.UserID); err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "User deleted successfully", nil)
}
