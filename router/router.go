// router/router.go

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/clinova/api/auth"
	"github.com/clinova/api/controller"
	"github.com/clinova/api/middleware"
)

// SetupRouter wires the public auth endpoints and the token-guarded
// resource endpoints. Everything under /api except /auth requires a
// valid access token; per-resource role checks live with each controller.
func SetupRouter(controllers *controller.Controllers, codec *auth.TokenCodec) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	api := router.Group("/api")

	controllers.Auth.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Authenticate(codec))

	controllers.User.RegisterRoutes(protected)
	controllers.Patient.RegisterRoutes(protected)
	controllers.Visit.RegisterRoutes(protected)
	controllers.Booking.RegisterRoutes(protected)
	controllers.Schedule.RegisterRoutes(protected)

	return router
}
