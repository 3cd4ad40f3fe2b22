package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-blog/internal/handler"
)

// registerUserRoutes binds /users and /users/:id to the same handlers; the
// handler tells the two apart by the presence of the id.
func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")

	listOrGet := handler.Handle(h.Users.Handler, h.Users.ListOrGet, http.StatusOK)
	users.GET("", listOrGet)
	users.GET("/:id", listOrGet)

	users.POST("", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated))

	patch := handler.Handle(h.Users.Handler, h.Users.Patch, http.StatusOK)
	users.PATCH("", patch)
	users.PATCH("/:id", patch)
}
