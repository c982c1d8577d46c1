package router // package router defines how HTTP routes are registered for the API

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/prolearn/course-marketplace/internal/auth"
	"github.com/prolearn/course-marketplace/internal/handler"
	"github.com/prolearn/course-marketplace/internal/middleware"
	"github.com/prolearn/course-marketplace/internal/repository"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	Class    *handler.ClassHandler
	Selected *handler.SelectedHandler
	Payment  *handler.PaymentHandler
	User     *handler.UserHandler
}

// Register wires the full route table onto the Echo instance. Gates are
// applied exactly where the API has always had them: most listing
// mutations are open, the self-only reads require authentication, and the
// two admin reads require the DB-backed admin role. The public catalog and
// popularity endpoints sit behind the Redis response cache when a client
// is available.
func Register(e *echo.Echo, h Handlers, tokens *auth.TokenService, users *repository.UserRepo, rdb *redis.Client) {
	authed := middleware.RequireAuthenticated(tokens)
	admin := middleware.RequireAdmin(users)
	cached := middleware.CacheResponse(rdb, 30*time.Second)

	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
	e.POST("/jwt", h.Auth.IssueToken)

	// class apis
	e.GET("/class/all", h.Class.GetApproved, cached)
	e.GET("/class", h.Class.GetAll, authed, admin)
	e.GET("/class/ins", h.Class.GetByInstructor, authed)
	e.GET("/class/ins/:id", h.Class.GetByID)
	e.POST("/class", h.Class.Create)
	e.PATCH("/class/ins/:id", h.Class.Update)
	e.PATCH("/class/approve/:id", h.Class.Approve)
	e.PATCH("/class/deny/:id", h.Class.Deny)
	e.PATCH("/class/feedback/:id", h.Class.Feedback)

	// selected (cart) apis
	e.GET("/selected", h.Selected.List, authed)
	e.GET("/picked/:id", h.Selected.GetPicked)
	e.POST("/selected", h.Selected.Add)
	e.DELETE("/selected/:id", h.Selected.Remove)

	// payment apis
	e.POST("/create-payment-intent", h.Payment.CreateIntent, authed)
	e.POST("/payments", h.Payment.Finalize, authed)
	e.GET("/payments", h.Payment.History, authed)
	e.GET("/popular", h.Payment.Popular, cached)

	// user apis
	e.GET("/users", h.User.GetAll, authed, admin)
	e.POST("/users", h.User.Create)
	e.DELETE("/users/:id", h.User.Delete)
	e.GET("/users/admin/:email", h.User.IsAdmin)
	e.PATCH("/users/admin/:id", h.User.MakeAdmin)
	e.GET("/users/instructor/:email", h.User.IsInstructor)
	e.PATCH("/users/instructor/:id", h.User.MakeInstructor)
	e.GET("/users/ins", h.User.Instructors)
	e.GET("/users/student", h.User.Students)
}
