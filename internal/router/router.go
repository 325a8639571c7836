package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	Register(c *ginext.Context)
	RegisterBulk(c *ginext.Context)
	GetRegistration(c *ginext.Context)
	RegistrationQR(c *ginext.Context)

	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	ChangePassword(c *ginext.Context)

	AdminListEvents(c *ginext.Context)
	AdminCreateEvent(c *ginext.Context)
	AdminGetEvent(c *ginext.Context)
	AdminUpdateEvent(c *ginext.Context)
	AdminDeleteEvent(c *ginext.Context)

	AdminListRegistrations(c *ginext.Context)
	AdminExportRegistrations(c *ginext.Context)
	AdminDeleteRegistration(c *ginext.Context)
}

// InitRouter wires the public API and the admin API; requireAdmin guards
// every admin route except login and logout.
func InitRouter(mode string, h Handler, requireAdmin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/events", h.ListEvents)

		// Registration
		api.POST("/register", h.Register)
		api.POST("/register/bulk", h.RegisterBulk)
		api.GET("/registration/:id", h.GetRegistration)
		api.GET("/registration/:id/qr", h.RegistrationQR)

		// Admin session
		api.POST("/admin/login", h.Login)
		api.POST("/admin/logout", h.Logout)
	}

	admin := api.Group("/admin", requireAdmin)
	{
		admin.POST("/change-password", h.ChangePassword)

		admin.GET("/events", h.AdminListEvents)
		admin.POST("/events", h.AdminCreateEvent)
		admin.GET("/events/:id", h.AdminGetEvent)
		admin.PUT("/events/:id", h.AdminUpdateEvent)
		admin.DELETE("/events/:id", h.AdminDeleteEvent)

		admin.GET("/registrations", h.AdminListRegistrations)
		admin.GET("/registrations/export", h.AdminExportRegistrations)
		admin.DELETE("/registrations/:id", h.AdminDeleteRegistration)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
