// Package routes registers the API surface.
package routes

import (
	"github.com/gin-gonic/gin"

	"casamento/app/http/controllers/api/v1/auth"
	"casamento/app/http/controllers/api/v1/confirmation"
	"casamento/app/http/controllers/api/v1/gifts"
	"casamento/app/http/controllers/api/v1/guests"
	"casamento/app/http/controllers/api/v1/messages"
	"casamento/app/http/controllers/api/v1/pixkeys"
	"casamento/app/http/controllers/api/v1/users"
	"casamento/app/http/middlewares"
)

// Rate limits per route group. The public confirmation and guestbook
// endpoints face the open internet; the back-office sits behind auth and
// gets a looser budget.
const (
	GlobalRateLimit       = "10000-H"
	ConfirmationRateLimit = "60-M"
	GuestbookWriteLimit   = "10-M"
	LoginRateLimit        = "10-M"
)

// RegisterAPIRoutes wires every endpoint under /v1.
func RegisterAPIRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")

	v1.Use(
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
	)

	registerConfirmationRoutes(v1)
	registerGiftRoutes(v1)
	registerMessageRoutes(v1)
	registerAuthRoutes(v1)
	registerGuestRoutes(v1)
	registerPixKeyRoutes(v1)
	registerUserRoutes(v1)
}

// registerConfirmationRoutes is the invitee-facing RSVP flow. No auth: the
// token or code is the credential.
func registerConfirmationRoutes(v1 *gin.RouterGroup) {
	cc := confirmation.NewConfirmationController()

	grp := v1.Group("/confirmacao", middlewares.LimitIP(ConfirmationRateLimit))
	{
		grp.GET("/resolve", cc.Resolve)
		grp.GET("/code/:code", cc.GetByCode)
		grp.PUT("/code/:code", cc.UpdateByCode)
		grp.GET("/:token", cc.GetByToken)
		grp.PUT("/:token", cc.UpdateByToken)
	}
}

func registerGiftRoutes(v1 *gin.RouterGroup) {
	gc := gifts.NewGiftController()

	v1.GET("/gifts", gc.Index)
	v1.GET("/gifts/:id/pix", gc.Pix)
	v1.GET("/gifts/:id/qrcode", gc.QRCode)

	admin := v1.Group("/gifts", middlewares.AuthSession(), middlewares.AuthAdmin())
	{
		admin.POST("", gc.Store)
		admin.PUT("/:id", gc.Update)
		admin.DELETE("/:id", gc.Destroy)
	}
}

func registerMessageRoutes(v1 *gin.RouterGroup) {
	mc := messages.NewMessageController()

	v1.GET("/messages", mc.Index)
	v1.POST("/messages", middlewares.LimitIP(GuestbookWriteLimit), mc.Store)
}

func registerAuthRoutes(v1 *gin.RouterGroup) {
	ac := auth.NewAuthController()

	grp := v1.Group("/auth")
	{
		grp.POST("/login", middlewares.LimitIP(LoginRateLimit), ac.Login)
		grp.POST("/oauth/callback", middlewares.LimitIP(LoginRateLimit), ac.OAuthCallback)
		grp.DELETE("/logout", middlewares.AuthSession(), ac.Logout)
		grp.GET("/me", middlewares.AuthSession(), ac.Me)
	}
}

// registerGuestRoutes is the back-office guest list. Planners can read and
// confirm; only admins change the list itself.
func registerGuestRoutes(v1 *gin.RouterGroup) {
	gc := guests.NewGuestController()
	rc := guests.NewReportController()

	staff := v1.Group("/guests", middlewares.AuthSession(), middlewares.AuthAdminOrPlanner())
	{
		staff.GET("", gc.Index)
		staff.GET("/stats", rc.Stats)
		staff.GET("/report", rc.Export)
		staff.PUT("/:id/confirmation", gc.SetPersonConfirmation)
	}

	admin := v1.Group("/guests", middlewares.AuthSession(), middlewares.AuthAdmin())
	{
		admin.POST("", gc.Store)
		admin.POST("/bulk-import", gc.BulkImport)
		admin.PUT("/:id", gc.Update)
		admin.DELETE("/:id", gc.Destroy)
	}
}

func registerPixKeyRoutes(v1 *gin.RouterGroup) {
	pc := pixkeys.NewPixKeyController()

	staff := v1.Group("/pixkeys", middlewares.AuthSession(), middlewares.AuthAdminOrPlanner())
	{
		staff.GET("", pc.Index)
	}

	admin := v1.Group("/pixkeys", middlewares.AuthSession(), middlewares.AuthAdmin())
	{
		admin.POST("", pc.Store)
		admin.PUT("/:id", pc.Update)
		admin.DELETE("/:id", pc.Destroy)
	}
}

func registerUserRoutes(v1 *gin.RouterGroup) {
	uc := users.NewUserController()

	admin := v1.Group("/users", middlewares.AuthSession(), middlewares.AuthAdmin())
	{
		admin.GET("", uc.Index)
		admin.POST("", uc.Store)
		admin.PUT("/:id", uc.Update)
		admin.DELETE("/:id", uc.Destroy)
	}
}
