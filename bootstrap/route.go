package bootstrap

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"casamento/app/http/middlewares"
	"casamento/routes"
)

// SetupRoute installs the global middlewares, the API routes and the 404
// handler.
func SetupRoute(router *gin.Engine) {
	registerGlobalMiddleWare(router)

	routes.RegisterAPIRoutes(router)

	setup404Handler(router)
}

func registerGlobalMiddleWare(router *gin.Engine) {
	router.Use(
		middlewares.Logger(),
		middlewares.Recovery(),
	)
}

func setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		acceptString := c.Request.Header.Get("Accept")

		if strings.Contains(acceptString, "text/html") {
			c.String(http.StatusNotFound, "Página não encontrada")
		} else {
			c.JSON(http.StatusNotFound, gin.H{
				"error_code":    404,
				"error_message": "Rota não definida, confira a URL e o método da requisição.",
			})
		}
	})
}
