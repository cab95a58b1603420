package api

import (
	"net/http"

	callsHandler "github.com/johnschneiider/Noxus/internal/calls/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router         *gin.RouterGroup
	callsHandler   callsHandler.Handler
	metricsHandler http.Handler
}

func New(router *gin.RouterGroup, callsHandler callsHandler.Handler, metricsHandler http.Handler) API {
	return API{
		router:         router,
		callsHandler:   callsHandler,
		metricsHandler: metricsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	a.router.GET("/", a.callsHandler.HandleListCalls)
	a.router.POST("/iniciar/", a.callsHandler.HandleStartCall)

	// Twilio may invoke the turn callback with either method.
	a.router.POST("/webhook/", a.callsHandler.HandleWebhook)
	a.router.GET("/webhook/", a.callsHandler.HandleWebhook)
	a.router.GET("/webhook-test/", a.callsHandler.HandleWebhookTest)
	a.router.POST("/webhook-test/", a.callsHandler.HandleWebhookTest)
	a.router.POST("/webhook-status/", a.callsHandler.HandleWebhookStatus)

	a.router.GET("/llamada/:id/", a.callsHandler.HandleGetCall)

	a.router.GET("/metrics", gin.WrapH(a.metricsHandler))
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
