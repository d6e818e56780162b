package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"serviapp/internal/app/config"
	"serviapp/internal/app/handler"
	"serviapp/internal/app/middleware"
)

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Handler    *handler.APIHandler
	Middleware *middleware.AuthMiddleware
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.APIHandler, m *middleware.AuthMiddleware) *Application {
	return &Application{
		Config:     c,
		Router:     r,
		Handler:    h,
		Middleware: m,
	}
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	// Registramos las rutas del API con su autorización
	a.Handler.RegisterAPIRoutes(a.Router, a.Middleware)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
