package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"casamento/bootstrap"
	btsConfig "casamento/config"
	"casamento/pkg/config"
)

func init() {
	// Register the configuration sections under config/
	btsConfig.Initialize()
}

// App wraps the HTTP server for graceful shutdown.
type App struct {
	server *http.Server
}

func main() {
	env := parseFlags()

	if err := setupApplication(env); err != nil {
		log.Fatalf("application setup failed: %v", err)
	}

	router := setupServer()

	app := &App{
		server: &http.Server{
			Addr:    ":" + config.Get("app.port"),
			Handler: router,
		},
	}

	app.start()
}

// parseFlags reads the --env flag; --env=testing loads .env.testing.
func parseFlags() string {
	var env string
	flag.StringVar(&env, "env", "", "load a suffixed .env file, e.g. --env=testing loads .env.testing")
	flag.Parse()
	return env
}

// setupApplication initializes configuration, logging, the database, Redis
// and the optional social-login client, in that order.
func setupApplication(env string) error {
	config.InitConfig(env)

	bootstrap.SetupLogger()

	bootstrap.SetupDB()

	bootstrap.SetupRedis()

	bootstrap.SetupOAuth()

	return nil
}

func setupServer() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	bootstrap.SetupRoute(router)

	return router
}

// start runs the server and shuts it down gracefully on SIGINT/SIGTERM.
func (a *App) start() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on %s\n", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
