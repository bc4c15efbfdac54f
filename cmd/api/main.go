package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberdesk/barberdesk-api/internal/config"
	dbpkg "github.com/barberdesk/barberdesk-api/internal/db"
	"github.com/barberdesk/barberdesk-api/internal/logging"
	"github.com/barberdesk/barberdesk-api/internal/middleware"
	"github.com/barberdesk/barberdesk-api/internal/routes"
	"github.com/barberdesk/barberdesk-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	timezone.SetDefault(cfg.Timezone)

	log, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)
	defer dbpkg.Close(db, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
