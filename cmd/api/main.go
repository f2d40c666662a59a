package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"news-cms/cmd/api/auth"
	"news-cms/cmd/api/router"
	"news-cms/cmd/internal/logger"
	"news-cms/config"
	"news-cms/db"
	_ "news-cms/docs" // swag will generate this package
)

// @title           News CMS API
// @version         1.0
// @description     Bilingual news and article management API
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		logger.Init(lvl)
	} else {
		logger.Init(config.GetConfig().Logging.Level)
	}

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(jwtManager)

	addr := config.GetConfig().Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	logger.Log.Infof("listening on %s", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
