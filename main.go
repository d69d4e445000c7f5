package main

import (
	"fmt"

	"github.com/ChPurna2003/CravingConnect/configs"
	"github.com/ChPurna2003/CravingConnect/middlewares"
	"github.com/ChPurna2003/CravingConnect/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.Open(cfg.DBSource)
	if err != nil {
		logrus.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		logrus.Fatalf("setup database failed: %v", err)
	}

	if cfg.SeedDemo {
		if err := configs.Seed(db); err != nil {
			logrus.Fatalf("seed failed: %v", err)
		}
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("server running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
