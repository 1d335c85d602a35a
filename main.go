package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"pipecalc/handler"
	"pipecalc/model"
	"pipecalc/pkg/conf"
	"pipecalc/pkg/logger"
	"pipecalc/service"
)

var db *gorm.DB

func main() {
	conf.InitConf("./pipecalc.yaml")
	logger.InitLogger("pipecalc")

	var err error
	dsn := conf.Conf.GetString("mysql.dsn")
	db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormLogger.Config{
			SlowThreshold: time.Second,
			LogLevel:      gormLogger.Warn,
			Colorful:      true,
		}),
	})
	if err != nil {
		logger.Logger.Errorf("failed to connect database: %v", err)
		return
	}

	if replica := conf.Conf.GetString("mysql.replicaDsn"); replica != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{mysql.Open(replica)},
		}))
		if err != nil {
			logger.Logger.Errorf("failed to register read replica: %v", err)
			return
		}
	}

	err = db.AutoMigrate(
		&model.TerrainProfile{},
		&model.TerrainPoint{},
		&model.ComputationRun{},
		&model.PumpPlacement{},
	)
	if err != nil {
		logger.Logger.Errorf("failed to migrate schema: %v", err)
		return
	}

	svc := service.NewService(db)
	r := SetupRouter(svc)
	_ = r.Run(conf.Conf.GetString("server.addr"))
}

func SetupRouter(svc *service.Service) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{conf.Conf.GetString("frontend.host")}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	h := handler.NewHandler(svc)
	api := r.Group("/v1")
	{
		api.POST("/terrain/import", h.ImportTerrain)
		api.GET("/terrain/list", h.GetTerrainList)
		api.POST("/profile/forward", h.ComputeForward)
		api.POST("/profile/backward", h.ComputeBackward)
		api.POST("/profile/boundary", h.ComputeBoundary)
		api.POST("/pipe/endstate", h.ComputeEndState)
		api.GET("/run/list", h.GetRunHistory)
		api.GET("/run/:id/export", h.ExportRun)
	}

	return r
}
