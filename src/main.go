package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"

	"rbs/src/config"
	"rbs/src/db"
	"rbs/src/lib"
	"rbs/src/models"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func initDb() *gorm.DB {
	d := db.GetDb()
	err := d.AutoMigrate(
		&models.Recordatorio{},
		&models.Reserva{},
		&models.Usuario{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	return d
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func setupRouter(cfg config.App) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API de reservas y recordatorios"})
	})

	upstream := lib.NewUpstream(cfg.UpstreamBaseURL)

	root := router.Group("")
	reminderHandlers(root)
	reservationHandlers(root)
	userHandlers(root)
	scheduleHandlers(root, upstream)

	return router
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "" || apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			log.Printf("No .env file loaded: %s\n", err.Error())
		}
	}
	initLogger()

	cfg := config.Get()
	initDb()

	router := setupRouter(cfg)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Error starting server: %s\n", err.Error())
	}
}
