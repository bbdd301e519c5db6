package config

import (
	"log"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	APIEnv          string `envconfig:"API_ENV" default:"local"`
	HTTPAddr        string `envconfig:"HTTP_ADDR" default:":8181"`
	DBPath          string `envconfig:"DB_PATH" default:"reservas.db"`
	UpstreamBaseURL string `envconfig:"UPSTREAM_BASE_URL" default:"http://localhost:9000"`
}

var (
	app  App
	once sync.Once
)

// Get loads the process configuration from the environment exactly once.
func Get() App {
	once.Do(func() {
		if err := envconfig.Process("", &app); err != nil {
			log.Fatalf("Error loading config: %s\n", err.Error())
		}
	})
	return app
}
