package main

import (
	"flag"
	"log"

	"fixstore/config"
	"fixstore/controllers"
	"fixstore/db"
	"fixstore/router"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.json", "caminho do arquivo de configuração")
	flag.Parse()

	cfg := config.Get(*configPath)

	db.SetConfigurations(cfg)
	controllers.SetConfigurations(cfg)

	database, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("fixstore listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
