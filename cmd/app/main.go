package main

import (
	"gearbase/config"
	"gearbase/di"
	"gearbase/shared/logger"

	_ "gearbase/docs"
)

// @title Gearbase API
// @version 1.0
// @description Guitar and gear catalog service.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
