package main

import (
	"hms/config"
	"hms/di"
	"hms/shared/logger"
)

// @title Hospital Management System API
// @version 1.0
// @description Rooms, appointments, billing, pharmacy and clinical notes for a single hospital.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
