package main

import (
	"backend/internal/api"
	"log"
)

// @title Partner Console API
// @version 1.0
// @description REST API консоли управления партнёрами, клиентами, лицензиями и устройствами

// @host localhost:5000
// @BasePath /
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
