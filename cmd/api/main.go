package main

import (
	_ "obradash/docs"
	"obradash/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Obradash API
// @version         1.0
// @description     Dashboard BFF for constructoras: obras, residentes, gastos, reports and subscription payments.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SessionID
// @in header
// @name X-Session-ID
// @description Session id returned by /auth/login. The session_id cookie is accepted too.

func main() {
	routes.Run()
}
