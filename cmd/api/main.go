package main

import (
	"acm_e_letras/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ACM e Letras Dashboard API
// @version         1.0
// @description     Sales pipeline, materials catalog and quote management for a signage shop.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
