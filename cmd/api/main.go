package main

import (
	_ "pesapal_gateway/docs"
	"pesapal_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PesaPal Gateway API
// @version         1.0
// @description     Submits PesaPal payment orders, tracks their status through polling and IPN calls, and requests refunds.
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
