package main

import (
	_ "github.com/C317-Irineu/elodrinks-api/docs"
	"github.com/C317-Irineu/elodrinks-api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           EloDrinks Budget API
// @version         1.0
// @description     Catering budget service (quotations + Mercado Pago payments) backed by DynamoDB.

// @contact.name   EloDrinks
// @contact.email  contato@elodrinks.com

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
