package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/C317-Irineu/elodrinks-api/docs" // swag-generated spec
	"github.com/C317-Irineu/elodrinks-api/internal/adapter/http/handlers"
	"github.com/C317-Irineu/elodrinks-api/internal/adapter/persistence/repository"
	"github.com/C317-Irineu/elodrinks-api/internal/infrastructure/database"
	"github.com/C317-Irineu/elodrinks-api/internal/infrastructure/mailer"
	"github.com/C317-Irineu/elodrinks-api/internal/infrastructure/payments"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(port()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var mailSender interfaces.IMailSender
	smtpMailer, err := mailer.NewSMTPMailerFromEnv()
	if err != nil {
		log.Printf("SMTP mailer not configured: %v", err)
	} else {
		mailSender = smtpMailer
	}

	quotationUseCase := usecase.NewQuotationEmailUseCase(budgetUseCase, paymentGateway, mailSender)
	webhookUseCase := usecase.NewPaymentWebhookUseCase(budgetUseCase, paymentGateway)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	quotationHandler := handlers.NewQuotationEmailHandler(quotationUseCase)
	webhookHandler := handlers.NewPaymentWebhookHandler(webhookUseCase)

	root := router.Group("")
	addPingRoutes(root)
	addBudgetRoutes(root, budgetHandler, quotationHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func port() int {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			return p
		}
		log.Printf("Invalid PORT %q, falling back to %d", v, defaultPort)
	}
	return defaultPort
}
