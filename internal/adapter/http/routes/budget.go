package routes

import (
	"github.com/C317-Irineu/elodrinks-api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBudget = "/budget"

func addBudgetRoutes(
	rg *gin.RouterGroup,
	budgetHandler *handlers.BudgetHandler,
	quotationHandler *handlers.QuotationEmailHandler,
	webhookHandler *handlers.PaymentWebhookHandler,
) {
	budget := rg.Group(PathBudget)
	{
		budget.POST("", budgetHandler.CreateBudget)
		budget.PATCH("/status", budgetHandler.UpdateBudgetStatus)
		budget.GET("", budgetHandler.ListBudgets)
		budget.GET("/pending", budgetHandler.ListPendingBudgets)

		budget.POST("/email/send", quotationHandler.SendQuotationEmail)
		budget.POST("/webhook", webhookHandler.HandleNotification)

		budget.GET("/:id", budgetHandler.GetBudgetByID)
	}
}
