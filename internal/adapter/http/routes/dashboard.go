package routes

import (
	"net/http"

	"acm_e_letras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBoard     = "/board"
	PathDeals     = "/deals"
	PathStatuses  = "/statuses"
	PathMaterials = "/materials"
	PathQuotes    = "/quotes"
	PathBackup    = "/backup"
	PathSettings  = "/settings"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addDashboardRoutes(rg *gin.RouterGroup, board *handlers.BoardHandler, deal *handlers.DealHandler, status *handlers.StatusHandler) {
	rg.GET(PathBoard, board.GetBoard)

	deals := rg.Group(PathDeals)
	{
		deals.GET("", deal.ListDeals)
		deals.POST("", deal.CreateDeal)
		deals.PATCH("/:id/status", deal.MoveDeal)
		deals.DELETE("/:id", deal.DeleteDeal)
	}

	statuses := rg.Group(PathStatuses)
	{
		statuses.GET("", status.ListStatuses)
		statuses.POST("", status.CreateStatus)
		statuses.PATCH("/:id", status.UpdateStatus)
		statuses.DELETE("/:id", status.DeleteStatus)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, material *handlers.MaterialHandler) {
	materials := rg.Group(PathMaterials)
	{
		materials.GET("", material.ListMaterials)
		materials.POST("", material.CreateMaterial)
		materials.PATCH("/:id", material.UpdateMaterial)
		materials.DELETE("/:id", material.DeleteMaterial)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quote *handlers.QuoteHandler, draft *handlers.DraftHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quote.ListQuotes)
		quotes.POST("", quote.CreateQuote)
		quotes.GET("/:id", quote.GetQuote)
		quotes.DELETE("/:id", quote.DeleteQuote)
		quotes.GET("/:id/pdf", quote.ExportQuotePDF)

		quotes.POST("/:id/draft", draft.BeginDraft)
		quotes.GET("/:id/draft", draft.GetDraft)
		quotes.PATCH("/:id/draft", draft.PatchDraft)
		quotes.DELETE("/:id/draft", draft.CancelDraft)
		quotes.POST("/:id/draft/save", draft.SaveDraft)
		quotes.POST("/:id/draft/items", draft.AddDraftItem)
		quotes.PATCH("/:id/draft/items/:itemId", draft.UpdateDraftItem)
		quotes.DELETE("/:id/draft/items/:itemId", draft.RemoveDraftItem)
	}
}

func addBackupRoutes(rg *gin.RouterGroup, backup *handlers.BackupHandler) {
	b := rg.Group(PathBackup)
	{
		b.GET("/export", backup.ExportBackup)
		b.POST("/import", backup.ImportBackup)
		b.POST("/reset", backup.ResetData)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", backup.GetSettings)
		settings.POST("/logo", backup.UploadLogo)
		settings.DELETE("/logo", backup.DeleteLogo)
	}
}
