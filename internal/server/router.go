package server

import (
	"net/http"

	catalog "tender-board/internal/catalogService"
	ledger "tender-board/internal/ledgerService"
	review "tender-board/internal/reviewService"
	handler "tender-board/services/tender/handler"
	"tender-board/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(catalogService *catalog.CatalogService, ledgerService *ledger.LedgerService, reviewService *review.ReviewService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/ping", func(c *gin.Context) {
		utils.JSONMessage(c, http.StatusOK, "pong")
	})

	catalogHandler := handler.NewCatalogHandler(catalogService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	tenders := router.Group("/tenders")
	{
		tenders.GET("", catalogHandler.ListTendersHandler)
		tenders.POST("", catalogHandler.CreateTenderHandler)
		tenders.PUT("/:tender_id", catalogHandler.UpdateTenderHandler)
		tenders.DELETE("/:tender_id", catalogHandler.DeleteTenderHandler)
	}

	ledgerGroup := router.Group("/ledger", BidderIdentityMiddleware)
	{
		ledgerGroup.GET("/tenders", ledgerHandler.ListTendersHandler)
		ledgerGroup.POST("/bids", ledgerHandler.SubmitBidHandler)
		ledgerGroup.GET("/notifications", ledgerHandler.NotificationsHandler)
	}

	reviewGroup := router.Group("/review")
	{
		reviewGroup.GET("/bids", reviewHandler.ListBidsHandler)
		reviewGroup.GET("/bids/filter", reviewHandler.FilterBidsHandler)
		reviewGroup.DELETE("/bids/:bid_id", reviewHandler.DeleteBidHandler)
	}

	return router
}
