package server

import (
	auction "auction-backend/internal/auctionService"
	handler "auction-backend/services/auction/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(corsMiddleware())        // browser clients call from any origin
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	router.GET("/", auctionHandler.RootHandler)
	router.GET("/test", auctionHandler.HealthHandler)
	router.POST("/max-bid", auctionHandler.MaxBidHandler)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id/teams", auctionHandler.GetTeamsHandler)
		auctions.GET("/:auction_id/overview", auctionHandler.OverviewHandler)
		auctions.POST("/:auction_id/pick", auctionHandler.DrawPlayerHandler)
		auctions.POST("/:auction_id/close-bid", auctionHandler.CloseBidHandler)
	}

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	})
}
