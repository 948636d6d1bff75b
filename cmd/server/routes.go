package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"parts-market.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	userHandler      *handlers.UserHandler
	partHandler      *handlers.PartHandler
	inquiryHandler   *handlers.InquiryHandler
	financingHandler *handlers.FinancingHandler
	sessionHandler   *handlers.SessionHandler
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", d.userHandler.CreateUser)
			users.GET("", d.userHandler.ListUsers)
		}

		parts := v1.Group("/parts")
		{
			parts.POST("", d.partHandler.CreatePart)
			parts.GET("", d.partHandler.ListParts)
			parts.GET("/search", d.partHandler.SearchParts)
			parts.PATCH("/:id", d.partHandler.UpdatePart)
			parts.POST("/:id/images", d.partHandler.CreatePartImage)
			parts.GET("/:id/images", d.partHandler.ListPartImages)
		}

		inquiries := v1.Group("/inquiries")
		{
			inquiries.POST("", d.inquiryHandler.CreateInquiry)
			inquiries.GET("/buyer/:userId", d.inquiryHandler.ListBuyerInquiries)
			inquiries.GET("/seller/:userId", d.inquiryHandler.ListSellerInquiries)
			inquiries.PATCH("/:id/status", d.inquiryHandler.UpdateInquiryStatus)
		}

		options := v1.Group("/financing-options")
		{
			options.POST("", d.financingHandler.CreateOption)
			options.GET("", d.financingHandler.ListOptions)
			options.GET("/:id/estimate", d.financingHandler.EstimatePayment)
		}

		applications := v1.Group("/financing-applications")
		{
			applications.POST("", d.financingHandler.CreateApplication)
			applications.GET("", d.financingHandler.ListApplications)
			applications.PATCH("/:id/status", d.financingHandler.UpdateApplicationStatus)
		}

		session := v1.Group("/session")
		{
			session.PUT("/current-user", d.sessionHandler.SetCurrentUser)
			session.GET("/current-user", d.sessionHandler.GetCurrentUser)
		}
	}
}
