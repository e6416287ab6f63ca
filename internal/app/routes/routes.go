package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/controllers"
	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	propertyController *controllers.PropertyController,
	clientController *controllers.ClientController,
	messageController *controllers.MessageController,
	appointmentController *controllers.AppointmentController,
	activityController *controllers.ActivityController,
	dashboardController *controllers.DashboardController,
	themeController *controllers.ThemeController,
	contentController *controllers.ContentController,
	communityController *controllers.CommunityController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		properties := authenticated.Group("/properties")
		{
			properties.GET("", propertyController.ListProperties)
			properties.GET("/:id", propertyController.GetPropertyByID)

			// Mutating listing routes require the realtor role
			propertiesRealtorProtected := properties.Group("")
			propertiesRealtorProtected.Use(authMiddleware.RoleRequired(models.RoleRealtor))
			{
				propertiesRealtorProtected.POST("", propertyController.CreateProperty)
				// PUT and PATCH share the merge semantics.
				propertiesRealtorProtected.PUT("/:id", propertyController.UpdateProperty)
				propertiesRealtorProtected.PATCH("/:id", propertyController.UpdateProperty)
				propertiesRealtorProtected.DELETE("/:id", propertyController.DeleteProperty)
			}
		}

		clients := authenticated.Group("/clients")
		{
			clients.GET("", clientController.ListClients)

			clientsRealtorProtected := clients.Group("")
			clientsRealtorProtected.Use(authMiddleware.RoleRequired(models.RoleRealtor))
			{
				clientsRealtorProtected.POST("", clientController.CreateClient)
			}
		}

		messages := authenticated.Group("/messages")
		{
			messages.POST("", messageController.SendMessage)
			messages.GET("/conversations", messageController.Conversations)
			messages.GET("/:counterpartId", messageController.History)
			messages.PUT("/:counterpartId/read", messageController.MarkConversationRead)
		}

		appointments := authenticated.Group("/appointments")
		{
			appointments.GET("", appointmentController.ListAppointments)
			appointments.GET("/today", appointmentController.TodaysAppointments)
			appointments.POST("", appointmentController.CreateAppointment)
		}

		authenticated.GET("/activities", activityController.RecentActivities)
		authenticated.GET("/dashboard", dashboardController.Dashboard)

		themeSettings := authenticated.Group("/theme-settings")
		{
			themeSettings.GET("/:scopeId", themeController.GetThemeSettings)
			themeSettings.PUT("/:scopeId", themeController.UpdateThemeSettings)
		}

		websiteThemes := authenticated.Group("/website-themes")
		{
			websiteThemes.GET("", themeController.ListWebsiteThemes)
			websiteThemes.POST("", themeController.CreateWebsiteTheme)
			websiteThemes.GET("/active", themeController.GetActiveWebsiteTheme)
			websiteThemes.PUT("/:id/activate", themeController.ActivateWebsiteTheme)
		}

		pages := authenticated.Group("/pages")
		{
			pages.GET("/:pageName/content", contentController.GetPageContent)
			pages.PUT("/content", contentController.UpsertPageContent)
			pages.POST("/content", contentController.UpsertPageContent)
		}

		authenticated.GET("/communities", communityController.ListCommunities)
	}
}
