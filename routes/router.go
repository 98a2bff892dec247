package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/winelabelmaker/winelabel-go/handlers"
	"github.com/winelabelmaker/winelabel-go/middleware"
)

// RegisterRoutes wires every endpoint onto the engine. Role gates sit at the
// route level; ownership checks live in the services.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	users := r.Group("/api/AspNetUser")
	{
		users.POST("/Register", h.User.Register)
		users.POST("/Login", h.User.Login)
	}

	requests := r.Group("/api/Request")
	requests.Use(middleware.JWTAuthMiddleware())
	{
		requests.GET("/allRequest", h.Request.GetAllRequests)
		requests.GET("/requestById/:id", h.Request.GetRequestByID)
		requests.POST("/createRequest", middleware.RequireRole("User"), h.Request.CreateRequest)
		requests.PUT("/updateClient/:id", middleware.RequireRole("User"), h.Request.UpdateClient)
		requests.PUT("/updateAdmin/:id", middleware.RequireRole("Admin"), h.Request.UpdateAdmin)
		requests.DELETE("/deleteRequest/:id", h.Request.DeleteRequest)
		requests.GET("/searchRequest/:term", middleware.RequireRole("Admin"), h.Request.SearchRequests)
	}

	emails := r.Group("/api/Email")
	emails.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("Admin"))
	{
		emails.POST("/completed", h.Email.SendCompleted)
		emails.POST("/sendQuote", h.Email.SendQuote)
		emails.POST("/uploadLabel", h.Email.UploadLabel)
	}

	messages := r.Group("/api/Message")
	messages.Use(middleware.JWTAuthMiddleware())
	{
		messages.GET("/:requestId", h.Message.GetMessages)
		messages.POST("/:requestId", h.Message.CreateMessage)
	}

	audit := r.Group("/api/Audit")
	audit.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("Admin"))
	{
		audit.GET("/logs", h.Audit.GetAuditLogs)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
