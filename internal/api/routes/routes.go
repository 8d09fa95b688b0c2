package routes

import (
	"github.com/foliochat/foliochat/internal/api/handlers"
	"github.com/foliochat/foliochat/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	JWTSecret string

	Auth   *handlers.AuthHandler
	Chat   *handlers.ChatHandler
	Deploy *handlers.DeployHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/api/auth/signup", d.Auth.Signup)
	r.POST("/api/auth/login", d.Auth.Login)

	// Protected routes (JWT)
	auth := r.Group("/api")
	auth.Use(middleware.JWTAuth(d.JWTSecret))

	auth.GET("/auth/user", d.Auth.Me)

	auth.POST("/chats", d.Chat.Create)
	auth.GET("/chats", d.Chat.List)
	auth.POST("/chats/:chat_id/messages", d.Chat.SendMessage)

	auth.POST("/deploy", d.Deploy.Deploy)
}
