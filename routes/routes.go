package routes

import (
	"Quina/controllers"
	"Quina/middleware"
	"Quina/services/game"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, svc *game.Service) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	// Identity collaborator: opaque user ids for the game engine
	api.POST("/signup", controllers.SignUp(db))
	api.POST("/login", controllers.Login(db))
	api.GET("/allusers", controllers.GetAllUsers(db))

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.DELETE("/logout", controllers.Logout)
		authentication.DELETE("/me", controllers.DeleteAccount(db))
	}

	rooms := api.Group("/api/rooms")
	{
		rooms.POST("", controllers.CreateRoom(svc))
		rooms.GET("", controllers.GetAllRooms(svc))
		rooms.GET("/user/:userId", controllers.GetUserRooms(svc))
		rooms.GET("/:roomId", controllers.GetRoom(svc))
		rooms.PUT("/:roomId", controllers.UpdateRoomStatus(svc))
		rooms.DELETE("/:roomId", controllers.DeleteRoom(svc))
		rooms.PUT("/:roomId/turn", controllers.UpdateTurn(svc))
	}

	players := api.Group("/api/players")
	{
		players.POST("/join", controllers.JoinRoom(svc))
		players.POST("/leave", controllers.LeaveRoom(svc))
		players.GET("/room/:roomId", controllers.GetPlayersInRoom(svc))
	}

	tickets := api.Group("/api/tickets")
	{
		tickets.POST("/generate", controllers.GenerateTicket(svc))
		tickets.GET("/:playerId", controllers.GetTicket(svc))
	}

	draw := api.Group("/api/draw")
	{
		draw.POST("", controllers.DrawNumber(svc))
		draw.GET("/:roomId", controllers.GetDrawnNumbers(svc))
		draw.GET("/:roomId/latest", controllers.GetLatestDraw(svc))
	}

	gameGroup := api.Group("/api/game")
	{
		gameGroup.POST("/check-winner", controllers.CheckWinner(svc))
		gameGroup.GET("/:roomId/winner", controllers.GetWinner(svc))
		gameGroup.POST("/restart", controllers.RestartGame(svc))
	}
}
