package routes

import (
	"disena_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDesignSessions = "/design/sessions"
)

func addDesignRoutes(rg *gin.RouterGroup, sessionHandler *handlers.DesignSessionHandler) {
	sessions := rg.Group(PathDesignSessions)
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("/:session_id", sessionHandler.GetSession)
		sessions.POST("/:session_id/selection/toggle", sessionHandler.ToggleSelection)
		sessions.POST("/:session_id/selection/remove", sessionHandler.RemoveSelection)
		sessions.PATCH("/:session_id/budget", sessionHandler.SetBudget)
		sessions.POST("/:session_id/quote", sessionHandler.RequestQuote)
		sessions.POST("/:session_id/quote/send", sessionHandler.SendQuote)
		sessions.POST("/:session_id/suggestions/accept", sessionHandler.AcceptSuggestion)
		sessions.POST("/:session_id/suggestions/dismiss", sessionHandler.DismissSuggestions)
		sessions.POST("/:session_id/reopen", sessionHandler.ReopenSession)
	}
}
