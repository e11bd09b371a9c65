package internal

import (
	"net/http"

	"msd/internal/controllers"
	"msd/internal/providers"
	"msd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/chat", http.HandlerFunc(apiController.GetChatMessages))
	routers.Post("/chat", http.HandlerFunc(apiController.SendChatMessage))
	routers.Get("/participants", http.HandlerFunc(apiController.GetParticipants))
	routers.Post("/participants/status", http.HandlerFunc(apiController.UpdateParticipantStatus))
	routers.Get("/notes", http.HandlerFunc(apiController.GetPersonalNotes))
	routers.Post("/notes", http.HandlerFunc(apiController.SavePersonalNote))
	routers.Get("/notes/shared", http.HandlerFunc(apiController.GetSharedNotes))
	routers.Post("/notes/shared", http.HandlerFunc(apiController.ShareNote))
	routers.Get("/agenda", http.HandlerFunc(apiController.GetAgenda))
	routers.Post("/agenda", http.HandlerFunc(apiController.SaveAgenda))
	routers.Get("/tasks", http.HandlerFunc(apiController.GetTasks))
	routers.Post("/tasks", http.HandlerFunc(apiController.SaveTasks))
	routers.Get("/resources", http.HandlerFunc(apiController.GetResources))
	routers.Post("/resources", http.HandlerFunc(apiController.AddResource))
	routers.Get("/recordings", http.HandlerFunc(apiController.GetRecordings))
	routers.Get("/analytics", http.HandlerFunc(apiController.GetAnalytics))
	routers.Get("/quote", http.HandlerFunc(apiController.GetQuote))
	routers.Post("/clear", http.HandlerFunc(apiController.ClearMeeting))
	return routers
}
