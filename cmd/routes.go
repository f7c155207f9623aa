package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"traveleon/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleBuyer))
	sellerAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleSeller))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/sign_out", authMiddleware.ThenFunc(app.userHandler.SignOut))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user/:id", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))
	mux.Post("/user/:id/avatar", authMiddleware.ThenFunc(app.userHandler.UploadAvatar))

	// Tourist locations
	mux.Get("/locations", authMiddleware.ThenFunc(app.locationHandler.GetLocations))
	mux.Get("/locations/:id", authMiddleware.ThenFunc(app.locationHandler.GetLocationByID))

	// Listings
	mux.Get("/accommodations", authMiddleware.ThenFunc(app.accommodationHandler.GetAccommodations))
	mux.Post("/accommodations", sellerAuthMiddleware.ThenFunc(app.accommodationHandler.CreateAccommodation))
	mux.Get("/vehicles", authMiddleware.ThenFunc(app.vehicleHandler.GetVehicles))
	mux.Post("/vehicles", sellerAuthMiddleware.ThenFunc(app.vehicleHandler.CreateVehicle))
	mux.Get("/tour-guides", authMiddleware.ThenFunc(app.tourGuideHandler.GetTourGuides))
	mux.Post("/tour-guides", sellerAuthMiddleware.ThenFunc(app.tourGuideHandler.CreateTourGuide))
	mux.Get("/restaurants", authMiddleware.ThenFunc(app.restaurantHandler.GetRestaurants))
	mux.Post("/restaurants", sellerAuthMiddleware.ThenFunc(app.restaurantHandler.CreateRestaurant))
	mux.Get("/adventures", authMiddleware.ThenFunc(app.adventureHandler.GetAdventures))
	mux.Post("/adventures", sellerAuthMiddleware.ThenFunc(app.adventureHandler.CreateAdventure))
	mux.Get("/emergency-services", authMiddleware.ThenFunc(app.emergencyHandler.GetEmergencyServices))
	mux.Post("/emergency-services", adminAuthMiddleware.ThenFunc(app.emergencyHandler.CreateEmergencyService))

	// Chat
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))

	mux.Post("/chat-rooms", authMiddleware.ThenFunc(app.chatRoomHandler.CreateChatRoom))
	mux.Get("/chat-rooms", authMiddleware.ThenFunc(app.chatRoomHandler.GetChatRooms))
	mux.Get("/chat-rooms/:id", authMiddleware.ThenFunc(app.chatRoomHandler.GetChatRoomByID))
	mux.Put("/chat-rooms/:id/read", authMiddleware.ThenFunc(app.chatRoomHandler.MarkRead))
	mux.Get("/chat-rooms/:id/messages", authMiddleware.ThenFunc(app.messageHandler.GetMessages))
	mux.Post("/messages", authMiddleware.ThenFunc(app.messageHandler.SendMessage))

	// Push notifications
	mux.Post("/push/token", authMiddleware.ThenFunc(app.pushHandler.RegisterToken))

	return standardMiddleware.Then(mux)
}
