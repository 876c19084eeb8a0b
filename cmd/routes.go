package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Tires
	mux.Get("/api/tires", standardMiddleware.ThenFunc(app.tireHandler.GetTires))
	mux.Get("/api/tires/:id", standardMiddleware.ThenFunc(app.tireHandler.GetTireByID))
	mux.Get("/api/brands", standardMiddleware.ThenFunc(app.tireHandler.GetBrands))
	mux.Get("/api/dimensions", standardMiddleware.ThenFunc(app.tireHandler.GetDimensions))
	mux.Get("/api/season-values", standardMiddleware.ThenFunc(app.tireHandler.GetSeasons))
	mux.Get("/api/tire-by-article", standardMiddleware.ThenFunc(app.tireHandler.GetTireByArticle))

	// Wheels
	mux.Get("/api/wheels", standardMiddleware.ThenFunc(app.wheelHandler.GetWheels))
	mux.Get("/api/disks/:id", standardMiddleware.ThenFunc(app.wheelHandler.GetWheelByID))

	// Vehicle fitment
	mux.Get("/api/fitment/search", standardMiddleware.ThenFunc(app.searchHandler.Search))
	mux.Get("/api/fitment/brands", standardMiddleware.ThenFunc(app.fitmentHandler.GetBrands))
	mux.Get("/api/fitment/models", standardMiddleware.ThenFunc(app.fitmentHandler.GetModels))
	mux.Get("/api/fitment", standardMiddleware.ThenFunc(app.fitmentHandler.GetFitment))

	// Auth
	mux.Post("/api/user/request_code", standardMiddleware.ThenFunc(app.userHandler.RequestCode))
	mux.Post("/api/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/api/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/api/user/sign_out", authMiddleware.ThenFunc(app.userHandler.SignOut))

	// Profile
	mux.Get("/api/profile", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Put("/api/profile", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))

	// Cart
	mux.Get("/api/cart", authMiddleware.ThenFunc(app.cartHandler.GetCart))
	mux.Post("/api/cart", authMiddleware.ThenFunc(app.cartHandler.AddItem))
	mux.Put("/api/cart/:id", authMiddleware.ThenFunc(app.cartHandler.SetQuantity))
	mux.Del("/api/cart/:id", authMiddleware.ThenFunc(app.cartHandler.RemoveItem))
	mux.Del("/api/cart", authMiddleware.ThenFunc(app.cartHandler.ClearCart))

	// Favorites
	mux.Get("/api/favorites", authMiddleware.ThenFunc(app.favoritesHandler.GetFavorites))
	mux.Post("/api/favorites", authMiddleware.ThenFunc(app.favoritesHandler.AddFavorite))
	mux.Post("/api/favorites/toggle", authMiddleware.ThenFunc(app.favoritesHandler.ToggleFavorite))
	mux.Del("/api/favorites/:productId", authMiddleware.ThenFunc(app.favoritesHandler.RemoveFavorite))

	// Garage
	mux.Get("/api/garage", authMiddleware.ThenFunc(app.vehicleHandler.GetVehicles))
	mux.Post("/api/garage", authMiddleware.ThenFunc(app.vehicleHandler.AddVehicle))
	mux.Put("/api/garage/:id/primary", authMiddleware.ThenFunc(app.vehicleHandler.SetPrimary))
	mux.Del("/api/garage/:id", authMiddleware.ThenFunc(app.vehicleHandler.RemoveVehicle))

	// Cities
	mux.Get("/api/cities", standardMiddleware.ThenFunc(app.cityHandler.GetCities))
	mux.Get("/api/cities/selected", authMiddleware.ThenFunc(app.cityHandler.GetSelected))
	mux.Put("/api/cities/selected", authMiddleware.ThenFunc(app.cityHandler.SetSelected))
	mux.Get("/api/cities/:id", standardMiddleware.ThenFunc(app.cityHandler.GetCityByID))

	// Orders
	mux.Get("/api/orders/draft", authMiddleware.ThenFunc(app.orderHandler.GetDraft))
	mux.Put("/api/orders/draft", authMiddleware.ThenFunc(app.orderHandler.SaveDraft))
	mux.Post("/api/orders/checkout", authMiddleware.ThenFunc(app.orderHandler.Checkout))
	mux.Get("/api/orders", authMiddleware.ThenFunc(app.orderHandler.GetOrders))
	mux.Get("/api/orders/:id", authMiddleware.ThenFunc(app.orderHandler.GetOrderByID))

	// Appointments
	mux.Post("/api/appointments", authMiddleware.ThenFunc(app.appointmentHandler.Book))
	mux.Get("/api/appointments", authMiddleware.ThenFunc(app.appointmentHandler.GetAppointments))
	mux.Del("/api/appointments/:id", authMiddleware.ThenFunc(app.appointmentHandler.Cancel))
	mux.Put("/api/appointments/:id/confirm", adminAuthMiddleware.ThenFunc(app.appointmentHandler.Confirm))

	// News and promos
	mux.Get("/api/news", standardMiddleware.ThenFunc(app.newsHandler.GetNews))
	mux.Get("/api/news/:id", standardMiddleware.ThenFunc(app.newsHandler.GetNewsByID))
	mux.Post("/api/news", adminAuthMiddleware.ThenFunc(app.newsHandler.CreateNews))
	mux.Put("/api/news/:id", adminAuthMiddleware.ThenFunc(app.newsHandler.UpdateNews))

	// Loyalty
	mux.Post("/api/loyalty/add", adminAuthMiddleware.ThenFunc(app.userHandler.AddPoints))

	// Push tokens
	mux.Post("/api/push/token", authMiddleware.ThenFunc(app.pushHandler.RegisterToken))
	mux.Del("/api/push/token/:token", authMiddleware.ThenFunc(app.pushHandler.DeleteToken))

	// State change stream
	mux.Get("/ws", app.JWTMiddleware(http.HandlerFunc(app.serveWS), "user"))

	return mux
}
