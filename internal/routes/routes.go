package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"RENTEASE_BACK-END/internal/config"
	"RENTEASE_BACK-END/internal/handlers"
	"RENTEASE_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	forgotPasswordHandler *handlers.ForgotPasswordHandler,
	propertiesHandler *handlers.PropertiesHandler,
	bookingsHandler *handlers.BookingsHandler,
	ownerHandler *handlers.OwnerHandler,
	healthHandler *handlers.HealthHandler,
) {
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, &cfg.JWT)
	}
	owner := func(next http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.OwnerMiddleware(next))
	}

	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Public user routes
	http.HandleFunc("/api/user/register", authHandler.Register)
	http.HandleFunc("/api/user/login", authHandler.Login)
	http.HandleFunc("/api/user/forgotpassword", forgotPasswordHandler.ForgotPassword)

	// Authenticated user routes
	http.HandleFunc("/api/user/getuserdata", auth(authHandler.AuthCheck))
	http.HandleFunc("/api/user/getallproperties", auth(propertiesHandler.GetAllProperties))
	http.HandleFunc("/api/user/bookinghandle/", auth(bookingsHandler.BookingHandle))
	http.HandleFunc("/api/user/getallbookings", auth(bookingsHandler.GetAllBookings))

	// Owner routes
	http.HandleFunc("/api/owner/addproperty", owner(ownerHandler.AddProperty))
	http.HandleFunc("/api/owner/getallproperties", owner(ownerHandler.GetOwnerProperties))
	http.HandleFunc("/api/owner/updateproperty/", owner(ownerHandler.UpdateProperty))
	http.HandleFunc("/api/owner/getallbookings", owner(ownerHandler.GetOwnerBookings))
	http.HandleFunc("/api/owner/handlebookingstatus/", owner(ownerHandler.HandleBookingStatus))

	// Swagger UI
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("RentEase backend is running."))
}
