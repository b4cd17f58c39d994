package api

import (
	"log"
	stdhttp "net/http"

	"travelsathi/internal/config"
	"travelsathi/internal/http/handlers"
	"travelsathi/internal/http/middleware"
	"travelsathi/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a gin engine. The storage handle is
// passed in explicitly so tests can run the full router against the
// in-memory store.
func NewRouter(env config.Env, st store.Store) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)
	authRequired := middleware.RequireAuth(secret)
	adminOnly := middleware.RequireAdmin()

	system := handlers.SystemHandler{Store: st}
	auth := handlers.AuthHandler{Store: st, Secret: secret}
	locations := handlers.LocationHandler{Store: st}
	catalog := handlers.CatalogHandler{Store: st}
	bookings := handlers.BookingHandler{Store: st}
	payments := handlers.PaymentHandler{Store: st}
	users := handlers.UserHandler{Store: st}

	r.GET("/", system.Root)

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)

		authGroup := api.Group("/auth")
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)

		api.GET("/locations", locations.List)

		cars := api.Group("/cars")
		cars.GET("", catalog.ListCars)
		cars.GET("/search", catalog.SearchCars)
		cars.GET("/:id", catalog.GetCar)
		cars.POST("", authRequired, adminOnly, catalog.CreateCar)
		cars.DELETE("/:id", authRequired, adminOnly, catalog.DeleteCar)

		flights := api.Group("/flights")
		flights.GET("", catalog.ListFlights)
		flights.GET("/search", catalog.SearchFlights)
		flights.GET("/:id", catalog.GetFlight)
		flights.POST("", authRequired, adminOnly, catalog.CreateFlight)
		flights.DELETE("/:id", authRequired, adminOnly, catalog.DeleteFlight)

		hotels := api.Group("/hotels")
		hotels.GET("", catalog.ListHotels)
		hotels.GET("/search", catalog.SearchHotels)
		hotels.GET("/:id", catalog.GetHotel)
		hotels.POST("", authRequired, adminOnly, catalog.CreateHotel)
		hotels.DELETE("/:id", authRequired, adminOnly, catalog.DeleteHotel)

		bookingGroup := api.Group("/bookings", authRequired)
		bookingGroup.GET("", bookings.List)
		bookingGroup.POST("", bookings.Create)
		bookingGroup.GET("/:id/receipt", bookings.Receipt)

		paymentGroup := api.Group("/payments", authRequired)
		paymentGroup.GET("", payments.List)
		paymentGroup.POST("", payments.Create)

		api.GET("/users", authRequired, adminOnly, users.List)
	}

	return r
}
