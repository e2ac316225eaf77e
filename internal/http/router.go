package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "perubus/internal/config"
	h "perubus/internal/http/handlers"
	"perubus/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.JWTSecret = []byte(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)

		// Storefront (public)
		api.GET("/agencias", h.GetAgencies)
		api.GET("/rutas", h.GetRoutes)
		api.GET("/rutas/:id", h.GetRouteByID)
		api.POST("/viajes/buscar-viajes", h.SearchTrips)
		api.GET("/viajes/:id/estado", h.GetTripStatus)
		api.GET("/asientos/bus/:idBus", h.GetSeatsByBus)
		api.GET("/asientos/bus/:idBus/disponibles", h.GetAvailableSeatsByBus)

		// Purchase sessions
		compras := api.Group("/compras")
		compras.POST("", h.CreatePurchase)
		compras.GET("/:id", h.GetPurchase)
		compras.POST("/:id/reintentar", h.RetryPurchaseSeats)
		compras.POST("/:id/asientos/:idAsiento", h.TogglePurchaseSeat)
		compras.PUT("/:id/pasajeros/:index", h.SetPurchasePassengerField)
		compras.POST("/:id/confirmar", h.ConfirmPurchase)
		compras.GET("/:id/boleto", h.DownloadPurchaseTicket)
		compras.POST("/:id/finalizar", h.FinishPurchase)

		// Back office
		admin := api.Group("")
		admin.Use(middleware.RequireAdmin(h.JWTSecret))
		{
			admin.GET("/administradores", h.GetAdmins)
			admin.POST("/administradores", h.CreateAdmin)
			admin.PUT("/administradores/:id", h.UpdateAdmin)
			admin.DELETE("/administradores/:id", h.DeleteAdmin)

			admin.POST("/agencias", h.CreateAgency)
			admin.PUT("/agencias/:id", h.UpdateAgency)
			admin.DELETE("/agencias/:id", h.DeleteAgency)

			admin.POST("/rutas", h.CreateRoute)
			admin.PUT("/rutas/:id", h.UpdateRoute)
			admin.DELETE("/rutas/:id", h.DeleteRoute)

			admin.GET("/conductores", h.GetDrivers)
			admin.GET("/conductores/:id", h.GetDriverByID)
			admin.POST("/conductores", h.CreateDriver)
			admin.PUT("/conductores/:id", h.UpdateDriver)
			admin.DELETE("/conductores/:id", h.DeleteDriver)

			admin.GET("/buses", h.GetBuses)
			admin.GET("/buses/:id", h.GetBusByID)
			admin.GET("/buses/placa/:placa", h.GetBusByPlate)
			admin.POST("/buses", h.CreateBus)
			admin.PUT("/buses/:id", h.UpdateBus)
			admin.DELETE("/buses/:id", h.DeleteBus)

			admin.GET("/asientos", h.GetSeats)
			admin.GET("/asientos/:id", h.GetSeatByID)
			admin.POST("/asientos", h.CreateSeat)
			admin.POST("/asientos/lote", h.CreateSeatBatch)
			admin.PUT("/asientos/:id", h.UpdateSeat)
			admin.DELETE("/asientos/:id", h.DeleteSeat)

			admin.GET("/viajes", h.GetTrips)
			admin.GET("/viajes/:id", h.GetTripByID)
			admin.POST("/viajes", h.CreateTrip)
			admin.PUT("/viajes/:id", h.UpdateTrip)
			admin.DELETE("/viajes/:id", h.DeleteTrip)

			admin.GET("/pasajes", h.GetTickets)
			admin.GET("/pasajes/:id", h.GetTicketByID)
			admin.GET("/pasajes/usuario/:idUsuario", h.GetTicketsByUser)

			admin.GET("/usuarios", h.GetUsers)
			admin.GET("/usuarios/:id", h.GetUserByID)
			admin.GET("/usuarios/dni/:dni", h.GetUserByDocumentID)
			admin.POST("/usuarios", h.CreateUser)
			admin.PUT("/usuarios/:id", h.UpdateUser)
			admin.DELETE("/usuarios/:id", h.DeleteUser)
		}
	}

	return r
}
