package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-desk/controllers"
	"hotel-desk/middleware"
	"hotel-desk/services"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the route tree. Reads on rooms and
// availability are public; taking a booking needs a session; everything that
// mutates rooms or inspects the full ledger sits behind the admin gate.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	ec *controllers.ExportController,
	auth *services.AuthService,
	corsOrigins string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", ac.Login)
			authRoutes.POST("/guest", ac.Guest)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/availability", rc.GetAvailability)
		}

		session := api.Group("")
		session.Use(middleware.RequireSession(auth))
		{
			session.POST("/bookings", bc.CreateBooking)

			admin := session.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/rooms", rc.CreateRoom)
				admin.DELETE("/rooms/:number", rc.DeleteRoom)

				admin.GET("/bookings", bc.GetBookings)
				admin.DELETE("/bookings/:number/:date", bc.DeleteBooking)

				admin.GET("/export/bookings.csv", ec.ExportCSV)
				admin.GET("/export/bookings.pdf", ec.ExportPDF)
			}
		}
	}

	return r
}
