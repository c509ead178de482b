package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"caminora/internal/database"
	"caminora/internal/modules/auth"
	"caminora/internal/modules/booking"
	"caminora/internal/modules/catalog"
	"caminora/internal/modules/notification"
	"caminora/internal/modules/rental"
	"caminora/internal/modules/report"
	"caminora/internal/pkg/filestore"
	jwtsvc "caminora/internal/pkg/jwt"
	"caminora/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	documentsDir := os.Getenv("DOCUMENTS_DIR")
	if documentsDir == "" {
		documentsDir = "./documents"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	bikeRepo := repository.NewBikeRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notification.NewHub()
	defer hub.Close()
	notifService := notification.NewService(hub)
	notifHandler := notification.NewHandler(hub, j)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(accommodationRepo, routeRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, accommodationRepo, notifService)
	bookingHandler := booking.NewHandler(bookingService)

	rentalService := rental.NewService(bikeRepo)
	rentalHandler := rental.NewHandler(rentalService)

	documents := filestore.New(documentsDir)
	sharer := notification.NewDocumentSharer(hub)
	reportService := report.NewService(bookingRepo, routeRepo, documents, sharer)
	reportHandler := report.NewHandler(reportService)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		rentalHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			bookingHandler.RegisterRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			rentalHandler.RegisterProtectedRoutes(protected)
			notifHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			reportHandler.RegisterRoutes(admin)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// websocket dials authenticate via query token in their handler
		if strings.HasSuffix(c.FullPath(), "/notifications/ws") {
			c.Next()
			return
		}

		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing Authorization header",
				},
			})
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Empty token",
				},
			})
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
