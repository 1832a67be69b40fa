package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-desk/config"
	"hotel-desk/controllers"
	"hotel-desk/routes"
	"hotel-desk/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	// Load persisted data; the CSV files are the store of record.
	recordStore, files, err := config.OpenStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("❌ Failed to open data files: %v", err)
	}
	log.Printf("✅ Loaded %d rooms and %d bookings from %s", len(recordStore.ListRooms()), len(recordStore.ListBookings()), cfg.DataDir)

	// Initialize services
	authService, err := services.NewAuthService(cfg.AdminUser, cfg.AdminPass)
	if err != nil {
		log.Fatalf("❌ Failed to initialize auth: %v", err)
	}
	roomService := services.NewRoomService(recordStore, files)
	bookingService := services.NewBookingService(recordStore, files)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService, bookingService)
	bookingController := controllers.NewBookingController(bookingService)
	exportController := controllers.NewExportController(bookingService)

	// Build router
	router := routes.SetupRouter(authController, roomController, bookingController, exportController, authService, cfg.CorsOrigins)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
