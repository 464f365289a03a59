package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gtteam/shop/internal/backend"
	"github.com/gtteam/shop/internal/database"
	"github.com/gtteam/shop/internal/logging"
	"github.com/gtteam/shop/internal/server"
)

func main() {
	port := os.Getenv("SHOP_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("SHOP_DB_PATH")
	if dbPath == "" {
		dbPath = "shop.db"
	}

	logger := logging.Setup(os.Getenv("SHOP_LOG_LEVEL"))

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := backend.Seed(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	srv := server.New(db, backend.DefaultUserID, logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Shop running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
