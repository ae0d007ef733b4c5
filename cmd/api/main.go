package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"jewelstore/internal/config"
	"jewelstore/internal/db"
	"jewelstore/internal/httpserver"
	adminrepo "jewelstore/internal/repository/admin"
	cartrepo "jewelstore/internal/repository/cart"
	customerrepo "jewelstore/internal/repository/customer"
	listingrepo "jewelstore/internal/repository/listing"
	orderrepo "jewelstore/internal/repository/order"
	reviewrepo "jewelstore/internal/repository/review"
	tokenrepo "jewelstore/internal/repository/token"
	cartsvc "jewelstore/internal/service/cart"
	customersvc "jewelstore/internal/service/customer"
	listingsvc "jewelstore/internal/service/listing"
	ordersvc "jewelstore/internal/service/order"
	reviewsvc "jewelstore/internal/service/review"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	listingRepo := listingrepo.NewPostgres(dbpool, logger)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	adminRepo := adminrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	reviewRepo := reviewrepo.NewPostgres(dbpool)
	tokenRepo := tokenrepo.NewPostgres(dbpool)

	listingService := listingsvc.New(listingRepo)
	cartService := cartsvc.New(cartRepo, listingRepo, customerRepo)
	orderService := ordersvc.New(orderRepo)
	reviewService := reviewsvc.New(reviewRepo)
	authService := customersvc.New(customerRepo, adminRepo, tokenRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartSvc:    cartService,
		OrderSvc:   orderService,
		ListingSvc: listingService,
		AuthSvc:    authService,
		ReviewSvc:  reviewService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
