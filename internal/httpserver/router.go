package httpserver

import (
	"context"
	"errors"
	"log"

	"jewelstore/internal/domain"
	customersvc "jewelstore/internal/service/customer"
	listingsvc "jewelstore/internal/service/listing"
	ordersvc "jewelstore/internal/service/order"
	reviewsvc "jewelstore/internal/service/review"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CartService is consumed by the cart handlers.
type CartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
}

// OrderService is consumed by the order handlers.
type OrderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
}

// ListingService is consumed by the catalog handlers.
type ListingService interface {
	Create(ctx context.Context, in listingsvc.Input) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]domain.Listing, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Listing, error)
	Update(ctx context.Context, id string, in listingsvc.Input) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
}

// AuthService is consumed by the auth handlers and gating middleware.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, string, error)
	AdminLogin(ctx context.Context, username, password string) (*domain.Admin, string, error)
	Logout(ctx context.Context, token string) error
	LookupByToken(ctx context.Context, token string) (*customersvc.Identity, error)
	AccessTTLSeconds() int
}

// ReviewService is consumed by the review handlers.
type ReviewService interface {
	Create(ctx context.Context, in reviewsvc.Input) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID string) ([]domain.Review, error)
	Update(ctx context.Context, reviewID, userID string, rating int, comment string) (*domain.Review, error)
	Delete(ctx context.Context, reviewID, userID string) error
	Average(ctx context.Context, listingID string) (float64, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	CartSvc    CartService
	OrderSvc   OrderService
	ListingSvc ListingService
	AuthSvc    AuthService
	ReviewSvc  ReviewService
}

func (d Deps) validate() error {
	if d.CartSvc == nil || d.OrderSvc == nil || d.ListingSvc == nil || d.AuthSvc == nil || d.ReviewSvc == nil {
		return errors.New("httpserver: all services must be provided")
	}
	return nil
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	auth := &authHandlers{svc: deps.AuthSvc, logger: logger}
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", auth.register)
		authGroup.POST("/login", auth.login)
		authGroup.POST("/adminlogin", auth.adminLogin)
		authGroup.POST("/logout", auth.logout)
		authGroup.GET("/check-auth", auth.checkAuth)
	}

	adminOnly := adminRequired(deps.AuthSvc)

	listings := &listingHandlers{svc: deps.ListingSvc, logger: logger}
	listingGroup := router.Group("/listings")
	{
		listingGroup.GET("", listings.list)
		listingGroup.GET("/id/:id", listings.get)
		listingGroup.GET("/:category", listings.listByCategory)
		listingGroup.POST("", adminOnly, listings.create)
		listingGroup.PUT("/:id", adminOnly, listings.update)
		listingGroup.DELETE("/:id", adminOnly, listings.remove)
	}

	carts := &cartHandlers{svc: deps.CartSvc, logger: logger}
	cartGroup := router.Group("/cart")
	{
		cartGroup.POST("", carts.addItem)
		cartGroup.GET("/:userId", carts.getCart)
		cartGroup.DELETE("/:userId/:productId", carts.removeItem)
		cartGroup.PATCH("/:userId/:productId", carts.setQuantity)
	}

	orders := &orderHandlers{svc: deps.OrderSvc, logger: logger}
	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", orders.create)
		orderGroup.GET("/user/:userId", orders.listForUser)
		orderGroup.GET("/admin", adminOnly, orders.listAll)
		orderGroup.PUT("/:id/status", adminOnly, orders.updateStatus)
	}

	reviews := &reviewHandlers{svc: deps.ReviewSvc, logger: logger}
	reviewGroup := router.Group("/reviews")
	{
		reviewGroup.GET("/:listingId", reviews.listByListing)
		reviewGroup.GET("/:listingId/average", reviews.average)
		authed := authRequired(deps.AuthSvc)
		reviewGroup.POST("", authed, reviews.create)
		reviewGroup.PUT("/:reviewId", authed, reviews.update)
		reviewGroup.DELETE("/:reviewId", authed, reviews.remove)
	}

	return router, nil
}
