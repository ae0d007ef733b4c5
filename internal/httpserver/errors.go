package httpserver

import (
	"errors"
	"log"
	"net/http"

	"jewelstore/internal/domain"
	cartsvc "jewelstore/internal/service/cart"
	customersvc "jewelstore/internal/service/customer"
	ordersvc "jewelstore/internal/service/order"
	reviewsvc "jewelstore/internal/service/review"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto the HTTP taxonomy: validation to 400,
// missing entities to 404, ownership to 403, credentials to 401. Anything
// unrecognized is logged with detail and returned as a bare 500.
func writeError(c *gin.Context, logger *log.Logger, err error) {
	var validation domain.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, cartsvc.ErrInvalidQuantity),
		errors.Is(err, ordersvc.ErrInvalidStatus),
		errors.Is(err, customersvc.ErrEmailTaken),
		errors.Is(err, reviewsvc.ErrAlreadyReviewed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, cartsvc.ErrProductNotFound),
		errors.Is(err, cartsvc.ErrUserNotFound),
		errors.Is(err, cartsvc.ErrCartNotFound),
		errors.Is(err, cartsvc.ErrItemNotFound),
		errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, customersvc.ErrInvalidCredentials),
		errors.Is(err, customersvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, reviewsvc.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not authorized to modify this review"})
	default:
		logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
