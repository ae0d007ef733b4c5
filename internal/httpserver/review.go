package httpserver

import (
	"log"
	"net/http"

	reviewsvc "jewelstore/internal/service/review"

	"github.com/gin-gonic/gin"
)

type reviewHandlers struct {
	svc    ReviewService
	logger *log.Logger
}

type createReviewRequest struct {
	ListingID string `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type updateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *reviewHandlers) listByListing(c *gin.Context) {
	reviews, err := h.svc.ListByListing(c.Request.Context(), c.Param("listingId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *reviewHandlers) average(c *gin.Context) {
	avg, err := h.svc.Average(c.Request.Context(), c.Param("listingId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"averageRating": avg})
}

func (h *reviewHandlers) create(c *gin.Context) {
	ident := identityFrom(c)
	if ident == nil || ident.CustomerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId and rating are required"})
		return
	}

	review, err := h.svc.Create(c.Request.Context(), reviewsvc.Input{
		ListingID: req.ListingID,
		UserID:    ident.CustomerID,
		Username:  ident.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *reviewHandlers) update(c *gin.Context) {
	ident := identityFrom(c)
	if ident == nil || ident.CustomerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating is required"})
		return
	}

	review, err := h.svc.Update(c.Request.Context(), c.Param("reviewId"), ident.CustomerID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *reviewHandlers) remove(c *gin.Context) {
	ident := identityFrom(c)
	if ident == nil || ident.CustomerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("reviewId"), ident.CustomerID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
