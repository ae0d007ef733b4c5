package httpserver

import (
	"log"
	"net/http"

	listingsvc "jewelstore/internal/service/listing"

	"github.com/gin-gonic/gin"
)

type listingHandlers struct {
	svc    ListingService
	logger *log.Logger
}

func (h *listingHandlers) list(c *gin.Context) {
	listings, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *listingHandlers) get(c *gin.Context) {
	l, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *listingHandlers) listByCategory(c *gin.Context) {
	listings, err := h.svc.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *listingHandlers) create(c *gin.Context) {
	var in listingsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing payload"})
		return
	}
	l, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *listingHandlers) update(c *gin.Context) {
	var in listingsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing payload"})
		return
	}
	l, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *listingHandlers) remove(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}
