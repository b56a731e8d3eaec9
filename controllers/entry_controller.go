package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"DocTrackerGo/middleware"
	"DocTrackerGo/models"
	"DocTrackerGo/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	entries *services.EntryService
}

func NewEntryController(entries *services.EntryService) *EntryController {
	return &EntryController{entries: entries}
}

func (ec *EntryController) Create(c *gin.Context) {
	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := ec.entries.Create(c.Request.Context(), middleware.CurrentUser(c), req, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Entry saved successfully",
		"data":    entry,
	})
}

func (ec *EntryController) List(c *gin.Context) {
	var q models.ListEntriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	entries, err := ec.entries.List(c.Request.Context(), c.GetString(middleware.ContextUserID), q)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, entries)
}

func (ec *EntryController) Recent(c *gin.Context) {
	limit := services.DefaultRecentLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondError(c, fmt.Errorf("%w: limit must be a positive integer", services.ErrValidation))
			return
		}
		limit = n
	}

	entries, err := ec.entries.Recent(c.Request.Context(), c.GetString(middleware.ContextUserID), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, entries)
}

func (ec *EntryController) Get(c *gin.Context) {
	entry, err := ec.entries.Get(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, entry)
}

func (ec *EntryController) Update(c *gin.Context) {
	var req models.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := ec.entries.Update(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Entry updated successfully",
		"data":    entry,
	})
}

func (ec *EntryController) Delete(c *gin.Context) {
	if err := ec.entries.Delete(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Entry deleted successfully"})
}

// ListAll returns every user's entries, newest first.
func (ec *EntryController) ListAll(c *gin.Context) {
	entries, err := ec.entries.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, entries)
}
