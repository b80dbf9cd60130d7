// File: handlers/availability.go
package handlers

import (
	"net/http"
	"time"

	availabilityRepo "windward/database/repository/availability"
	"windward/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AvailabilityHandler manages instructor availability templates. A weekly
// row is a single template; deleting it removes all future occurrences.
type AvailabilityHandler struct {
	Repo   availabilityRepo.AvailabilityRepository
	Logger *zap.Logger
}

func NewAvailabilityHandler(repo availabilityRepo.AvailabilityRepository, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Repo: repo, Logger: logger}
}

type createAvailabilityRequest struct {
	InstructorID string `json:"instructorId" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
	Recurrence   string `json:"recurrence"`
}

// CreateAvailability handles POST /api/availability.
func (h *AvailabilityHandler) CreateAvailability(c *gin.Context) {
	var input createAvailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var issues []ValidationIssue
	start, err := time.Parse(time.RFC3339, input.StartTime)
	if err != nil {
		issues = append(issues, ValidationIssue{Field: "startTime", Message: "must be an ISO 8601 datetime"})
	}
	end, err := time.Parse(time.RFC3339, input.EndTime)
	if err != nil {
		issues = append(issues, ValidationIssue{Field: "endTime", Message: "must be an ISO 8601 datetime"})
	}
	if len(issues) == 0 && !end.After(start) {
		issues = append(issues, ValidationIssue{Field: "endTime", Message: "must be after startTime"})
	}
	recurrence := models.RecurrenceRule(input.Recurrence)
	if recurrence == "" {
		recurrence = models.RecurrenceNone
	}
	if recurrence != models.RecurrenceNone && recurrence != models.RecurrenceWeekly {
		issues = append(issues, ValidationIssue{Field: "recurrence", Message: "must be none or weekly"})
	}
	if len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "issues": issues})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), models.AvailabilityInterval{
		InstructorID: input.InstructorID,
		StartTime:    start,
		EndTime:      end,
		Recurrence:   recurrence,
	})
	if err != nil {
		h.Logger.Error("failed to create availability", zap.String("instructorId", input.InstructorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create availability"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteAvailability handles DELETE /api/availability/:id?instructorId=.
func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	intervalID := c.Param("id")
	instructorID := c.Query("instructorId")
	if instructorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "issues": []ValidationIssue{
			{Field: "instructorId", Message: "is required"},
		}})
		return
	}

	if err := h.Repo.DeleteByID(c.Request.Context(), instructorID, intervalID); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "availability interval not found"})
			return
		}
		h.Logger.Error("failed to delete availability", zap.String("id", intervalID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete availability"})
		return
	}

	c.Status(http.StatusNoContent)
}
