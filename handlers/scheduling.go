// File: handlers/scheduling.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"windward/models"
	"windward/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidationIssue is one field-level problem in a rejected request.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchedulingHandler exposes the slot query and instructor assignment.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

func NewSchedulingHandler(service scheduling.SchedulingService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: service, Logger: logger}
}

// GetAvailableSlots handles GET /api/slots?date=YYYY-MM-DD&skillLevel=&lessonType=.
func (h *SchedulingHandler) GetAvailableSlots(c *gin.Context) {
	var issues []ValidationIssue

	dateStr := c.Query("date")
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		issues = append(issues, ValidationIssue{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	skill := models.SkillLevel(c.Query("skillLevel"))
	if skill != "" && !skill.Valid() {
		issues = append(issues, ValidationIssue{Field: "skillLevel", Message: "must be one of beginner, intermediate, advanced"})
	}

	if len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "issues": issues})
		return
	}

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), scheduling.SlotQuery{
		Day:        day,
		SkillLevel: skill,
		NameFilter: c.Query("lessonType"),
	})
	if err != nil {
		h.Logger.Error("slot query failed", zap.String("date", dateStr), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute available slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

type assignRequest struct {
	LessonTypeID int    `json:"lessonTypeId" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
}

// AssignInstructor handles POST /api/assign. Reserved for trusted internal
// callers; the booking writer consumes the result.
func (h *SchedulingHandler) AssignInstructor(c *gin.Context) {
	var input assignRequest
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
	if len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "issues": issues})
		return
	}

	instructorID, err := h.Service.AssignInstructor(c.Request.Context(), scheduling.AssignRequest{
		LessonTypeID: input.LessonTypeID,
		Start:        start,
		End:          end,
	})
	if err != nil {
		var bizErr *scheduling.BusinessError
		if errors.As(err, &bizErr) {
			c.JSON(http.StatusBadRequest, gin.H{"code": bizErr.Code, "message": bizErr.Message})
			return
		}
		h.Logger.Error("assignment failed", zap.Int("lessonTypeId", input.LessonTypeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign instructor"})
		return
	}

	var result *string
	if instructorID != "" {
		result = &instructorID
	}
	c.JSON(http.StatusOK, gin.H{"instructorId": result})
}
