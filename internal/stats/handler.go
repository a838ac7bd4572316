package stats

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/apperr"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/stats/attendance/:year", h.Attendance)
	r.GET("/stats/workouts/:year", h.Workouts)
	r.GET("/stats/duration/:year", h.Duration)
	r.GET("/stats/supplements/:year", h.Supplements)
}

func (h *Handler) Attendance(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	out, err := h.svc.Attendance(c.Request.Context(), auth.CurrentUser(c), year)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Workouts(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	out, err := h.svc.Workouts(c.Request.Context(), auth.CurrentUser(c), year)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Duration(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	var month *int
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			c.JSON(http.StatusBadRequest, apperr.Invalid("month must be 1..12"))
			return
		}
		month = &m
	}
	out, err := h.svc.Duration(c.Request.Context(), auth.CurrentUser(c), year, month)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Supplements(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	out, err := h.svc.Supplements(c.Request.Context(), auth.CurrentUser(c), year)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("expected a year"))
		return 0, false
	}
	return year, true
}
