package attendance

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

	r.PUT("/attendance/days/:date", h.Mark)
	r.DELETE("/attendance/days/:date", h.Remove)
	r.POST("/attendance/days/:date/toggle", h.Toggle)
	r.GET("/attendance/months/:yearMonth", h.Month)
	r.GET("/attendance/years/:year", h.Year)
	r.POST("/attendance/backfill-duration", h.Backfill)

	r.GET("/training-types", h.ListTypes)
	r.POST("/training-types", h.CreateType)
	r.PUT("/training-types/:id", h.UpdateType)
	r.DELETE("/training-types/:id", h.DeleteType)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json"))
			return
		}
	}
	rec, err := h.svc.Mark(c.Request.Context(), auth.CurrentUser(c), c.Param("date"), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), auth.CurrentUser(c), c.Param("date")); err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Toggle(c *gin.Context) {
	date := c.Param("date")
	present, err := h.svc.Toggle(c.Request.Context(), auth.CurrentUser(c), date)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, ToggleResponse{Date: date, Present: present})
}

func (h *Handler) Month(c *gin.Context) {
	yearMonth := c.Param("yearMonth")
	if len(yearMonth) != len("2006-01") {
		c.JSON(http.StatusBadRequest, apperr.Invalid("expected YYYY-MM"))
		return
	}
	year, err1 := strconv.Atoi(yearMonth[:4])
	month, err2 := strconv.Atoi(yearMonth[5:7])
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("expected YYYY-MM"))
		return
	}
	records, err := h.svc.Month(c.Request.Context(), auth.CurrentUser(c), year, month)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) Year(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("expected a year"))
		return
	}
	records, err := h.svc.Year(c.Request.Context(), auth.CurrentUser(c), year)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) Backfill(c *gin.Context) {
	res, err := h.svc.BackfillDuration(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.svc.ListTypes(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *Handler) CreateType(c *gin.Context) {
	var req TypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json or missing required fields"))
		return
	}
	t, err := h.svc.CreateType(c.Request.Context(), auth.CurrentUser(c), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) UpdateType(c *gin.Context) {
	var req TypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json or missing required fields"))
		return
	}
	t, err := h.svc.UpdateType(c.Request.Context(), auth.CurrentUser(c), c.Param("id"), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteType(c *gin.Context) {
	if err := h.svc.DeleteType(c.Request.Context(), auth.CurrentUser(c), c.Param("id")); err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.Status(http.StatusNoContent)
}
