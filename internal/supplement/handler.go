package supplement

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

	r.GET("/ingredients", h.Ingredients)
	r.POST("/ingredients/seed", h.Seed)

	r.GET("/products", h.Products)
	r.POST("/products", h.AddProduct)
	r.GET("/products/:id", h.Product)
	r.PUT("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)

	r.POST("/supplement-logs", h.Log)
	r.GET("/supplement-logs/:yearMonth", h.MonthLogs)
	r.DELETE("/supplement-logs/:id", h.RemoveLog)
}

func (h *Handler) Ingredients(c *gin.Context) {
	var (
		out []Ingredient
		err error
	)
	if term := c.Query("search"); term != "" {
		out, err = h.svc.SearchIngredients(c.Request.Context(), term)
	} else {
		out, err = h.svc.Ingredients(c.Request.Context())
	}
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Seed(c *gin.Context) {
	n, err := h.svc.SeedIfEmpty(c.Request.Context())
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, SeedResponse{Seeded: n})
}

func (h *Handler) Products(c *gin.Context) {
	var (
		out []Product
		err error
	)
	if term := c.Query("search"); term != "" {
		out, err = h.svc.SearchProducts(c.Request.Context(), term)
	} else {
		out, err = h.svc.Products(c.Request.Context())
	}
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Product(c *gin.Context) {
	p, err := h.svc.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) AddProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json or missing required fields"))
		return
	}
	p, err := h.svc.AddProduct(c.Request.Context(), auth.CurrentUser(c), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json or missing required fields"))
		return
	}
	p, err := h.svc.UpdateProduct(c.Request.Context(), auth.CurrentUser(c), c.Param("id"), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.svc.DeleteProduct(c.Request.Context(), auth.CurrentUser(c), c.Param("id")); err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Log(c *gin.Context) {
	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json or missing required fields"))
		return
	}
	entry, err := h.svc.LogSupplement(c.Request.Context(), auth.CurrentUser(c), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) MonthLogs(c *gin.Context) {
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
	logs, err := h.svc.MonthLogs(c.Request.Context(), auth.CurrentUser(c), year, month)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *Handler) RemoveLog(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, apperr.Invalid("date query parameter is required"))
		return
	}
	if err := h.svc.RemoveLog(c.Request.Context(), auth.CurrentUser(c), c.Param("id"), date); err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.Status(http.StatusNoContent)
}
