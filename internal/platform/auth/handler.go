package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/apperr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service, secret []byte) {
	h := &Handler{svc: svc}

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	r.GET("/me", RequireAuth(secret), h.Me)
	r.PUT("/me/theme", RequireAuth(secret), h.SetTheme)
}

type registerRequest struct {
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	DisplayName *string `json:"displayName,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json or missing required fields"))
		return
	}
	userID, err := h.svc.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"userId": userID})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json or missing required fields"))
		return
	}
	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) Me(c *gin.Context) {
	profile, err := h.svc.Profile(c.Request.Context(), CurrentUser(c))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) SetTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json or missing required fields"))
		return
	}
	if err := h.svc.SetTheme(c.Request.Context(), CurrentUser(c), req.Theme); err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.Status(http.StatusNoContent)
}
