package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Isaacjdv/futbolapp-backend/middlewares"
	"github.com/Isaacjdv/futbolapp-backend/pkg/logger"
	"github.com/Isaacjdv/futbolapp-backend/oauth"
	"github.com/Isaacjdv/futbolapp-backend/pkg/resp"
	"github.com/Isaacjdv/futbolapp-backend/queue"
	"github.com/Isaacjdv/futbolapp-backend/services"
	"github.com/Isaacjdv/futbolapp-backend/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type FederatedRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type AuthController struct {
	Svc    *services.AuthService
	Google *oauth.GoogleOAuth
	Events queue.Publisher
}

func NewAuthController(svc *services.AuthService, google *oauth.GoogleOAuth, events queue.Publisher) *AuthController {
	return &AuthController{Svc: svc, Google: google, Events: events}
}

// publish emits an auth event off the request goroutine. The request context
// is canceled once the handler returns, so the publish runs on a fresh
// context (the publisher bounds it itself) and failures are logged instead
// of dropped.
func (a *AuthController) publish(c *gin.Context, key string, event any) {
	reqID := c.GetString(middlewares.RequestIDKey)
	go func() {
		if err := a.Events.Publish(context.Background(), key, event, reqID); err != nil {
			logger.L().Warn("event publish failed",
				zap.String("key", key), zap.String("requestId", reqID), zap.Error(err))
		}
	}()
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			resp.Conflict(c, "email already registered")
		case errors.Is(err, services.ErrInvalidInput):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	a.publish(c, queue.KeyUserRegistered,
		queue.UserRegistered{UserID: user.ID, Email: user.Email, Name: user.Name})

	c.JSON(http.StatusCreated, gin.H{"ok": true, "token": token, "user": user.Public()})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	a.publish(c, queue.KeyUserLoggedIn,
		queue.UserLoggedIn{UserID: user.ID, Email: user.Email})

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user.Public()})
}

// POST /auth/federated
func (a *AuthController) Federated(c *gin.Context) {
	var req FederatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	gUser, err := a.Google.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		resp.Unauthorized(c, "identity verification failed")
		return
	}

	user, token, err := a.Svc.FederatedLogin(gUser)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user.Public()})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user.Public())
}
