package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoftil7/task-api/internal/apierr"
	"github.com/yoftil7/task-api/internal/auth"
	"github.com/yoftil7/task-api/internal/middleware"
	"github.com/yoftil7/task-api/internal/models"
	"github.com/yoftil7/task-api/internal/store"
	"github.com/yoftil7/task-api/internal/validate"
)

func (h *Handler) Register(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		apierr.Write(c, apierr.Validation(map[string][]string{"body": {"invalid request body"}}))
		return
	}

	credentials, errs := validate.ParseCredentials(raw)
	if errs.Any() {
		apierr.Write(c, apierr.Validation(errs))
		return
	}

	hashed, err := auth.HashPassword(credentials.Password)
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}

	tx, rollback, ok := h.begin(c)
	if !ok {
		return
	}
	defer rollback()

	user, err := store.CreateUser(c.Request.Context(), tx, credentials.Username, hashed)
	if errors.Is(err, store.ErrDuplicateUsername) {
		apierr.Write(c, apierr.Conflict("username already taken"))
		return
	}
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}
	if !h.commit(c, tx) {
		return
	}

	tokenString, err := auth.IssueToken(h.jwtKey, user.ID, user.Role, h.tokenTTL)
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.TokenResponse{AccessToken: tokenString, User: *user})
}

func (h *Handler) Login(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		apierr.Write(c, apierr.Validation(map[string][]string{"body": {"invalid request body"}}))
		return
	}

	credentials, errs := validate.ParseCredentials(raw)
	if errs.Any() {
		apierr.Write(c, apierr.Validation(errs))
		return
	}

	tx, rollback, ok := h.begin(c)
	if !ok {
		return
	}
	defer rollback()

	// An unknown username and a wrong password take the same path to the
	// same body, so callers cannot enumerate accounts.
	user, err := store.GetUserByUsername(c.Request.Context(), tx, credentials.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		apierr.WriteInternal(c, err)
		return
	}

	hash := ""
	if user != nil {
		hash = user.PasswordHash
	}
	if !auth.CheckPassword(hash, credentials.Password) {
		apierr.Write(c, apierr.Authentication("invalid credentials"))
		return
	}
	if !h.commit(c, tx) {
		return
	}

	tokenString, err := auth.IssueToken(h.jwtKey, user.ID, user.Role, h.tokenTTL)
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: tokenString, User: *user})
}

func (h *Handler) Me(c *gin.Context) {
	tx, rollback, ok := h.begin(c)
	if !ok {
		return
	}
	defer rollback()

	user, err := store.GetUserByID(c.Request.Context(), tx, middleware.CallerID(c))
	if errors.Is(err, store.ErrNotFound) {
		apierr.Write(c, apierr.NotFound("user not found"))
		return
	}
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}
	if !h.commit(c, tx) {
		return
	}

	c.JSON(http.StatusOK, user)
}
