package handlers

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yoftil7/task-api/internal/apierr"
	"github.com/yoftil7/task-api/internal/validate"
)

type Handler struct {
	db            *sql.DB
	jwtKey        string
	tokenTTL      time.Duration
	taskValidator *validate.TaskValidator
}

func New(db *sql.DB, jwtKey string, tokenTTL time.Duration, forbiddenWords []string) *Handler {
	return &Handler{
		db:            db,
		jwtKey:        jwtKey,
		tokenTTL:      tokenTTL,
		taskValidator: validate.NewTaskValidator(forbiddenWords),
	}
}

func parseId(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// begin opens the request-scoped transaction. The handler must either commit
// via commit() or let the returned rollback run; either way the request ends
// with no partial state.
func (h *Handler) begin(c *gin.Context) (tx *sql.Tx, rollback func(), ok bool) {
	tx, err := h.db.BeginTx(c.Request.Context(), nil)
	if err != nil {
		apierr.WriteInternal(c, err)
		return nil, nil, false
	}
	return tx, func() { _ = tx.Rollback() }, true
}

// commit finishes the transaction; on failure the response is the opaque
// internal error and the handler must not write a success body.
func (h *Handler) commit(c *gin.Context, tx *sql.Tx) bool {
	if err := tx.Commit(); err != nil {
		apierr.WriteInternal(c, err)
		return false
	}
	return true
}
