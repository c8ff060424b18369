package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoftil7/task-api/internal/apierr"
	"github.com/yoftil7/task-api/internal/store"
)

// AdminDeleteTask removes a task regardless of owner. Reached only through
// the admin role predicate.
func (h *Handler) AdminDeleteTask(c *gin.Context) {
	taskId, err := parseId(c.Param("id"))
	if err != nil {
		apierr.Write(c, apierr.NotFound("task not found"))
		return
	}

	tx, rollback, ok := h.begin(c)
	if !ok {
		return
	}
	defer rollback()

	err = store.DeleteTaskAnyOwner(c.Request.Context(), tx, taskId)
	if errors.Is(err, store.ErrNotFound) {
		apierr.Write(c, apierr.NotFound("task not found"))
		return
	}
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}
	if !h.commit(c, tx) {
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Dashboard(c *gin.Context) {
	tx, rollback, ok := h.begin(c)
	if !ok {
		return
	}
	defer rollback()

	stats, err := store.Dashboard(c.Request.Context(), tx)
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}
	if !h.commit(c, tx) {
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) Reports(c *gin.Context) {
	tx, rollback, ok := h.begin(c)
	if !ok {
		return
	}
	defer rollback()

	report, err := store.TaskReport(c.Request.Context(), tx)
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}
	if !h.commit(c, tx) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
