package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoftil7/task-api/internal/apierr"
	"github.com/yoftil7/task-api/internal/middleware"
	"github.com/yoftil7/task-api/internal/models"
	"github.com/yoftil7/task-api/internal/store"
	"github.com/yoftil7/task-api/internal/validate"
)

func (h *Handler) CreateTask(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		apierr.Write(c, apierr.Validation(map[string][]string{"body": {"invalid request body"}}))
		return
	}

	payload, errs := h.taskValidator.Create(raw)
	if errs.Any() {
		apierr.Write(c, apierr.Validation(errs))
		return
	}

	task := &models.Task{
		Description: *payload.Description,
		UserID:      middleware.CallerID(c),
	}
	if payload.Completed != nil {
		task.Completed = *payload.Completed
	}
	task.Priority = payload.Priority

	tx, rollback, ok := h.begin(c)
	if !ok {
		return
	}
	defer rollback()

	if err := store.CreateTask(c.Request.Context(), tx, task); err != nil {
		apierr.WriteInternal(c, err)
		return
	}
	if !h.commit(c, tx) {
		return
	}

	task.FillLinks()
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c *gin.Context) {
	params, errs := validate.ParseListParams(c.Request.URL.Query())
	if errs.Any() {
		apierr.Write(c, apierr.Validation(errs))
		return
	}

	tx, rollback, ok := h.begin(c)
	if !ok {
		return
	}
	defer rollback()

	items, total, err := store.ListTasks(c.Request.Context(), tx, middleware.CallerID(c), params)
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}
	if !h.commit(c, tx) {
		return
	}

	// Page 1 of an empty collection is a valid empty result; a later page
	// with nothing on it does not exist.
	if len(items) == 0 && params.Page > 1 {
		apierr.Write(c, apierr.NotFound("page not found"))
		return
	}

	for i := range items {
		items[i].FillLinks()
	}
	c.JSON(http.StatusOK, models.TaskPage{
		Meta:  store.NewPageMeta(params.Page, params.PerPage, total),
		Items: items,
	})
}

func (h *Handler) GetTask(c *gin.Context) {
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

	task, err := store.GetTask(c.Request.Context(), tx, taskId, middleware.CallerID(c))
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

	task.FillLinks()
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	taskId, err := parseId(c.Param("id"))
	if err != nil {
		apierr.Write(c, apierr.NotFound("task not found"))
		return
	}

	raw := map[string]any{}
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		apierr.Write(c, apierr.Validation(map[string][]string{"body": {"invalid request body"}}))
		return
	}

	payload, errs := h.taskValidator.Update(raw)
	if errs.Any() {
		apierr.Write(c, apierr.Validation(errs))
		return
	}

	tx, rollback, ok := h.begin(c)
	if !ok {
		return
	}
	defer rollback()

	task, err := store.GetTask(c.Request.Context(), tx, taskId, middleware.CallerID(c))
	if errors.Is(err, store.ErrNotFound) {
		apierr.Write(c, apierr.NotFound("task not found"))
		return
	}
	if err != nil {
		apierr.WriteInternal(c, err)
		return
	}

	if payload.Description != nil {
		task.Description = *payload.Description
	}
	if payload.Completed != nil {
		task.Completed = *payload.Completed
	}
	if payload.PrioritySet {
		task.Priority = payload.Priority
	}

	if err := store.UpdateTask(c.Request.Context(), tx, task); err != nil {
		apierr.WriteInternal(c, err)
		return
	}
	if !h.commit(c, tx) {
		return
	}

	task.FillLinks()
	c.JSON(http.StatusOK, task)
}

func (h *Handler) CompleteTask(c *gin.Context) {
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

	task, err := store.CompleteTask(c.Request.Context(), tx, taskId, middleware.CallerID(c))
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

	task.FillLinks()
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
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

	err = store.DeleteTask(c.Request.Context(), tx, taskId, middleware.CallerID(c))
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
