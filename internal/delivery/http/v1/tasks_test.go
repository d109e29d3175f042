package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohakudev/minutes-api/internal/models"
	"github.com/kohakudev/minutes-api/internal/services"
)

func TestHandleCreateTask(t *testing.T) {
	t.Run("success with defaulted status", func(t *testing.T) {
		taskService := &stubTaskService{}
		router := newTestRouter(&stubMeetingService{}, taskService)

		body := map[string]any{"content": "send out the minutes"}
		w := perform(t, router, http.MethodPost, "/api/meetings/7/tasks", body)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody[getTaskResponse](t, w)
		assert.Equal(t, models.StatusPending, resp.Status)

		require.NotNil(t, taskService.gotTask)
		assert.Equal(t, int64(7), taskService.gotTask.MeetingID)
		assert.Equal(t, models.StatusPending, taskService.gotTask.Status)
	})

	t.Run("missing meeting", func(t *testing.T) {
		taskService := &stubTaskService{err: services.ErrMeetingNotFound}
		router := newTestRouter(&stubMeetingService{}, taskService)

		body := map[string]any{"content": "send out the minutes"}
		w := perform(t, router, http.MethodPost, "/api/meetings/99/tasks", body)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, errorDetail(t, w), "meeting not found")
	})

	t.Run("invalid status", func(t *testing.T) {
		router := newTestRouter(&stubMeetingService{}, &stubTaskService{})

		body := map[string]any{"content": "send out the minutes", "status": "done"}
		w := perform(t, router, http.MethodPost, "/api/meetings/7/tasks", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, errorDetail(t, w), "status")
	})

	t.Run("past due date", func(t *testing.T) {
		router := newTestRouter(&stubMeetingService{}, &stubTaskService{})

		body := map[string]any{"content": "send out the minutes", "due_date": "2000-01-01T10:00:00"}
		w := perform(t, router, http.MethodPost, "/api/meetings/7/tasks", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, errorDetail(t, w), "past date")
	})
}

func TestHandleGetTasks(t *testing.T) {
	t.Run("tasks of a meeting", func(t *testing.T) {
		taskService := &stubTaskService{
			tasks: []*models.Task{
				{ID: 1, MeetingID: 7, Content: "a", Status: models.StatusPending},
				{ID: 2, MeetingID: 7, Content: "b", Status: models.StatusCompleted},
			},
		}
		router := newTestRouter(&stubMeetingService{}, taskService)

		w := perform(t, router, http.MethodGet, "/api/meetings/7/tasks", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody[[]getTaskResponse](t, w)
		require.Len(t, resp, 2)
		assert.Equal(t, "a", resp[0].Content)
		assert.Equal(t, int64(7), taskService.gotID)
	})

	t.Run("unknown meeting yields empty array", func(t *testing.T) {
		router := newTestRouter(&stubMeetingService{}, &stubTaskService{})

		w := perform(t, router, http.MethodGet, "/api/meetings/99/tasks", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestHandleUpdateTask(t *testing.T) {
	t.Run("replaces the record", func(t *testing.T) {
		taskService := &stubTaskService{}
		router := newTestRouter(&stubMeetingService{}, taskService)

		body := map[string]any{"content": "revised", "status": models.StatusInProgress}
		w := perform(t, router, http.MethodPut, "/api/tasks/3", body)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, int64(3), taskService.gotID)
		assert.Equal(t, models.StatusInProgress, taskService.gotTask.Status)
	})

	t.Run("not found", func(t *testing.T) {
		taskService := &stubTaskService{err: services.ErrTaskNotFound}
		router := newTestRouter(&stubMeetingService{}, taskService)

		body := map[string]any{"content": "revised"}
		w := perform(t, router, http.MethodPut, "/api/tasks/99", body)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		router := newTestRouter(&stubMeetingService{}, &stubTaskService{})

		body := map[string]any{"content": ""}
		w := perform(t, router, http.MethodPut, "/api/tasks/3", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHandleDeleteTask(t *testing.T) {
	t.Run("returns the deleted task", func(t *testing.T) {
		taskService := &stubTaskService{
			task: &models.Task{ID: 3, MeetingID: 7, Content: "a", Status: models.StatusPending},
		}
		router := newTestRouter(&stubMeetingService{}, taskService)

		w := perform(t, router, http.MethodDelete, "/api/tasks/3", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody[getTaskResponse](t, w)
		assert.Equal(t, int64(3), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		taskService := &stubTaskService{err: services.ErrTaskNotFound}
		router := newTestRouter(&stubMeetingService{}, taskService)

		w := perform(t, router, http.MethodDelete, "/api/tasks/99", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
