package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kohakudev/minutes-api/internal/models"
	"github.com/kohakudev/minutes-api/internal/validation"
)

type getTaskResponse struct {
	ID        int64      `json:"id"`
	MeetingID int64      `json:"meeting_id"`
	Content   string     `json:"content"`
	Assignee  *string    `json:"assignee"`
	DueDate   *time.Time `json:"due_date"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:        task.ID,
		MeetingID: task.MeetingID,
		Content:   task.Content,
		Assignee:  task.Assignee,
		DueDate:   task.DueDate,
		Status:    task.Status,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

type createTaskRequest struct {
	Content  string  `json:"content"`
	Assignee *string `json:"assignee,omitempty"`
	DueDate  *string `json:"due_date,omitempty"`
	Status   string  `json:"status"`
}

// validate applies the task rule set and returns the task model ready for
// the service layer. A missing status defaults to pending before validation.
func (r createTaskRequest) validate(now time.Time) (*models.Task, error) {
	status := r.Status
	if status == "" {
		status = models.StatusPending
	}

	dueDate, err := validation.Task(validation.TaskInput{
		Content:  r.Content,
		Assignee: r.Assignee,
		DueDate:  r.DueDate,
		Status:   status,
	}, now)
	if err != nil {
		return nil, err
	}

	return &models.Task{
		Content:  r.Content,
		Assignee: r.Assignee,
		DueDate:  dueDate,
		Status:   status,
	}, nil
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	meetingID, err := pathID(c, "meeting")
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	var req createTaskRequest
	err = c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, http.StatusUnprocessableEntity, detailInvalidRequestBody)
		return
	}

	task, err := req.validate(time.Now())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	task.MeetingID = meetingID

	task, err = h.tasks.CreateTask(c, task)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	meetingID, err := pathID(c, "meeting")
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	tasks, err := h.tasks.GetTasksByMeetingID(c, meetingID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	response := make([]getTaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newGetTaskResponse(task)
	}
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID, err := pathID(c, "task")
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	var req createTaskRequest
	err = c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, http.StatusUnprocessableEntity, detailInvalidRequestBody)
		return
	}

	task, err := req.validate(time.Now())
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	task, err = h.tasks.UpdateTask(c, taskID, task)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, err := pathID(c, "task")
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	task, err := h.tasks.DeleteTask(c, taskID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetTaskResponse(task))
}
