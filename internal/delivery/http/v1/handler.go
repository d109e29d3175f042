package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kohakudev/minutes-api/internal/services"
)

type Handler interface {
	HandleRequestIDMiddleware(c *gin.Context)
	HandleRoot(c *gin.Context)

	HandleCreateMeeting(c *gin.Context)
	HandleGetMeetings(c *gin.Context)
	HandleGetMeeting(c *gin.Context)
	HandleUpdateMeeting(c *gin.Context)
	HandleDeleteMeeting(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	meetings services.MeetingService
	tasks    services.TaskService
}

func New(
	logger zerolog.Logger,
	meetingService services.MeetingService,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger:   logger,
		meetings: meetingService,
		tasks:    taskService,
	}
}

func (h *handlerImpl) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Meeting Minutes API"})
}
