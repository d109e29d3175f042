package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kohakudev/minutes-api/internal/apperr"
	"github.com/kohakudev/minutes-api/internal/models"
	"github.com/kohakudev/minutes-api/internal/validation"
)

type getMeetingResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Date          time.Time         `json:"date"`
	StartTime     string            `json:"start_time"`
	EndTime       string            `json:"end_time"`
	Participants  []string          `json:"participants"`
	AudioFilePath *string           `json:"audio_file_path"`
	Transcript    *string           `json:"transcript"`
	Summary       *string           `json:"summary"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Tasks         []getTaskResponse `json:"tasks"`
}

func newGetMeetingResponse(meeting *models.Meeting) getMeetingResponse {
	participants := meeting.Participants
	if participants == nil {
		participants = []string{}
	}

	tasks := make([]getTaskResponse, len(meeting.Tasks))
	for i, task := range meeting.Tasks {
		tasks[i] = newGetTaskResponse(task)
	}

	return getMeetingResponse{
		ID:            meeting.ID,
		Title:         meeting.Title,
		Date:          meeting.Date,
		StartTime:     meeting.StartTime,
		EndTime:       meeting.EndTime,
		Participants:  participants,
		AudioFilePath: meeting.AudioFilePath,
		Transcript:    meeting.Transcript,
		Summary:       meeting.Summary,
		CreatedAt:     meeting.CreatedAt,
		UpdatedAt:     meeting.UpdatedAt,
		Tasks:         tasks,
	}
}

type createMeetingRequest struct {
	Title         string   `json:"title"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Participants  []string `json:"participants"`
	AudioFilePath *string  `json:"audio_file_path,omitempty"`
	Transcript    *string  `json:"transcript,omitempty"`
	Summary       *string  `json:"summary,omitempty"`
}

func (r createMeetingRequest) toModel(date time.Time) *models.Meeting {
	return &models.Meeting{
		Title:         r.Title,
		Date:          date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Participants:  r.Participants,
		AudioFilePath: r.AudioFilePath,
		Transcript:    r.Transcript,
		Summary:       r.Summary,
	}
}

func (h *handlerImpl) HandleCreateMeeting(c *gin.Context) {
	var req createMeetingRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, http.StatusUnprocessableEntity, detailInvalidRequestBody)
		return
	}

	date, err := validation.Meeting(validation.MeetingInput{
		Title:        req.Title,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Participants: req.Participants,
	}, time.Now())
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	meeting, err := h.meetings.CreateMeeting(c, req.toModel(date))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetMeetingResponse(meeting))
}

func (h *handlerImpl) HandleGetMeetings(c *gin.Context) {
	skip, err := queryUint32(c, "skip", 0)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	limit, err := queryUint32(c, "limit", 100)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	meetings, err := h.meetings.GetMeetings(c, skip, limit)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	response := make([]getMeetingResponse, len(meetings))
	for i, meeting := range meetings {
		response[i] = newGetMeetingResponse(meeting)
	}
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetMeeting(c *gin.Context) {
	meetingID, err := pathID(c, "meeting")
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	meeting, err := h.meetings.GetMeetingByID(c, meetingID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetMeetingResponse(meeting))
}

func (h *handlerImpl) HandleUpdateMeeting(c *gin.Context) {
	meetingID, err := pathID(c, "meeting")
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	var req createMeetingRequest
	err = c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, http.StatusUnprocessableEntity, detailInvalidRequestBody)
		return
	}

	date, err := validation.Meeting(validation.MeetingInput{
		Title:        req.Title,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Participants: req.Participants,
	}, time.Now())
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	meeting, err := h.meetings.UpdateMeeting(c, meetingID, req.toModel(date))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetMeetingResponse(meeting))
}

func (h *handlerImpl) HandleDeleteMeeting(c *gin.Context) {
	meetingID, err := pathID(c, "meeting")
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	meeting, err := h.meetings.DeleteMeeting(c, meetingID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetMeetingResponse(meeting))
}

func pathID(c *gin.Context, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.Validationf("%s id must be an integer", resource)
	}
	return id, nil
}

func queryUint32(c *gin.Context, name string, fallback uint32) (uint32, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.Validationf("%s must be a non-negative integer", name)
	}
	return uint32(value), nil
}
