package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kohakudev/minutes-api/internal/models"
)

const maxMeetingsLimit = 1000

// clampMeetingsLimit caps the client-supplied page size before it reaches
// the query and the result preallocation. An explicit zero stays zero.
func clampMeetingsLimit(limit uint32) uint32 {
	if limit > maxMeetingsLimit {
		return maxMeetingsLimit
	}
	return limit
}

type meetingServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewMeetingService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) MeetingService {
	return &meetingServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *meetingServiceImpl) CreateMeeting(ctx context.Context, meeting *models.Meeting) (*models.Meeting, error) {
	now := time.Now().UTC()
	meeting = &models.Meeting{
		Title:         meeting.Title,
		Date:          meeting.Date,
		StartTime:     meeting.StartTime,
		EndTime:       meeting.EndTime,
		Participants:  meeting.Participants,
		AudioFilePath: meeting.AudioFilePath,
		Transcript:    meeting.Transcript,
		Summary:       meeting.Summary,
		CreatedAt:     now,
		UpdatedAt:     now,
		Tasks:         []*models.Task{},
	}

	const insertMeetingQuery = `
INSERT INTO meetings (title,
                      date,
                      start_time,
                      end_time,
                      participants,
                      audio_file_path,
                      transcript,
                      summary,
                      created_at,
                      updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`
	err := s.pgPool.QueryRow(
		ctx,
		insertMeetingQuery,
		meeting.Title,
		meeting.Date,
		meeting.StartTime,
		meeting.EndTime,
		encodeParticipants(meeting.Participants),
		meeting.AudioFilePath,
		meeting.Transcript,
		meeting.Summary,
		meeting.CreatedAt,
		meeting.UpdatedAt,
	).Scan(&meeting.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert meeting")
		return nil, err
	}
	s.logger.Debug().
		Int64("meeting_id", meeting.ID).
		Msg("inserted meeting")

	if meeting.Participants == nil {
		meeting.Participants = []string{}
	}

	s.logger.Info().
		Int64("meeting_id", meeting.ID).
		Msg("created meeting")
	return meeting, nil
}

func (s *meetingServiceImpl) GetMeetings(ctx context.Context, skip, limit uint32) ([]*models.Meeting, error) {
	limit = clampMeetingsLimit(limit)

	const selectMeetingsQuery = `
SELECT id,
       title,
       date,
       start_time,
       end_time,
       participants,
       audio_file_path,
       transcript,
       summary,
       created_at,
       updated_at
FROM meetings
ORDER BY id
LIMIT $1 OFFSET $2
`
	rows, err := s.pgPool.Query(
		ctx,
		selectMeetingsQuery,
		limit,
		skip,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select meetings")
		return nil, err
	}
	defer rows.Close()

	meetings := make([]*models.Meeting, 0, limit)
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan meeting")
			return nil, err
		}
		meetings = append(meetings, meeting)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Info().
		Int("count", len(meetings)).
		Msg("fetched meetings")
	return meetings, nil
}

func (s *meetingServiceImpl) GetMeetingByID(ctx context.Context, id int64) (*models.Meeting, error) {
	const selectMeetingByIDQuery = `
SELECT id,
       title,
       date,
       start_time,
       end_time,
       participants,
       audio_file_path,
       transcript,
       summary,
       created_at,
       updated_at
FROM meetings
WHERE id = $1
`
	row := s.pgPool.QueryRow(ctx, selectMeetingByIDQuery, id)
	meeting, err := scanMeeting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Int64("meeting_id", id).
				Msg("meeting not found")
			return nil, ErrMeetingNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("meeting_id", id).
			Msg("failed to select meeting")
		return nil, err
	}

	tasks, err := selectTasksByMeetingID(ctx, s.pgPool, s.logger, id)
	if err != nil {
		return nil, err
	}
	meeting.Tasks = tasks

	s.logger.Info().
		Int64("meeting_id", id).
		Msg("fetched meeting")
	return meeting, nil
}

func (s *meetingServiceImpl) UpdateMeeting(ctx context.Context, id int64, meeting *models.Meeting) (*models.Meeting, error) {
	updated := &models.Meeting{
		ID:            id,
		Title:         meeting.Title,
		Date:          meeting.Date,
		StartTime:     meeting.StartTime,
		EndTime:       meeting.EndTime,
		Participants:  meeting.Participants,
		AudioFilePath: meeting.AudioFilePath,
		Transcript:    meeting.Transcript,
		Summary:       meeting.Summary,
		UpdatedAt:     time.Now().UTC(),
		Tasks:         []*models.Task{},
	}

	const updateMeetingQuery = `
UPDATE meetings
SET title           = $1,
    date            = $2,
    start_time      = $3,
    end_time        = $4,
    participants    = $5,
    audio_file_path = $6,
    transcript      = $7,
    summary         = $8,
    updated_at      = $9
WHERE id = $10
RETURNING created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		updateMeetingQuery,
		updated.Title,
		updated.Date,
		updated.StartTime,
		updated.EndTime,
		encodeParticipants(updated.Participants),
		updated.AudioFilePath,
		updated.Transcript,
		updated.Summary,
		updated.UpdatedAt,
		updated.ID,
	).Scan(&updated.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Int64("meeting_id", id).
				Msg("meeting not found")
			return nil, ErrMeetingNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("meeting_id", id).
			Msg("failed to update meeting")
		return nil, err
	}

	if updated.Participants == nil {
		updated.Participants = []string{}
	}

	s.logger.Info().
		Int64("meeting_id", id).
		Msg("updated meeting")
	return updated, nil
}

func (s *meetingServiceImpl) DeleteMeeting(ctx context.Context, id int64) (*models.Meeting, error) {
	// Tasks go with the meeting via ON DELETE CASCADE.
	const deleteMeetingQuery = `
DELETE FROM meetings
WHERE id = $1
RETURNING id,
          title,
          date,
          start_time,
          end_time,
          participants,
          audio_file_path,
          transcript,
          summary,
          created_at,
          updated_at
`
	row := s.pgPool.QueryRow(ctx, deleteMeetingQuery, id)
	meeting, err := scanMeeting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Int64("meeting_id", id).
				Msg("meeting not found")
			return nil, ErrMeetingNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("meeting_id", id).
			Msg("failed to delete meeting")
		return nil, err
	}

	s.logger.Info().
		Int64("meeting_id", id).
		Msg("deleted meeting")
	return meeting, nil
}

func scanMeeting(row pgx.Row) (*models.Meeting, error) {
	meeting := &models.Meeting{Tasks: []*models.Task{}}

	var participants *string
	err := row.Scan(
		&meeting.ID,
		&meeting.Title,
		&meeting.Date,
		&meeting.StartTime,
		&meeting.EndTime,
		&participants,
		&meeting.AudioFilePath,
		&meeting.Transcript,
		&meeting.Summary,
		&meeting.CreatedAt,
		&meeting.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	meeting.Participants = decodeParticipants(participants)
	return meeting, nil
}
