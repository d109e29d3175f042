package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kohakudev/minutes-api/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	now := time.Now().UTC()
	task = &models.Task{
		MeetingID: task.MeetingID,
		Content:   task.Content,
		Assignee:  task.Assignee,
		DueDate:   task.DueDate,
		Status:    task.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	const insertTaskQuery = `
INSERT INTO tasks (meeting_id,
                   content,
                   assignee,
                   due_date,
                   status,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`
	err := s.pgPool.QueryRow(
		ctx,
		insertTaskQuery,
		task.MeetingID,
		task.Content,
		task.Assignee,
		task.DueDate,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			s.logger.Warn().
				Int64("meeting_id", task.MeetingID).
				Msg("meeting not found")
			return nil, ErrMeetingNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("meeting_id", task.MeetingID).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("meeting_id", task.MeetingID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) GetTasksByMeetingID(ctx context.Context, meetingID int64) ([]*models.Task, error) {
	tasks, err := selectTasksByMeetingID(ctx, s.pgPool, s.logger, meetingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Int64("meeting_id", meetingID).
		Msg("fetched tasks")
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, task *models.Task) (*models.Task, error) {
	updated := &models.Task{
		ID:        id,
		Content:   task.Content,
		Assignee:  task.Assignee,
		DueDate:   task.DueDate,
		Status:    task.Status,
		UpdatedAt: time.Now().UTC(),
	}
	if updated.Status == "" {
		updated.Status = models.StatusPending
	}

	const updateTaskQuery = `
UPDATE tasks
SET content    = $1,
    assignee   = $2,
    due_date   = $3,
    status     = $4,
    updated_at = $5
WHERE id = $6
RETURNING meeting_id, created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		updateTaskQuery,
		updated.Content,
		updated.Assignee,
		updated.DueDate,
		updated.Status,
		updated.UpdatedAt,
		updated.ID,
	).Scan(
		&updated.MeetingID,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Int64("task_id", id).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("updated task")
	return updated, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (*models.Task, error) {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
RETURNING id,
          meeting_id,
          content,
          assignee,
          due_date,
          status,
          created_at,
          updated_at
`
	task := new(models.Task)
	err := s.pgPool.QueryRow(ctx, deleteTaskQuery, id).Scan(
		&task.ID,
		&task.MeetingID,
		&task.Content,
		&task.Assignee,
		&task.DueDate,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Int64("task_id", id).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return task, nil
}

func selectTasksByMeetingID(
	ctx context.Context,
	pgPool *pgxpool.Pool,
	logger zerolog.Logger,
	meetingID int64,
) ([]*models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       meeting_id,
       content,
       assignee,
       due_date,
       status,
       created_at,
       updated_at
FROM tasks
WHERE meeting_id = $1
ORDER BY id
`
	rows, err := pgPool.Query(ctx, selectTasksQuery, meetingID)
	if err != nil {
		logger.Error().
			Err(err).
			Int64("meeting_id", meetingID).
			Msg("failed to select tasks")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task := new(models.Task)
		err = rows.Scan(
			&task.ID,
			&task.MeetingID,
			&task.Content,
			&task.Assignee,
			&task.DueDate,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	return tasks, nil
}
