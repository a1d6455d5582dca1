package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/app/models/dto"
)

// Message error types
var (
	// ErrMessageNotFound is returned when the message row is absent.
	ErrMessageNotFound = ErrNotFound
)

// MessageRepository handles support message database operations
type MessageRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db DB) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new open, unassigned message and returns the stored row
func (r *MessageRepository) Create(ctx context.Context, studentID int64, subject, body string) (*models.Message, error) {
	sql, args, err := r.sb.Insert("messages").
		Columns("student_id", "admin_id", "subject", "message", "status").
		Values(studentID, nil, subject, body, models.MessageStatusOpen).
		Suffix("RETURNING id, student_id, admin_id, subject, message, status, sent_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create message query: %w", err)
	}

	message := &models.Message{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&message.ID, &message.StudentID, &message.AdminID,
		&message.Subject, &message.Message, &message.Status, &message.SentAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating message: %w", err)
	}

	return message, nil
}

// List returns messages joined with the sending student's identity,
// newest first, narrowed by the optional filters.
func (r *MessageRepository) List(ctx context.Context, filter *dto.MessageFilter) ([]*dto.AdminMessageResponse, error) {
	query := r.sb.Select(
		"m.id", "m.subject", "m.message", "m.status", "m.sent_at",
		"u.first_name || ' ' || u.last_name AS student_name",
		"u.email AS student_email",
	).
		From("messages m").
		Join("users u ON u.id = m.student_id")

	if filter != nil {
		if filter.Name != "" {
			query = query.Where(squirrel.Expr("(u.first_name || ' ' || u.last_name) ILIKE ?", "%"+filter.Name+"%"))
		}
		if filter.Subject != "" {
			query = query.Where(squirrel.Expr("m.subject ILIKE ?", "%"+filter.Subject+"%"))
		}
		if filter.Status != "" {
			query = query.Where(squirrel.Eq{"m.status": filter.Status})
		}
	}

	sql, args, err := query.OrderBy("m.sent_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	messages := []*dto.AdminMessageResponse{}
	for rows.Next() {
		msg := &dto.AdminMessageResponse{}
		err := rows.Scan(
			&msg.ID, &msg.Subject, &msg.Message, &msg.Status, &msg.SentAt,
			&msg.StudentName, &msg.StudentEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// Resolve marks a message as resolved by the given admin and returns the
// updated row. Resolving an already-resolved message re-stamps the resolver.
func (r *MessageRepository) Resolve(ctx context.Context, id, adminID int64) (*models.Message, error) {
	sql, args, err := r.sb.Update("messages").
		Set("admin_id", adminID).
		Set("status", models.MessageStatusResolved).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, student_id, admin_id, subject, message, status, sent_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build resolve message query: %w", err)
	}

	message := &models.Message{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&message.ID, &message.StudentID, &message.AdminID,
		&message.Subject, &message.Message, &message.Status, &message.SentAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("error resolving message: %w", err)
	}

	return message, nil
}
