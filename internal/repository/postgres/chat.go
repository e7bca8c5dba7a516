package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/repository"
)

type chatRepository struct {
	db *sql.DB
}

func NewChatRepository(db *sql.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) GetConversationBySession(ctx context.Context, sessionID string) (*domain.Conversation, error) {
	c := &domain.Conversation{}
	var userID sql.NullString
	query := `SELECT id, session_id, user_id, created_on, updated_on FROM chat_conversations WHERE session_id = $1`
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&c.ID, &c.SessionID, &userID, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	c.UserID = userID.String
	return c, nil
}

func (r *chatRepository) CreateConversation(ctx context.Context, c *domain.Conversation) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	var userID sql.NullString
	if c.UserID != "" {
		userID = sql.NullString{String: c.UserID, Valid: true}
	}
	query := `INSERT INTO chat_conversations (id, session_id, user_id, created_on, updated_on) VALUES ($1, $2, $3, $4, $5)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, c.ID, c.SessionID, userID, now, now)
	return err
}

func (r *chatRepository) TouchConversation(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE chat_conversations SET updated_on=$1 WHERE id=$2`, time.Now(), id)
	return err
}

func (r *chatRepository) AppendMessage(ctx context.Context, m *domain.ChatMessage) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `INSERT INTO chat_messages (id, conversation_id, role, content, created_on) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.ConversationID, m.Role, m.Content, time.Now())
	return err
}

func (r *chatRepository) ListMessages(ctx context.Context, conversationID string) ([]domain.ChatMessage, error) {
	query := `SELECT id, conversation_id, role, content, created_on FROM chat_messages WHERE conversation_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.CreatedOn); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// DeleteIdleBefore removes conversations with no activity since the cutoff.
// Messages go first; chat_messages has no ON DELETE CASCADE.
func (r *chatRepository) DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM chat_messages WHERE conversation_id IN (SELECT id FROM chat_conversations WHERE updated_on < $1)`, cutoff)
	if err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM chat_conversations WHERE updated_on < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, tx.Commit()
}
