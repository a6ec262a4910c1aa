package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/contact-book/models"
	"go.uber.org/zap"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, request_id, method, path, payload, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		query,
		entry.Timestamp,
		entry.RequestID,
		entry.Method,
		entry.Path,
		entry.Payload,
		entry.UserAgent,
		entry.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}
	entry.ID = id
	return nil
}

// ListRecent returns the newest entries first
func (r *sqliteAuditRepository) ListRecent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	query := `
		SELECT id, timestamp, request_id, method, path, payload, user_agent, ip_address
		FROM audit_log
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var entry models.AuditLogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.RequestID,
			&entry.Method,
			&entry.Path,
			&entry.Payload,
			&entry.UserAgent,
			&entry.IPAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}

// logAuditRepository writes entries to the application log only
type logAuditRepository struct {
	logger *zap.Logger
}

// NewLogAuditRepository creates an audit repository that only logs
func NewLogAuditRepository(logger *zap.Logger) AuditRepository {
	return &logAuditRepository{logger: logger}
}

func (r *logAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	r.logger.Info("audit",
		zap.String("request_id", entry.RequestID),
		zap.String("method", entry.Method),
		zap.String("path", entry.Path),
		zap.String("payload", entry.Payload),
		zap.String("user_agent", entry.UserAgent),
		zap.String("ip", entry.IPAddress),
	)
	return nil
}

func (r *logAuditRepository) ListRecent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	return nil, fmt.Errorf("audit log is not persisted; enable audit.enabled to keep entries")
}
