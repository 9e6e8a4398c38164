package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"edc-transfer/internal/models"
)

// ==================== Transfer Log Queries ====================

// RecordTransfer logs an initiated transfer. Re-recording the same transfer
// id is a no-op.
func (db *DB) RecordTransfer(ctx context.Context, record *models.TransferRecord) error {
	query := `
		INSERT INTO transfers (transfer_id, contract_id, asset_id, destination_type, initiated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (transfer_id) DO NOTHING
	`
	_, err := db.ExecContext(
		ctx, query,
		record.TransferID,
		record.ContractID,
		record.AssetID,
		record.DestinationType,
		record.InitiatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record transfer %s: %w", record.TransferID, err)
	}
	return nil
}

// ListTransfers returns logged transfers, newest first
func (db *DB) ListTransfers(ctx context.Context, limit, offset int) ([]models.TransferRecord, error) {
	records := []models.TransferRecord{}
	query := `
		SELECT transfer_id, contract_id, asset_id, destination_type, initiated_at
		FROM transfers
		ORDER BY initiated_at DESC
		LIMIT $1 OFFSET $2
	`
	if err := db.SelectContext(ctx, &records, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return records, nil
}

// ==================== Notification Queries ====================

type notificationRow struct {
	ID           string         `db:"id"`
	Level        string         `db:"level"`
	Message      string         `db:"message"`
	ActionLabel  sql.NullString `db:"action_label"`
	ActionTarget sql.NullString `db:"action_target"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r notificationRow) toModel() models.Notification {
	n := models.Notification{
		ID:        r.ID,
		Level:     models.NotificationLevel(r.Level),
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
	if r.ActionTarget.Valid {
		n.Action = &models.Action{Label: r.ActionLabel.String, Target: r.ActionTarget.String}
	}
	return n
}

// InsertNotification stores a notification
func (db *DB) InsertNotification(ctx context.Context, n *models.Notification) error {
	var label, target string
	if n.Action != nil {
		label, target = n.Action.Label, n.Action.Target
	}

	query := `
		INSERT INTO notifications (id, level, message, action_label, action_target, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := db.ExecContext(
		ctx, query,
		n.ID,
		n.Level,
		n.Message,
		ToNullString(label),
		ToNullString(target),
		n.CreatedAt,
	)
	return err
}

// ListNotifications returns the most recent notifications, newest first
func (db *DB) ListNotifications(ctx context.Context, limit int) ([]models.Notification, error) {
	var rows []notificationRow
	query := `
		SELECT id, level, message, action_label, action_target, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1
	`
	if err := db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]models.Notification, 0, len(rows))
	for _, r := range rows {
		notifications = append(notifications, r.toModel())
	}
	return notifications, nil
}
