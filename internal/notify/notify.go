//go:generate go run go.uber.org/mock/mockgen -source=notify.go -destination=../mocks/mock_notifier.go -package=mocks

// Package notify delivers user-visible transfer notifications.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"edc-transfer/internal/models"
)

// TransferHistoryAction sends the operator to the transfer history view
var TransferHistoryAction = &models.Action{Label: "Show me!", Target: "/transfer-history"}

// Notifier is a fire-and-forget notification sink
type Notifier interface {
	Info(ctx context.Context, message string, action *models.Action)
	Error(ctx context.Context, message string)
}

// Store persists notifications
type Store interface {
	InsertNotification(ctx context.Context, n *models.Notification) error
}

// LogNotifier writes notifications to the log only
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by zap
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notify")}
}

func (n *LogNotifier) Info(_ context.Context, message string, action *models.Action) {
	fields := []zap.Field{zap.String("message", message)}
	if action != nil {
		fields = append(fields, zap.String("action", action.Label), zap.String("target", action.Target))
	}
	n.logger.Info("Notification", fields...)
}

func (n *LogNotifier) Error(_ context.Context, message string) {
	n.logger.Error("Notification", zap.String("message", message))
}

// StoreNotifier persists notifications so the API can serve them as a feed
type StoreNotifier struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewStoreNotifier creates a notifier that persists through store
func NewStoreNotifier(store Store, logger *zap.Logger) *StoreNotifier {
	return &StoreNotifier{
		store:  store,
		logger: logger.Named("notify"),
		now:    time.Now,
	}
}

func (n *StoreNotifier) Info(ctx context.Context, message string, action *models.Action) {
	n.publish(ctx, models.NotificationLevelInfo, message, action)
}

func (n *StoreNotifier) Error(ctx context.Context, message string) {
	n.publish(ctx, models.NotificationLevelError, message, nil)
}

func (n *StoreNotifier) publish(ctx context.Context, level models.NotificationLevel, message string, action *models.Action) {
	notification := &models.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		Action:    action,
		CreatedAt: n.now().UTC(),
	}

	logLevel := zap.InfoLevel
	if level == models.NotificationLevelError {
		logLevel = zap.ErrorLevel
	}
	n.logger.Log(logLevel, "Notification",
		zap.String("id", notification.ID),
		zap.String("level", string(level)),
		zap.String("message", message))

	// The caller's context may already be done (e.g. a finished HTTP request)
	if err := n.store.InsertNotification(context.WithoutCancel(ctx), notification); err != nil {
		n.logger.Error("Failed to persist notification",
			zap.String("id", notification.ID),
			zap.Error(err))
	}
}
