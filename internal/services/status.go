package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

// ErrNotAcknowledged is returned when the store does not acknowledge a write.
var ErrNotAcknowledged = errors.New("store did not acknowledge the write")

// StatusCheckWriter defines write operations for status checks.
type StatusCheckWriter interface {
	Save(ctx context.Context, check models.StatusCheck) (bool, error) // Inserts a status check, reports acknowledgement
}

// StatusCheckReader defines read operations for status checks.
type StatusCheckReader interface {
	List(ctx context.Context, platform *string, limit int64) ([]models.StatusCheck, error)       // Newest first, optional platform filter
	ListSince(ctx context.Context, since *time.Time, limit int64) ([]models.StatusCheck, error)  // Records at or after since
	Count(ctx context.Context) (int64, error)                                                    // Total record count
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// StatusService handles status check creation and listing, with optional
// event publishing.
type StatusService struct {
	writer      StatusCheckWriter
	reader      StatusCheckReader
	kafkaWriter KafkaWriter
}

// NewStatusService creates a new StatusService. kafkaWriter may be nil, in
// which case events are not published.
func NewStatusService(writer StatusCheckWriter, reader StatusCheckReader, kafkaWriter KafkaWriter) *StatusService {
	return &StatusService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Create persists a new status check and returns the stored record.
func (s *StatusService) Create(ctx context.Context, clientName string, platform, version *string) (*models.StatusCheck, error) {
	check := models.NewStatusCheck(clientName, platform, version)

	acknowledged, err := s.writer.Save(ctx, check)
	if err != nil {
		logger.Log.Errorw("failed to save status check", "client_name", clientName, "error", err)
		return nil, err
	}
	if !acknowledged {
		logger.Log.Errorw("status check write not acknowledged", "id", check.ID)
		return nil, ErrNotAcknowledged
	}

	s.publishStatusCheck(ctx, check)

	return &check, nil
}

// List returns up to limit status checks, newest first.
func (s *StatusService) List(ctx context.Context, platform *string, limit int64) ([]models.StatusCheck, error) {
	checks, err := s.reader.List(ctx, platform, limit)
	if err != nil {
		logger.Log.Errorw("failed to list status checks", "error", err)
		return nil, err
	}
	return checks, nil
}

// publishStatusCheck publishes a created status check to Kafka.
func (s *StatusService) publishStatusCheck(ctx context.Context, check models.StatusCheck) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "status_check_id", check.ID)
		return
	}

	data, err := json.Marshal(check)
	if err != nil {
		logger.Log.Errorw("Failed to marshal status check for Kafka", "status_check_id", check.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(check.ID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish status check to Kafka", "status_check_id", check.ID, "error", err)
	} else {
		logger.Log.Infow("Status check published to Kafka", "status_check_id", check.ID, "client_name", check.ClientName)
	}
}
