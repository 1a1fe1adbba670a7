package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/sitesafe/violations/internal/entity"
)

type Producer struct {
	l                     *slog.Logger
	w                     *kafka.Writer
	violationCreatedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                     l,
		w:                     w,
		violationCreatedTopic: topic,
	}
}

type ViolationCreatedEvent struct {
	ViolationID uuid.UUID `json:"violation_id"`
	WorkerID    uuid.UUID `json:"worker_id"`
	EmployeeID  string    `json:"employee_id"`
	Category    string    `json:"category"`
	Zone        string    `json:"zone"`
	DetectedAt  time.Time `json:"detected_at"`
}

// SendViolationCreated notifies downstream consumers (the notification
// service) about a freshly recorded violation. Delivery is async and
// best-effort.
func (p *Producer) SendViolationCreated(ctx context.Context, row entity.ViolationRow) {
	event := ViolationCreatedEvent{
		ViolationID: row.ID,
		WorkerID:    row.WorkerID,
		EmployeeID:  row.EmployeeID,
		Category:    row.Category.String(),
		Zone:        row.Zone,
		DetectedAt:  row.DetectedAt,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(row.ID.String()),
		Value: b,
		Topic: p.violationCreatedTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
