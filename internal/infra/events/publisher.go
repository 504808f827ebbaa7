package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Routing keys событий жизненного цикла бронирования
const (
	KeyRentalCreated = "rental.created"
	KeyRentalUpdated = "rental.updated"
	KeyRentalDeleted = "rental.deleted"
)

// RentalEvent тело события, публикуемого в topic exchange
type RentalEvent struct {
	RentalID   int64  `json:"rentalId"`
	ItemID     int64  `json:"itemId"`
	ItemName   string `json:"itemName,omitempty"`
	Date       string `json:"date"`
	Period     string `json:"period"`
	ClassSlot  string `json:"classSlot"`
	Room       string `json:"room,omitempty"`
	ClientID   int64  `json:"clientId"`
	ActorID    int64  `json:"actorId"`
	OccurredAt string `json:"occurredAt"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований в RabbitMQ.
// Публикация best-effort: недоступность брокера логируется и не влияет
// на результат бронирования.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      Logger
}

// NewPublisher подключается к брокеру и объявляет topic exchange
func NewPublisher(url, exchange string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("events: declare exchange %s: %w", exchange, err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

// RentalCreated публикует событие о созданном бронировании
func (p *Publisher) RentalCreated(ctx context.Context, rental *domain.Rental, actorID int64) {
	p.publish(ctx, KeyRentalCreated, rental, actorID)
}

// RentalUpdated публикует событие об измененном бронировании
func (p *Publisher) RentalUpdated(ctx context.Context, rental *domain.Rental, actorID int64) {
	p.publish(ctx, KeyRentalUpdated, rental, actorID)
}

// RentalDeleted публикует событие об удаленном бронировании
func (p *Publisher) RentalDeleted(ctx context.Context, rental *domain.Rental, actorID int64) {
	p.publish(ctx, KeyRentalDeleted, rental, actorID)
}

func (p *Publisher) publish(ctx context.Context, key string, rental *domain.Rental, actorID int64) {
	event := RentalEvent{
		RentalID:   rental.ID,
		ItemID:     rental.ItemID,
		ItemName:   rental.ItemName,
		Date:       rental.Date.Format(domain.DateFormat),
		Period:     string(rental.Period),
		ClassSlot:  string(rental.ClassSlot),
		Room:       rental.Room,
		ClientID:   rental.ClientID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("events: failed to marshal %s for rental id=%d: %v", key, rental.ID, err)
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		p.log.Error("events: failed to publish %s for rental id=%d: %v", key, rental.ID, err)
		return
	}

	p.log.Info("events: published %s for rental id=%d", key, rental.ID)
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
