package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "woodpantry.topic"
	routingKey   = "recipe.created"
)

// RecipeCreated describes a newly stored recipe.
type RecipeCreated struct {
	RecipeID   int64
	RecipeName string
	Extracted  bool
}

// RecipeCreatedPublisher publishes recipe.created events.
type RecipeCreatedPublisher struct {
	conn *amqp.Connection
}

type recipeCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Timestamp  string    `json:"timestamp"`
	RecipeID   int64     `json:"recipe_id"`
	RecipeName string    `json:"recipe_name"`
	Extracted  bool      `json:"extracted"`
}

// NewRecipeCreatedPublisher creates a RabbitMQ publisher and ensures the
// shared topic exchange exists.
func NewRecipeCreatedPublisher(rabbitmqURL string) (*RecipeCreatedPublisher, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchangeName, err)
	}

	return &RecipeCreatedPublisher{conn: conn}, nil
}

func newRecipeCreatedEvent(e RecipeCreated, now time.Time) recipeCreatedEvent {
	return recipeCreatedEvent{
		EventID:    uuid.New(),
		Timestamp:  now.UTC().Format(time.RFC3339),
		RecipeID:   e.RecipeID,
		RecipeName: e.RecipeName,
		Extracted:  e.Extracted,
	}
}

// PublishRecipeCreated publishes a persistent recipe.created message.
func (p *RecipeCreatedPublisher) PublishRecipeCreated(ctx context.Context, e RecipeCreated) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	now := time.Now()
	event := newRecipeCreatedEvent(e, now)
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal recipe.created event: %w", err)
	}

	if err := ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID.String(),
		Timestamp:    now.UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish recipe.created: %w", err)
	}

	return nil
}

// Close closes the RabbitMQ connection.
func (p *RecipeCreatedPublisher) Close() error {
	return p.conn.Close()
}
