package presenter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/boredgames/internal/entity"
)

const publishTimeout = 5 * time.Second

const (
	EventMoveMade = "move_made"
	EventError    = "error"
	EventGameOver = "game_over"
	EventWinner   = "winner"
)

// Event is the JSON document published for every notification.
type Event struct {
	Session string       `json:"session"`
	Kind    string       `json:"kind"`
	Move    *entity.Move `json:"move,omitempty"`
	Error   string       `json:"error,omitempty"`
	Winner  string       `json:"winner,omitempty"`
}

// Redis publishes notifications on a per-session pub/sub channel.
type Redis struct {
	logger *slog.Logger
	client *redis.Client

	sessionID string
	channel   string
}

func NewRedis(logger *slog.Logger, client *redis.Client, channelPrefix, sessionID string) *Redis {
	return &Redis{
		logger:    logger.With("component", "redis-presenter", "session", sessionID),
		client:    client,
		sessionID: sessionID,
		channel:   Channel(channelPrefix, sessionID),
	}
}

// Channel - returns the channel events of a session are published on.
func Channel(prefix, sessionID string) string {
	return prefix + ":" + sessionID
}

func (that *Redis) MoveMade(move entity.Move) {
	that.publish(Event{Kind: EventMoveMade, Move: &move})
}

func (that *Redis) Error(err error) {
	that.publish(Event{Kind: EventError, Error: err.Error()})
}

func (that *Redis) GameOver() {
	that.publish(Event{Kind: EventGameOver})
}

func (that *Redis) Winner(mark string) {
	that.publish(Event{Kind: EventWinner, Winner: mark})
}

// publish never fails the caller, errors only end up in the log.
func (that *Redis) publish(event Event) {
	event.Session = that.sessionID

	if err := that.send(event); err != nil {
		that.logger.Error("failed to publish event", "kind", event.Kind, "error", err)
	}
}

func (that *Redis) send(event Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", that.channel, err)
	}

	return nil
}
