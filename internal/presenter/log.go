package presenter

import (
	"log/slog"

	"github.com/rocketscienceinc/boredgames/internal/entity"
)

// Log reports every notification as a structured log record.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger, sessionID string) *Log {
	return &Log{
		logger: logger.With("component", "presenter", "session", sessionID),
	}
}

func (that *Log) MoveMade(move entity.Move) {
	that.logger.Info("move made", "player", move.Player.Mark, "row", move.Row, "col", move.Col)
}

func (that *Log) Error(err error) {
	that.logger.Warn("move rejected", "error", err)
}

func (that *Log) GameOver() {
	that.logger.Info("game over")
}

func (that *Log) Winner(mark string) {
	that.logger.Info("winner", "player", mark)
}
