package usecase

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/boredgames/internal/referee"
	"github.com/rocketscienceinc/boredgames/internal/tictactoe"
)

type boardReferee interface {
	Evaluate(board *tictactoe.Board) referee.Result
}

// Session drives a single game on behalf of a host: it forwards moves to the
// game and ends it once the referee decides the outcome.
type Session struct {
	mu sync.Mutex

	id     string
	logger *slog.Logger

	game      *tictactoe.Game
	presenter tictactoe.Presenter
	referee   boardReferee
}

// NewSession - starts a new game. newPresenter receives the session id so
// presenters can tag what they report with it.
func NewSession(logger *slog.Logger, ref boardReferee, newPresenter func(sessionID string) tictactoe.Presenter) *Session {
	id := uuid.NewString()
	presenter := newPresenter(id)

	return &Session{
		id:        id,
		logger:    logger.With("component", "session", "session", id),
		game:      tictactoe.NewGame(presenter),
		presenter: presenter,
		referee:   ref,
	}
}

func (that *Session) ID() string {
	return that.id
}

// MakeTurn - plays the current player at row, col and settles the game if the move decided it.
func (that *Session) MakeTurn(row, col int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "MakeTurn")

	player := that.game.CurrentPlayer()
	log.Debug("making turn", "player", player.Mark, "row", row, "col", col)

	if !that.game.Move(row, col) {
		return
	}

	switch result := that.referee.Evaluate(that.game.Board()); {
	case result.Winner != "":
		log.Info("game won", "winner", result.Winner)
		that.presenter.Winner(result.Winner)
		that.game.EndGame()
	case result.Draw:
		log.Info("game ended in a draw")
		that.game.EndGame()
	}
}

// End - ends the game regardless of the board.
func (that *Session) End() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game.EndGame()
}

func (that *Session) IsOver() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.IsOver()
}

// Game - exposes the underlying game. Callers must not use it concurrently with the session.
func (that *Session) Game() *tictactoe.Game {
	return that.game
}
