package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/boredgames/internal/apperror"
	"github.com/rocketscienceinc/boredgames/internal/entity"
)

type State int

const (
	StateInProgress State = iota
	StateOver
)

func (that State) String() string {
	switch that {
	case StateInProgress:
		return "In Progress!"
	case StateOver:
		return "Game Over!"
	default:
		return fmt.Sprintf("State(%d)", int(that))
	}
}

// Game owns the board and the turn order. It does not detect wins,
// EndGame has to be called by whoever does.
type Game struct {
	presenter Presenter
	board     *Board
	state     State

	players [2]entity.Player
	turn    int
}

func NewGame(presenter Presenter) *Game {
	return &Game{
		presenter: presenter,
		board:     NewBoard(),
		state:     StateInProgress,
		players:   [2]entity.Player{entity.NewPlayer(entity.PlayerX), entity.NewPlayer(entity.PlayerO)},
		turn:      0,
	}
}

// Move - plays the current player at the given coordinates. The outcome is
// reported to the presenter; the turn only advances when the move succeeds.
// The returned flag tells whether the board changed.
func (that *Game) Move(row, col int) bool {
	move := entity.NewMove(that.CurrentPlayer(), row, col)

	if err := that.apply(move); err != nil {
		that.presenter.Error(err)
		return false
	}

	that.presenter.MoveMade(move)
	that.nextPlayer()

	return true
}

// EndGame - moves the game into its terminal state. Safe to call more than once.
func (that *Game) EndGame() {
	that.state = StateOver
	that.presenter.GameOver()
}

func (that *Game) CurrentPlayer() entity.Player {
	return that.players[that.turn]
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) State() State {
	return that.state
}

func (that *Game) IsOver() bool {
	return that.state == StateOver
}

func (that *Game) apply(move entity.Move) error {
	switch that.state {
	case StateInProgress:
		return that.board.MakeMove(move)
	case StateOver:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("unknown game state: %s", that.state)
	}
}

func (that *Game) nextPlayer() {
	that.turn = 1 - that.turn
}
