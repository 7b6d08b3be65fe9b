package tictactoe

import "github.com/rocketscienceinc/boredgames/internal/entity"

// Presenter receives the outcome of everything that happens in a game.
// Calls are fire-and-forget, the game never inspects what the presenter does.
type Presenter interface {
	MoveMade(move entity.Move)
	Error(err error)
	GameOver()

	// Winner is never called by the game itself, whoever decides the winner calls it.
	Winner(mark string)
}
