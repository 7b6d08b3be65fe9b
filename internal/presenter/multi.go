package presenter

import (
	"github.com/rocketscienceinc/boredgames/internal/entity"
	"github.com/rocketscienceinc/boredgames/internal/tictactoe"
)

// Multi passes every notification to each of its presenters in order.
type Multi struct {
	presenters []tictactoe.Presenter
}

func NewMulti(presenters ...tictactoe.Presenter) *Multi {
	return &Multi{presenters: presenters}
}

func (that *Multi) MoveMade(move entity.Move) {
	for _, p := range that.presenters {
		p.MoveMade(move)
	}
}

func (that *Multi) Error(err error) {
	for _, p := range that.presenters {
		p.Error(err)
	}
}

func (that *Multi) GameOver() {
	for _, p := range that.presenters {
		p.GameOver()
	}
}

func (that *Multi) Winner(mark string) {
	for _, p := range that.presenters {
		p.Winner(mark)
	}
}
