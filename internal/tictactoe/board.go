package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/boredgames/internal/apperror"
	"github.com/rocketscienceinc/boredgames/internal/entity"
)

const (
	boardRows = 3
	boardCols = 3
)

// Board owns a fixed 3x3 grid of cells and routes moves to them.
type Board struct {
	cells [boardRows][boardCols]Cell
}

func NewBoard() *Board {
	board := &Board{}

	for row := 0; row < boardRows; row++ {
		for col := 0; col < boardCols; col++ {
			board.cells[row][col] = newCell(row, col)
		}
	}

	return board
}

func (that *Board) Rows() int {
	return boardRows
}

func (that *Board) Cols() int {
	return boardCols
}

// At - returns the cell at the given coordinates.
func (that *Board) At(row, col int) (*Cell, error) {
	if row < 0 || row >= boardRows || col < 0 || col >= boardCols {
		return nil, fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, row, col)
	}

	return &that.cells[row][col], nil
}

// MakeMove - occupies the cell addressed by the move.
func (that *Board) MakeMove(move entity.Move) error {
	cell, err := that.At(move.Row, move.Col)
	if err != nil {
		return err
	}

	return cell.Occupy(move)
}
