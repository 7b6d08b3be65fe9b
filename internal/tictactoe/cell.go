package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/boredgames/internal/apperror"
	"github.com/rocketscienceinc/boredgames/internal/entity"
)

type occupancy int

const (
	cellEmpty occupancy = iota
	cellOccupied
)

// Cell is a single board slot. It can be occupied exactly once.
type Cell struct {
	row   int
	col   int
	state occupancy

	occupant entity.Player
}

func newCell(row, col int) Cell {
	return Cell{
		row:   row,
		col:   col,
		state: cellEmpty,
	}
}

// Occupy - records the move's player as the occupant of an empty cell.
func (that *Cell) Occupy(move entity.Move) error {
	switch that.state {
	case cellEmpty:
		that.occupant = move.Player
		that.state = cellOccupied
		return nil
	case cellOccupied:
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, that)
	default:
		return fmt.Errorf("unknown cell state %d: %s", that.state, that)
	}
}

func (that *Cell) IsOccupied() bool {
	return that.state == cellOccupied
}

// Occupant - returns the player that occupies the cell, false if it is empty.
func (that *Cell) Occupant() (entity.Player, bool) {
	if !that.IsOccupied() {
		return entity.Player{}, false
	}

	return that.occupant, true
}

func (that *Cell) Row() int {
	return that.row
}

func (that *Cell) Col() int {
	return that.col
}

func (that *Cell) String() string {
	return fmt.Sprintf("Cell(%d,%d)", that.row, that.col)
}
