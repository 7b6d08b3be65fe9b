package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/boredgames/internal/apperror"
	"github.com/rocketscienceinc/boredgames/internal/entity"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: it should be 3x3
	require.Equal(t, 3, board.Rows())
	require.Equal(t, 3, board.Cols())

	// Then: every cell should be empty and know its coordinates
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell, err := board.At(row, col)
			require.NoError(t, err)

			assert.False(t, cell.IsOccupied())
			assert.Equal(t, row, cell.Row())
			assert.Equal(t, col, cell.Col())
		}
	}
}

func TestBoard_At(t *testing.T) {
	board := NewBoard()

	tests := []struct {
		name     string
		row, col int
	}{
		{name: "Negative row", row: -1, col: 0},
		{name: "Negative col", row: 0, col: -1},
		{name: "Row past the edge", row: 3, col: 0},
		{name: "Col past the edge", row: 0, col: 3},
		{name: "Far away", row: 20, col: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: a cell outside the grid is requested
			cell, err := board.At(tt.row, tt.col)

			// Then: ErrOutOfBounds should be returned
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
			assert.Nil(t, cell)
		})
	}
}

func TestBoard_MakeMove(t *testing.T) {
	playerX := entity.NewPlayer(entity.PlayerX)
	playerO := entity.NewPlayer(entity.PlayerO)

	t.Run("MakeMove", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X plays the center
		err := board.MakeMove(entity.NewMove(playerX, 1, 1))

		// Then: only the center should be occupied
		require.NoError(t, err)

		cell, err := board.At(1, 1)
		require.NoError(t, err)

		occupant, ok := cell.Occupant()
		require.True(t, ok)
		assert.Equal(t, playerX, occupant)

		other, err := board.At(0, 0)
		require.NoError(t, err)
		assert.False(t, other.IsOccupied())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds (0,0)
		board := NewBoard()
		require.NoError(t, board.MakeMove(entity.NewMove(playerX, 0, 0)))

		// When: O plays (0,0)
		err := board.MakeMove(entity.NewMove(playerO, 0, 0))

		// Then: the cell error should come through untouched
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Error on move outside the board", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X plays outside the grid
		err := board.MakeMove(entity.NewMove(playerX, 3, 1))

		// Then: ErrOutOfBounds should be returned
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})
}
