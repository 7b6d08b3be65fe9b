package entity

import "fmt"

// Move is a single attempt by a player to mark the cell at Row, Col.
type Move struct {
	Player Player `json:"player"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

func NewMove(player Player, row, col int) Move {
	return Move{
		Player: player,
		Row:    row,
		Col:    col,
	}
}

func (that Move) String() string {
	return fmt.Sprintf("%s at (%d,%d)", that.Player, that.Row, that.Col)
}
