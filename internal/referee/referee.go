package referee

import "github.com/rocketscienceinc/boredgames/internal/tictactoe"

// WinCombos lists every line of three cells that wins the game, as [row, col] pairs.
var WinCombos = [][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Result is the verdict on a board. An empty Winner with Draw unset means the game continues.
type Result struct {
	Winner string
	Draw   bool
}

func (that Result) IsDecided() bool {
	return that.Winner != "" || that.Draw
}

type Referee struct{}

func New() *Referee {
	return &Referee{}
}

// Evaluate - checks the board for a completed line or a full board.
func (that *Referee) Evaluate(board *tictactoe.Board) Result {
	for _, combo := range WinCombos {
		a, b, c := markAt(board, combo[0]), markAt(board, combo[1]), markAt(board, combo[2])
		if a != "" && a == b && b == c {
			return Result{Winner: a}
		}
	}

	// the game will continue until all the squares are full
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if markAt(board, [2]int{row, col}) == "" {
				return Result{}
			}
		}
	}

	return Result{Draw: true}
}

func markAt(board *tictactoe.Board, at [2]int) string {
	cell, err := board.At(at[0], at[1])
	if err != nil {
		return ""
	}

	occupant, ok := cell.Occupant()
	if !ok {
		return ""
	}

	return occupant.Mark
}
