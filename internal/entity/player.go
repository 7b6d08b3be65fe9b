package entity

const (
	PlayerX = "X"
	PlayerO = "O"
)

// Player is identified by the mark it puts on the board.
type Player struct {
	Mark string `json:"mark"`
}

func NewPlayer(mark string) Player {
	return Player{Mark: mark}
}

func (that Player) String() string {
	return that.Mark
}
