package game

// standardPieces is the opening layout: six pieces per side, player 1 on the
// bottom two ranks, player 2 on the top two.
var standardPieces = []Piece{
	{Key: "WK", Type: Royal, Owner: Player1, Pos: Position{Row: 6, Col: 3}}, // d1
	{Key: "W5", Type: T5, Owner: Player1, Pos: Position{Row: 6, Col: 2}},    // c1
	{Key: "W4", Type: T4, Owner: Player1, Pos: Position{Row: 5, Col: 2}},    // c2
	{Key: "W3", Type: T3, Owner: Player1, Pos: Position{Row: 5, Col: 3}},    // d2
	{Key: "W1", Type: T1, Owner: Player1, Pos: Position{Row: 6, Col: 4}},    // e1
	{Key: "W2", Type: T2, Owner: Player1, Pos: Position{Row: 5, Col: 4}},    // e2

	{Key: "BK", Type: Royal, Owner: Player2, Pos: Position{Row: 0, Col: 3}}, // d7
	{Key: "B2", Type: T2, Owner: Player2, Pos: Position{Row: 1, Col: 2}},    // c6
	{Key: "B1", Type: T1, Owner: Player2, Pos: Position{Row: 0, Col: 2}},    // c7
	{Key: "B3", Type: T3, Owner: Player2, Pos: Position{Row: 1, Col: 3}},    // d6
	{Key: "B4", Type: T4, Owner: Player2, Pos: Position{Row: 1, Col: 4}},    // e6
	{Key: "B5", Type: T5, Owner: Player2, Pos: Position{Row: 0, Col: 4}},    // e7
}

// NewStandardBoard returns the starting position with player 1 to move.
func NewStandardBoard() *Board {
	b, err := NewBoard(standardPieces, Player1)
	if err != nil {
		panic(err)
	}
	return b
}
