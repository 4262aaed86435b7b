package model

// GameStatus represents the current phase of a session
type GameStatus string

const (
	GameStatusPlaying  GameStatus = "playing"  // Tiles can be placed, traded and peeled
	GameStatusFinished GameStatus = "finished" // Pile ran dry on a valid peel
)
