package session

import (
	"fmt"
	"time"

	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
)

// State is a point-in-time view of a session
type State struct {
	Cursor       grid.Coordinate  `json:"cursor"`
	Hand         model.Hand       `json:"hand"`
	PileSize     int              `json:"pile_size"`
	Score        int              `json:"score"`
	Status       model.GameStatus `json:"status"`
	Elapsed      time.Duration    `json:"elapsed"`
	Distribution string           `json:"distribution"`
}

// Finished returns true once the game has ended
func (s State) Finished() bool {
	return s.Status == model.GameStatusFinished
}

// FormatDuration renders d as HH:MM:SS
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}
