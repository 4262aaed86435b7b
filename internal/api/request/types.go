package request

// Tile is a single placed letter at a game coordinate
type Tile struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Letter string `json:"letter"`
}

// Point is a game coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ValidateBoardRequest is the request body for adjudicating a board.
// Either Tiles or Layout describes the board; Origin anchors Layout's
// top-left cell.
type ValidateBoardRequest struct {
	Dictionary string `json:"dictionary"`
	Tiles      []Tile `json:"tiles,omitempty"`
	Layout     string `json:"layout,omitempty"`
	Origin     Point  `json:"origin"`
}

// CreatePileRequest is the request body for generating a pile
type CreatePileRequest struct {
	Distribution string `json:"distribution,omitempty"`
	Dictionary   string `json:"dictionary,omitempty"`
	Amount       int    `json:"amount"`
	Shuffle      bool   `json:"shuffle,omitempty"`
}

// DrawRequest is the request body for endless draws
type DrawRequest struct {
	Distribution string `json:"distribution,omitempty"`
	Dictionary   string `json:"dictionary,omitempty"`
	Count        int    `json:"count"`
}

// SaveDictionaryRequest is the request body for uploading a vocabulary
type SaveDictionaryRequest struct {
	Words []string `json:"words"`
}
