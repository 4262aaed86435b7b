package handler

import (
	"fmt"
	"math"
	"net/http"
	"unicode/utf8"

	"github.com/mcoot/guavagrams/internal/api/request"
	"github.com/mcoot/guavagrams/internal/api/response"
	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/services/referee"
)

// BoardHandler handles board adjudication endpoints
type BoardHandler struct {
	referee referee.ServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(referee referee.ServiceInterface) *BoardHandler {
	return &BoardHandler{
		referee: referee,
	}
}

// Validate handles POST /api/v1/boards/validate
func (h *BoardHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateBoardRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Dictionary == "" {
		WriteError(w, NewInvalidRequestError("dictionary is required"))
		return
	}

	board, err := BoardFromRequest(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	verdict, err := h.referee.Validate(req.Dictionary, board)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VerdictFromModel(verdict, board))
}

// BoardFromRequest builds a board from explicit tiles or a text layout
func BoardFromRequest(req request.ValidateBoardRequest) (*grid.LetterBoard, error) {
	if req.Layout != "" && len(req.Tiles) > 0 {
		return nil, NewInvalidRequestError("provide either tiles or layout, not both")
	}

	if req.Layout != "" {
		origin, err := toCoordinate(req.Origin.X, req.Origin.Y)
		if err != nil {
			return nil, err
		}
		return grid.Parse(req.Layout, origin)
	}

	tiles := make([]grid.Tile, 0, len(req.Tiles))
	for _, t := range req.Tiles {
		c, err := toCoordinate(t.X, t.Y)
		if err != nil {
			return nil, err
		}
		letter, size := utf8.DecodeRuneInString(t.Letter)
		if size == 0 || size != len(t.Letter) {
			return nil, fmt.Errorf("tile at %s: %w", c, model.ErrInvalidLetter)
		}
		tiles = append(tiles, grid.Tile{Coordinate: c, Letter: model.Letter(letter)})
	}
	return grid.FromTiles(tiles)
}

func toCoordinate(x, y int) (grid.Coordinate, error) {
	if x < math.MinInt8 || x > math.MaxInt8 || y < math.MinInt8 || y > math.MaxInt8 {
		return grid.Coordinate{}, fmt.Errorf("(%d, %d): %w", x, y, model.ErrOutOfBounds)
	}
	return grid.Coordinate{X: int8(x), Y: int8(y)}, nil
}
