package handler

import (
	"net/http"

	"github.com/mcoot/guavagrams/internal/api/request"
	"github.com/mcoot/guavagrams/internal/api/response"
	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/services/tiles"
)

// Request limits
const (
	MaxPileAmount = 10000
	MaxDrawCount  = 1000
)

// TilesHandler handles pile and draw endpoints
type TilesHandler struct {
	tiles tiles.ServiceInterface
}

// NewTilesHandler creates a new tiles handler
func NewTilesHandler(tiles tiles.ServiceInterface) *TilesHandler {
	return &TilesHandler{
		tiles: tiles,
	}
}

// CreatePile handles POST /api/v1/piles
func (h *TilesHandler) CreatePile(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePileRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Amount < 1 || req.Amount > MaxPileAmount {
		WriteError(w, NewInvalidRequestError("amount must be between 1 and 10000"))
		return
	}

	d, err := h.tiles.Distribution(distributionName(req.Distribution), req.Dictionary)
	if err != nil {
		WriteError(w, err)
		return
	}

	var pile model.Pile
	if req.Shuffle {
		pile = h.tiles.NewPile(d, req.Amount)
	} else {
		pile = d.CreatePile(req.Amount)
	}

	response.JSON(w, http.StatusCreated, response.PileFromModel(d.Name(), pile))
}

// Draw handles POST /api/v1/draws
func (h *TilesHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req request.DrawRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Count < 1 || req.Count > MaxDrawCount {
		WriteError(w, NewInvalidRequestError("count must be between 1 and 1000"))
		return
	}

	d, err := h.tiles.Distribution(distributionName(req.Distribution), req.Dictionary)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DrawFromModel(d.Name(), h.tiles.Draw(d, req.Count)))
}

// Distribution handles GET /api/v1/distributions/{name}
func (h *TilesHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	d, err := h.tiles.Distribution(pathVar(r, "name"), r.URL.Query().Get("dictionary"))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.DistributionFromModel(d))
}

func distributionName(name string) string {
	if name == "" {
		return tiles.NameBananagrams
	}
	return name
}
