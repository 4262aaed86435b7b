package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/guavagrams/internal/api/request"
	"github.com/mcoot/guavagrams/internal/api/response"
	"github.com/mcoot/guavagrams/internal/services/dictionary"
	"github.com/mcoot/guavagrams/internal/services/scoring"
)

// DictionaryHandler handles vocabulary and score table endpoints
type DictionaryHandler struct {
	dictionaries dictionary.ServiceInterface
	scoring      scoring.ServiceInterface
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dictionaries dictionary.ServiceInterface, scoring scoring.ServiceInterface) *DictionaryHandler {
	return &DictionaryHandler{
		dictionaries: dictionaries,
		scoring:      scoring,
	}
}

// List handles GET /api/v1/dictionaries
func (h *DictionaryHandler) List(w http.ResponseWriter, r *http.Request) {
	names := h.dictionaries.Names()
	resp := response.DictionaryList{Dictionaries: make([]response.Dictionary, 0, len(names))}
	for _, name := range names {
		resp.Dictionaries = append(resp.Dictionaries, response.Dictionary{
			Name:      name,
			WordCount: h.dictionaries.WordCount(name),
		})
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/dictionaries/{name}
func (h *DictionaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "name")
	if _, err := h.dictionaries.Vocabulary(name); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Dictionary{
		Name:      name,
		WordCount: h.dictionaries.WordCount(name),
	})
}

// Save handles PUT /api/v1/dictionaries/{name}
func (h *DictionaryHandler) Save(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "name")

	var req request.SaveDictionaryRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if len(req.Words) == 0 {
		WriteError(w, NewInvalidRequestError("words must not be empty"))
		return
	}

	if err := h.dictionaries.Store(r.Context(), name, req.Words); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Dictionary{
		Name:      name,
		WordCount: h.dictionaries.WordCount(name),
	})
}

// Delete handles DELETE /api/v1/dictionaries/{name}
func (h *DictionaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.dictionaries.Delete(r.Context(), pathVar(r, "name")); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ScoreTable handles GET /api/v1/score-table
func (h *DictionaryHandler) ScoreTable(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.ScoreTableFromModel(h.scoring.Table()))
}

func pathVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}
