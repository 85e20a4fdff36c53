package api

import (
	"net/http"

	"github.com/okian/tradecalc/internal/domain/quiz"
	"github.com/okian/tradecalc/internal/domain/salary"
)

// CatalogHandler serves the option lists the forms are built from.
type CatalogHandler struct {
	catalog catalogResponse
}

type catalogResponse struct {
	Trades         []string             `json:"trades"`
	States         []string             `json:"states"`
	Certifications []string             `json:"certifications"`
	Experiences    []salary.Experience  `json:"experiences"`
	Unions         []salary.UnionStatus `json:"unions"`
	Questions      []quiz.Question      `json:"questions"`
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{catalog: catalogResponse{
		Trades:         salary.Trades(),
		States:         salary.States(),
		Certifications: salary.Certifications(),
		Experiences:    salary.Experiences(),
		Unions:         []salary.UnionStatus{salary.NonUnion, salary.Union},
		Questions:      quiz.Questions(),
	}}
}

// HandleCatalog handles GET /api/v1/catalog.
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}
