package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// Genres handles GET /api/genres
func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.Genres(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list genres")
		return
	}
	utils.ResponseSuccess(w, genres)
}

// Movies handles GET /api/movies
func (h *CatalogHandler) Movies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Movies(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list movies")
		return
	}
	utils.ResponseSuccess(w, movies)
}

// MovieByID handles GET /api/movies/{id}
func (h *CatalogHandler) MovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie id")
		return
	}

	movie, err := h.service.MovieByID(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err, "get movie")
		return
	}
	utils.ResponseSuccess(w, movie)
}
