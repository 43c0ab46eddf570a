package search

import (
	"net/http"
	"strconv"

	"hms/infras/otel"
	"hms/internal/domains/search/model/dto"
	"hms/internal/domains/search/service"
	"hms/shared/constant"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Search
	otel    otel.Otel
}

func New(service service.Search, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/search", handler.Search)
}

// Search looks a term up across the hospital records.
// @Summary Search records
// @Description Case-insensitive substring search over staff, patients, pharmacy items, departments and financial transactions.
// @Tags Search
// @Produce json
// @Param q query string true "Search term"
// @Param limit query int false "Maximum rows per record kind"
// @Success 200 {object} response.Data[dto.SearchResponse] "Matches grouped by record kind"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search [get]
// @Security BearerAuth
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	req := dto.SearchRequest{Query: r.URL.Query().Get(constant.RequestParamQuery)}

	if limit, err := strconv.Atoi(r.URL.Query().Get(constant.RequestParamLimit)); err == nil {
		req.Limit = limit
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
