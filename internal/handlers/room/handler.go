package room

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/room/model/dto"
	"hms/internal/domains/room/service"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Post("/allocate", handler.AllocateRoom)
		routerGroup.Get("/{number}", handler.GetRoom)
		routerGroup.Post("/{number}/release", handler.ReleaseRoom)
	})
}

func roomNumber(r *http.Request) (int, error) {
	number, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamNumber))
	if err != nil || number <= 0 {
		return 0, failure.BadRequestFromString("invalid room number")
	}

	return number, nil
}

// AddRoom handles the creation of a new room.
// @Summary Add a room
// @Description Add a room with a unique number. New rooms start available.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.AddRoomRequest true "Add Room Request"
// @Success 201 {object} response.Message "Room added successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) AddRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	req := dto.AddRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.AddRoom(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room added successfully")

	response.WithMessage(writer, http.StatusCreated, "Room added successfully")
}

// GetRooms retrieves rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve rooms with optional type and availability filters.
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_type query string false "Filter by room type"
// @Param available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := dto.ListRoomsFilter{
		Type:      r.URL.Query().Get(constant.RequestParamRoomType),
		Available: shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamAvailable)),
	}

	rooms, err := handler.service.ListRooms(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoom retrieves a room by number.
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param number path integer true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{number} [get]
// @Security BearerAuth
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	number, err := roomNumber(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, number)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// AllocateRoom claims the lowest numbered available room of a type.
// @Summary Allocate a room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.AllocateRoomRequest true "Allocate Room Request"
// @Success 200 {object} response.Data[dto.AllocateRoomResponse] "Room allocated"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/allocate [post]
// @Security BearerAuth
func (handler *Handler) AllocateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AllocateRoom")
	defer scope.End()

	req := dto.AllocateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	number, err := handler.service.Allocate(ctx, req.Type)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_type", req.Type).Msg("failed to allocate room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room allocated successfully")

	response.WithJSON(w, http.StatusOK, dto.AllocateRoomResponse{Number: number})
}

// ReleaseRoom marks an occupied room available again.
// @Summary Release a room
// @Tags Room
// @Produce json
// @Param number path integer true "Room number"
// @Success 200 {object} response.Message "Room released successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/{number}/release [post]
// @Security BearerAuth
func (handler *Handler) ReleaseRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseRoom")
	defer scope.End()

	number, err := roomNumber(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = handler.service.Release(ctx, number); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room", number).Msg("failed to release room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room released successfully")

	response.WithMessage(w, http.StatusOK, "Room released successfully")
}
