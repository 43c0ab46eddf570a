package department

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/department/model/dto"
	"hms/internal/domains/department/service"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Department
	otel    otel.Otel
}

func New(service service.Department, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/departments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddDepartment)
		routerGroup.Get("/", handler.GetDepartments)
		routerGroup.Delete("/{name}", handler.RemoveDepartment)
	})
}

// AddDepartment registers a department.
// @Summary Add a department
// @Tags Department
// @Accept json
// @Produce json
// @Param request body dto.AddDepartmentRequest true "Add Department Request"
// @Success 201 {object} response.Message "Department added successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/departments [post]
// @Security BearerAuth
func (handler *Handler) AddDepartment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddDepartment")
	defer scope.End()

	req := dto.AddDepartmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Add(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add department")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Department added successfully")

	response.WithMessage(w, http.StatusCreated, "Department added successfully")
}

// GetDepartments lists every department.
// @Summary List departments
// @Tags Department
// @Produce json
// @Success 200 {object} response.Data[dto.GetDepartmentsResponse] "List of departments"
// @Failure 500 {object} response.Error
// @Router /v1/departments [get]
// @Security BearerAuth
func (handler *Handler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDepartments")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get departments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RemoveDepartment removes a department by name.
// @Summary Remove a department
// @Tags Department
// @Produce json
// @Param name path string true "Department name"
// @Success 200 {object} response.Message "Department removed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/departments/{name} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveDepartment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveDepartment")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamName)

	if err := handler.service.Remove(ctx, name); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove department")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Department removed successfully")

	response.WithMessage(w, http.StatusOK, "Department removed successfully")
}
