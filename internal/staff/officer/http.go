// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package officer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/storehub/internal/platform/middleware"
	requestutil "github.com/taibuivan/storehub/internal/platform/request"
	"github.com/taibuivan/storehub/internal/platform/respond"
	"github.com/taibuivan/storehub/internal/platform/sec"
	"github.com/taibuivan/storehub/internal/platform/validate"
	"github.com/taibuivan/storehub/pkg/pagination"
)

const (
	fieldName       = "name"
	fieldEmail      = "email"
	fieldPassword   = "password"
	fieldFunctionID = "function_id"
	fieldIsActive   = "is_active"

	minPasswordLength = 10
	maxNameLength     = 120
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the staff endpoints. The administrator and officers of
// the access_officers function may use them; toggling a whole function is
// reserved to the administrator.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireOfficerAccess(sec.RoleAccessOfficers))

		staffRoute.Get("/functions", handler.listFunctions)
		staffRoute.With(middleware.RequireAdmin).Patch("/functions/{id}", handler.setFunctionActive)

		staffRoute.Get("/officers", handler.listOfficers)
		staffRoute.Post("/officers", handler.createOfficer)
		staffRoute.Patch("/officers/{id}", handler.setOfficerActive)
	})
}

type createOfficerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FunctionID int64  `json:"function_id"`
}

type activeRequest struct {
	IsActive *bool `json:"is_active"`
}

func (handler *Handler) listFunctions(writer http.ResponseWriter, request *http.Request) {
	functions, err := handler.service.ListFunctions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, functions)
}

func (handler *Handler) setFunctionActive(writer http.ResponseWriter, request *http.Request) {
	functionID, active, err := decodeActiveToggle(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetFunctionActive(request.Context(), functionID, active); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listOfficers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	officers, total, err := handler.service.ListOfficers(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, officers, paginationParams.Meta(total))
}

/*
CreateOfficer registers a new CSO officer.

POST /api/v1/admin/officers

Response:
  - 201: Officer
  - 400: VALIDATION_ERROR: Bad input or unknown function
  - 409: CONFLICT: Email already in use
*/
func (handler *Handler) createOfficer(writer http.ResponseWriter, request *http.Request) {
	var input createOfficerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(fieldName, input.Name).
		MaxLen(fieldName, input.Name, maxNameLength).
		LoginEmail(fieldEmail, input.Email).
		MinLen(fieldPassword, input.Password, minPasswordLength).
		Positive(fieldFunctionID, input.FunctionID)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateOfficer(request.Context(), CreateInput{
		Name:       input.Name,
		Email:      input.Email,
		Password:   input.Password,
		FunctionID: input.FunctionID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) setOfficerActive(writer http.ResponseWriter, request *http.Request) {
	officerID, active, err := decodeActiveToggle(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetOfficerActive(request.Context(), officerID, active); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// decodeActiveToggle reads the {id} path parameter and an {"is_active": bool} body.
func decodeActiveToggle(request *http.Request) (int64, bool, error) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		return 0, false, err
	}

	var input activeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		return 0, false, validate.ErrInvalidJSON
	}

	if input.IsActive == nil {
		return 0, false, validate.FieldFailure(fieldIsActive, "This field is required")
	}

	return id, *input.IsActive, nil
}
