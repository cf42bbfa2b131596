// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/storehub/internal/platform/request"
	"github.com/taibuivan/storehub/internal/platform/respond"
	"github.com/taibuivan/storehub/internal/platform/validate"
)

// Handler implements the HTTP layer for customer accounts.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account endpoints.
//
// # Endpoints
//   - POST /register : Creates a pending customer account.
//   - POST /verify   : Activates the account behind a verification token.
//   - POST /resend   : Issues a new verification token for an unverified email.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/verify", handler.verify)
	router.Post("/resend", handler.resend)

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type resendRequest struct {
	Email string `json:"email"`
}

// resendAcknowledgement is returned whether or not the email is registered.
const resendAcknowledgement = "If the address belongs to an unverified account, a new verification link is on its way"

/*
Register handles customer self-registration.

POST /api/v1/account/register

Request:
  - Body: registerRequest (Name, Email, Password)

Response:
  - 201: Account: Pending, unverified customer
  - 400: VALIDATION_ERROR: Bad input
  - 409: CONFLICT: Email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxNameLength).
		LoginEmail(FieldEmail, input.Email).
		MinLen(FieldPassword, input.Password, MinPasswordLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.accountService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
Verify confirms a customer's email ownership.

POST /api/v1/account/verify

Request:
  - Body: verifyRequest (Token)

Response:
  - 200: Account: Now active and verified
  - 400: VALIDATION_ERROR: Missing token
  - 404: NOT_FOUND: Unknown or expired token
*/
func (handler *Handler) verify(writer http.ResponseWriter, request *http.Request) {
	var input verifyRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Token == "" {
		respond.Error(writer, request, validate.FieldFailure(FieldToken, "This field is required"))
		return
	}

	activated, err := handler.accountService.Verify(request.Context(), input.Token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, activated)
}

/*
Resend issues a fresh verification link.

POST /api/v1/account/resend

Request:
  - Body: resendRequest (Email)

Response:
  - 202: Acknowledgement, identical for unknown and verified emails
  - 400: VALIDATION_ERROR: Bad email
*/
func (handler *Handler) resend(writer http.ResponseWriter, request *http.Request) {
	var input resendRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if err := validator.LoginEmail(FieldEmail, input.Email).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.ResendVerification(request.Context(), input.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusAccepted, respond.SuccessEnvelope{
		Data: map[string]string{FieldMessage: resendAcknowledgement},
	})
}
