// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/storehub/internal/platform/apperr"
	"github.com/taibuivan/storehub/internal/platform/ctxutil"
	"github.com/taibuivan/storehub/internal/platform/sec"
	"github.com/taibuivan/storehub/internal/platform/validate"
)

// maxBodyBytes caps JSON request bodies; auth and admin payloads are tiny.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Int64Param parses a named URL parameter as a positive integer identifier.

Returns:
  - int64: The parsed identifier
  - error: apperr.ValidationError when the parameter is missing or malformed
*/
func Int64Param(request *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(request, name), 10, 64)
	if err != nil || value <= 0 {
		return 0, validate.FieldFailure(name, "Must be a positive integer")
	}
	return value, nil
}

/*
Identity extracts the session identity from the request context.

Returns nil if the request is anonymous.
*/
func Identity(request *http.Request) *sec.Identity {
	return ctxutil.GetIdentity(request.Context())
}

/*
RequiredIdentity ensures the request carries a session and returns its identity.

Returns:
  - *sec.Identity: The session identity
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredIdentity(request *http.Request) (*sec.Identity, error) {

	// Get the session identity
	identity := ctxutil.GetIdentity(request.Context())

	// If the request is anonymous, return an error
	if identity == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return identity, nil
}
