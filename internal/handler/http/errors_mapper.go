package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-media-hub/internal/adapter"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/service"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/internal/validators"
	"github.com/MKhiriev/go-media-hub/models"
)

// Error codes sent in models.ErrorResponse.Code. Rule violations use the
// rule name as the code.
const (
	codeRowDoesNotExist = "ROW_DOES_NOT_EXIST"
	codeRowAlreadyExist = "ROW_ALREADY_EXIST"
	codeNotAccessible   = "NOT_ACCESSIBLE"
	codeInvalidSignIn   = "INVALID_SIGN_IN"
	codeInvalidToken    = "INVALID_TOKEN"
	codeForbidden       = "FORBIDDEN"
	codeInvalidRequest  = "INVALID_REQUEST"
	codeUnavailable     = "SERVICE_UNAVAILABLE"
	codeTimeout         = "REQUEST_TIMEOUT"
	codeMailDelivery    = "MAIL_DELIVERY"
	codeInternalServer  = "INTERNAL_SERVER"
)

type errorMapping struct {
	status int
	code   string
}

var errorStatusMap = map[error]errorMapping{
	service.ErrUserNotFound:          {http.StatusNotFound, codeRowDoesNotExist},
	service.ErrProfileNotFound:       {http.StatusNotFound, codeRowDoesNotExist},
	service.ErrMediaContentsNotFound: {http.StatusNotFound, codeRowDoesNotExist},
	service.ErrMediaSeriesNotFound:   {http.StatusNotFound, codeRowDoesNotExist},
	service.ErrCastNotFound:          {http.StatusNotFound, codeRowDoesNotExist},
	service.ErrLikeNotFound:          {http.StatusNotFound, codeRowDoesNotExist},
	service.ErrWishNotFound:          {http.StatusNotFound, codeRowDoesNotExist},
	store.ErrReferenceNotFound:       {http.StatusNotFound, codeRowDoesNotExist},

	service.ErrDuplicateEmail:    {http.StatusConflict, codeRowAlreadyExist},
	service.ErrLikeAlreadyExists: {http.StatusConflict, codeRowAlreadyExist},
	service.ErrWishAlreadyExists: {http.StatusConflict, codeRowAlreadyExist},
	service.ErrCastAlreadyLinked: {http.StatusConflict, codeRowAlreadyExist},
	service.ErrNameAlreadyExists: {http.StatusConflict, codeRowAlreadyExist},
	store.ErrAlreadyExists:       {http.StatusConflict, codeRowAlreadyExist},

	service.ErrNotAccessible:           {http.StatusBadRequest, codeNotAccessible},
	service.ErrInvalidSignIn:           {http.StatusUnauthorized, codeInvalidSignIn},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, codeInvalidToken},
	service.ErrForbidden:               {http.StatusForbidden, codeForbidden},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, codeInvalidToken},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, codeInvalidToken},
	ErrMissingUser:                {http.StatusUnauthorized, codeInvalidToken},
	ErrInvalidPathParameter:       {http.StatusBadRequest, codeInvalidRequest},
	ErrInvalidQueryParameter:      {http.StatusBadRequest, codeInvalidRequest},
	ErrMissingProfileHeader:       {http.StatusBadRequest, codeInvalidRequest},
	ErrInvalidJSON:                {http.StatusBadRequest, codeInvalidRequest},
	validators.ErrInvalidRequest:  {http.StatusBadRequest, codeInvalidRequest},
	errRouteNotFound:              {http.StatusNotFound, codeRowDoesNotExist},
	errMethodNotAllowed:           {http.StatusMethodNotAllowed, codeInvalidRequest},

	store.ErrUnavailable:     {http.StatusServiceUnavailable, codeUnavailable},
	context.DeadlineExceeded: {http.StatusGatewayTimeout, codeTimeout},
	adapter.ErrDelivery:      {http.StatusBadGateway, codeMailDelivery},
}

// ruleStatusMap gives the status of each business rule. The rule name
// itself is the response code.
var ruleStatusMap = map[string]int{
	validators.RuleIsDeleted:      http.StatusBadRequest,
	validators.RuleIDEqual:        http.StatusForbidden,
	validators.RuleProfileNumber:  http.StatusBadRequest,
	validators.RulePassword:       http.StatusUnauthorized,
	validators.RulePasswordFormat: http.StatusBadRequest,
}

// errorResponseFrom maps err to a status and response body. Unknown errors
// become 500 with a generic message so internals never leak.
func errorResponseFrom(err error) (int, models.ErrorResponse) {
	var violation *validators.RuleViolation
	if errors.As(err, &violation) {
		status, ok := ruleStatusMap[violation.Rule]
		if !ok {
			status = http.StatusBadRequest
		}
		return status, models.ErrorResponse{Code: violation.Rule, Message: violation.Message()}
	}

	for target, mapping := range errorStatusMap {
		if errors.Is(err, target) {
			return mapping.status, models.ErrorResponse{Code: mapping.code, Message: err.Error()}
		}
	}

	return http.StatusInternalServerError, models.ErrorResponse{
		Code:    codeInternalServer,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// writeError logs err and answers with the mapped JSON error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, body := errorResponseFrom(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
