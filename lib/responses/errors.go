package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "bad auth",
	HttpStatusCode: 401,
}

var PaymentDecodeError = ErrorResponse{
	Error:          true,
	Code:           10,
	Message:        "failed to decode payment",
	HttpStatusCode: 400,
}

var NoTransactionError = ErrorResponse{
	Error:          true,
	Code:           11,
	Message:        "no payment transaction",
	HttpStatusCode: 400,
}

var TxMalformedError = ErrorResponse{
	Error:          true,
	Code:           12,
	Message:        "payment transaction malformed",
	HttpStatusCode: 400,
}

var PaymentNotFoundError = ErrorResponse{
	Error:          true,
	Code:           13,
	Message:        "payment not found",
	HttpStatusCode: 404,
}

var PaymentNotPendingError = ErrorResponse{
	Error:          true,
	Code:           14,
	Message:        "payment no longer pending",
	HttpStatusCode: 400,
}

var InvalidOutputsError = ErrorResponse{
	Error:          true,
	Code:           15,
	Message:        "invalid outputs",
	HttpStatusCode: 400,
}

var BroadcastFailedError = ErrorResponse{
	Error:          true,
	Code:           16,
	Message:        "broadcast failed, try again",
	HttpStatusCode: 502,
}

var InvalidRequestError = ErrorResponse{
	Error:          true,
	Code:           17,
	Message:        "invalid invoice request",
	HttpStatusCode: 400,
}

var WrongContentTypeError = ErrorResponse{
	Error:          true,
	Code:           18,
	Message:        "unsupported payment content type",
	HttpStatusCode: 415,
}

var NotAcceptableError = ErrorResponse{
	Error:          true,
	Code:           19,
	Message:        "acceptable content type missing",
	HttpStatusCode: 406,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}

// isErrAllowedForSentry filters auth noise out of exception tracking: a bad
// admin key is a client mistake, not an exception.
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	m, ok := he.Message.(echo.Map)
	if !ok {
		return true
	}
	code, ok := m["code"].(int)
	if !ok {
		return true
	}
	return code != BadAuthError.Code
}
