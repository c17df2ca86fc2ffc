package responses

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBadAuthErrorsNotAllowedForSentry(t *testing.T) {
	badAuthErrResponse := echo.NewHTTPError(BadAuthError.HttpStatusCode, echo.Map{
		"error":   BadAuthError.Error,
		"code":    BadAuthError.Code,
		"message": BadAuthError.Message,
	})

	assert.False(t, isErrAllowedForSentry(badAuthErrResponse))
}

func TestPaymentErrorsAllowedForSentry(t *testing.T) {
	for _, resp := range []ErrorResponse{
		PaymentDecodeError, NoTransactionError, TxMalformedError,
		PaymentNotFoundError, PaymentNotPendingError, InvalidOutputsError,
		BroadcastFailedError, InvalidRequestError, GeneralServerError,
	} {
		errResponse := echo.NewHTTPError(resp.HttpStatusCode, echo.Map{
			"error":   resp.Error,
			"code":    resp.Code,
			"message": resp.Message,
		})
		assert.True(t, isErrAllowedForSentry(errResponse), "code %d", resp.Code)
	}
}

func TestNonErrorResponseErrorsAllowedForSentry(t *testing.T) {
	err := errors.New("random error")

	assert.True(t, isErrAllowedForSentry(err))
}

func TestErrorCatalogueCodesUnique(t *testing.T) {
	seen := map[int]bool{}
	for _, resp := range []ErrorResponse{
		GeneralServerError, BadArgumentsError, BadAuthError,
		PaymentDecodeError, NoTransactionError, TxMalformedError,
		PaymentNotFoundError, PaymentNotPendingError, InvalidOutputsError,
		BroadcastFailedError, InvalidRequestError, WrongContentTypeError,
		NotAcceptableError,
	} {
		assert.True(t, resp.Error)
		assert.False(t, seen[resp.Code], "duplicate code %d", resp.Code)
		seen[resp.Code] = true
	}
	assert.Equal(t, http.StatusNotFound, PaymentNotFoundError.HttpStatusCode)
	assert.Equal(t, http.StatusBadGateway, BroadcastFailedError.HttpStatusCode)
}
