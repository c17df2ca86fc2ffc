package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/golang/protobuf/proto"
	"github.com/labstack/echo/v4"

	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/lib/responses"
	"github.com/cashweb/paygate/lib/service"
)

// PaymentController : Payment submission controller struct
type PaymentController struct {
	svc *service.GatewayService
}

func NewPaymentController(svc *service.GatewayService) *PaymentController {
	return &PaymentController{svc: svc}
}

// SubmitPayment accepts a BIP70 payment envelope against an invoice id. On
// success it acknowledges; tokenized invoices additionally get a redirect
// carrying the bearer token.
func (controller *PaymentController) SubmitPayment(c echo.Context) error {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), common.ContentTypePayment) {
		return c.JSON(responses.WrongContentTypeError.HttpStatusCode, responses.WrongContentTypeError)
	}
	if !strings.Contains(c.Request().Header.Get(echo.HeaderAccept), common.ContentTypePaymentACK) {
		return c.JSON(responses.NotAcceptableError.HttpStatusCode, responses.NotAcceptableError)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(responses.BadArgumentsError.HttpStatusCode, responses.BadArgumentsError)
	}

	result, err := controller.svc.AcceptPayment(c.Request().Context(), c.Param("payment_id"), body)
	if err != nil {
		return paymentErrorResponse(c, err)
	}

	rawAck, err := proto.Marshal(result.Ack)
	if err != nil {
		c.Logger().Errorf("Failed to marshal payment ack: %v", err)
		return c.JSON(responses.GeneralServerError.HttpStatusCode, responses.GeneralServerError)
	}

	header := c.Response().Header()
	if result.Token != "" {
		header.Set(echo.HeaderAuthorization, "POP "+result.Token)
		header.Set("Pragma", "no-cache")
	}
	if result.RedirectURL != "" {
		header.Set(echo.HeaderLocation, result.RedirectURL)
		return c.Blob(http.StatusFound, common.ContentTypePaymentACK, rawAck)
	}
	return c.Blob(http.StatusOK, common.ContentTypePaymentACK, rawAck)
}

func paymentErrorResponse(c echo.Context, err error) error {
	var response responses.ErrorResponse
	switch {
	case errors.Is(err, service.ErrPaymentDecode):
		response = responses.PaymentDecodeError
	case errors.Is(err, service.ErrNoTransaction):
		response = responses.NoTransactionError
	case errors.Is(err, service.ErrTxMalformed):
		response = responses.TxMalformedError
	case errors.Is(err, service.ErrPaymentNotFound):
		response = responses.PaymentNotFoundError
	case errors.Is(err, service.ErrPaymentNotPending):
		response = responses.PaymentNotPendingError
	case errors.Is(err, service.ErrInvalidOutputs):
		response = responses.InvalidOutputsError
	case errors.Is(err, service.ErrBroadcastFailed):
		response = responses.BroadcastFailedError
	default:
		// Store failures and other internals are not detailed to the
		// caller.
		c.Logger().Errorf("Payment submission failed: %v", err)
		response = responses.GeneralServerError
	}
	return c.JSON(response.HttpStatusCode, response)
}
