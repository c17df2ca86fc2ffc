package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/golang/protobuf/proto"
	"github.com/labstack/echo/v4"

	"github.com/cashweb/paygate/bip70"
	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/lib/responses"
	"github.com/cashweb/paygate/lib/service"
)

// InvoiceController : Invoice issuance controller struct
type InvoiceController struct {
	svc *service.GatewayService
}

func NewInvoiceController(svc *service.GatewayService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

// GenerateInvoice issues a new invoice for an inbound InvoiceRequest and
// answers 402 Payment Required with the serialized payment request.
func (controller *InvoiceController) GenerateInvoice(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(responses.BadArgumentsError.HttpStatusCode, responses.BadArgumentsError)
	}
	request := &bip70.InvoiceRequest{}
	if err := proto.Unmarshal(body, request); err != nil {
		return c.JSON(responses.InvalidRequestError.HttpStatusCode, responses.InvalidRequestError)
	}

	response, _, err := controller.svc.GenerateInvoice(c.Request().Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return c.JSON(responses.InvalidRequestError.HttpStatusCode, responses.InvalidRequestError)
		default:
			c.Logger().Errorf("Failed to generate invoice: %v", err)
			return c.JSON(responses.GeneralServerError.HttpStatusCode, responses.GeneralServerError)
		}
	}

	raw, err := proto.Marshal(response)
	if err != nil {
		c.Logger().Errorf("Failed to marshal invoice response: %v", err)
		return c.JSON(responses.GeneralServerError.HttpStatusCode, responses.GeneralServerError)
	}
	c.Response().Header().Set("Content-Transfer-Encoding", "binary")
	return c.Blob(http.StatusPaymentRequired, common.ContentTypePaymentRequest, raw)
}
