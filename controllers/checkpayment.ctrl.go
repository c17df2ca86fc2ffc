package controllers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/lib/responses"
	"github.com/cashweb/paygate/lib/service"
)

// CheckPaymentController : CheckPaymentController struct
type CheckPaymentController struct {
	svc *service.GatewayService
}

func NewCheckPaymentController(svc *service.GatewayService) *CheckPaymentController {
	return &CheckPaymentController{svc: svc}
}

// CheckPayment reports the settlement state of an invoice so merchants can
// poll instead of relying solely on callbacks.
func (controller *CheckPaymentController) CheckPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("payment_id"))
	if err != nil {
		return c.JSON(responses.PaymentNotFoundError.HttpStatusCode, responses.PaymentNotFoundError)
	}
	payment, err := controller.svc.Store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return c.JSON(responses.PaymentNotFoundError.HttpStatusCode, responses.PaymentNotFoundError)
		}
		c.Logger().Errorf("Failed to fetch payment %s: %v", id, err)
		return c.JSON(responses.GeneralServerError.HttpStatusCode, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"payment_id": payment.ID.String(),
		"state":      payment.State,
		"paid":       payment.State == common.PaymentStateReceived || payment.State == common.PaymentStateConfirmed,
		"tx_id":      payment.TxID,
	})
}
