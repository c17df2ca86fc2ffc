package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cashweb/paygate/lib/service"
)

// GetInfoController : GetInfoController struct
type GetInfoController struct {
	svc *service.GatewayService
}

func NewGetInfoController(svc *service.GatewayService) *GetInfoController {
	return &GetInfoController{svc: svc}
}

// GetInfo : GetInfo handler
func (controller *GetInfoController) GetInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"network":     controller.svc.Network.String(),
		"payment_url": controller.svc.Config.PaymentURL,
	})
}
