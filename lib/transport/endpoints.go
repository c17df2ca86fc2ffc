package transport

import (
	"github.com/labstack/echo/v4"

	"github.com/cashweb/paygate/controllers"
	"github.com/cashweb/paygate/lib/service"
)

func RegisterEndpoints(svc *service.GatewayService, e *echo.Echo, secured *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	// merchant-side (secured with the admin token)
	secured.POST("/invoice", controllers.NewInvoiceController(svc).GenerateInvoice)
	secured.GET("/payment/:payment_id/check", controllers.NewCheckPaymentController(svc).CheckPayment)

	// customer-side
	e.POST("/payment/:payment_id", controllers.NewPaymentController(svc).SubmitPayment, strictRateLimitMiddleware, logMw)
	e.GET("/getinfo", controllers.NewGetInfoController(svc).GetInfo)
}
