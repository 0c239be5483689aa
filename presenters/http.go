package presenters

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"vouchers-system/application"
	"vouchers-system/domain/entities"
	mapErrString "vouchers-system/utils/errors"
)

type VoucherSystemHTTP struct {
	VoucherApplication *application.VoucherApplication
}

func NewRouter(app *application.VoucherApplication) *gin.Engine {
	if app.Config.ENV == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(app.Logger))

	handler := &VoucherSystemHTTP{VoucherApplication: app}

	engine.GET("/healthz", handler.Health)

	api := engine.Group(app.Config.Prefix)
	{
		api.POST("/templates", handler.CreateTemplate)
		api.GET("/templates", handler.ListTemplates)
		api.GET("/templates/:id", handler.GetTemplate)
		api.PUT("/templates/:id", handler.UpdateTemplate)
		api.DELETE("/templates/:id", handler.DeleteTemplate)
		api.POST("/templates/:id/default", handler.SetDefaultTemplate)
		api.GET("/templates/:id/preview", handler.PreviewTemplate)

		api.GET("/orders/:order_id", handler.GetOrder)
		api.POST("/orders/:order_id/fulfill", handler.FulfillOrder)
		api.GET("/orders/:order_id/vouchers", handler.ListOrderVouchers)

		api.GET("/vouchers/:code", handler.GetVoucher)
		api.POST("/vouchers/:code/redeem", handler.RedeemVoucher)
	}

	return engine
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}

func (h *VoucherSystemHTTP) abortWithError(c *gin.Context, err error) {
	c.JSON(mapErrString.HTTPStatus(err), gin.H{"error": mapErrString.Message(err)})
}

func (h *VoucherSystemHTTP) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *VoucherSystemHTTP) CreateTemplate(c *gin.Context) {
	var template entities.VoucherTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.VoucherApplication.CreateTemplate(c.Request.Context(), &template)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *VoucherSystemHTTP) ListTemplates(c *gin.Context) {
	limit := cast.ToInt64(c.DefaultQuery("limit", "20"))
	offset := cast.ToInt64(c.DefaultQuery("offset", "0"))

	templates, err := h.VoucherApplication.ListTemplates(c.Request.Context(), limit, offset)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

func (h *VoucherSystemHTTP) GetTemplate(c *gin.Context) {
	template, err := h.VoucherApplication.FindTemplateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *VoucherSystemHTTP) UpdateTemplate(c *gin.Context) {
	var template entities.VoucherTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	template.Id = c.Param("id")

	updated, err := h.VoucherApplication.UpdateTemplate(c.Request.Context(), &template)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *VoucherSystemHTTP) DeleteTemplate(c *gin.Context) {
	if err := h.VoucherApplication.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VoucherSystemHTTP) SetDefaultTemplate(c *gin.Context) {
	if err := h.VoucherApplication.SetDefaultTemplate(c.Request.Context(), c.Param("id")); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewTemplate renders the template with sample order values so the admin
// UI can show the layout before making it the default.
func (h *VoucherSystemHTTP) PreviewTemplate(c *gin.Context) {
	document, err := h.VoucherApplication.PreviewTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/pdf", document)
}

func (h *VoucherSystemHTTP) GetOrder(c *gin.Context) {
	orderDto, err := h.VoucherApplication.FindOrderByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderDto)
}

// FulfillOrder is the manual trigger; the queue consumer is the usual path.
func (h *VoucherSystemHTTP) FulfillOrder(c *gin.Context) {
	orderDto, err := h.VoucherApplication.FindOrderByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	orderDto, err = h.VoucherApplication.FulfillOrder(c.Request.Context(), orderDto)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderDto)
}

func (h *VoucherSystemHTTP) ListOrderVouchers(c *gin.Context) {
	issues, err := h.VoucherApplication.FindVouchersByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, issues)
}

func (h *VoucherSystemHTTP) GetVoucher(c *gin.Context) {
	issue, err := h.VoucherApplication.FindVoucherByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

func (h *VoucherSystemHTTP) RedeemVoucher(c *gin.Context) {
	issue, err := h.VoucherApplication.RedeemVoucher(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}
