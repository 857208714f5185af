package handler

import (
	"net/http"

	"candle-shop-api/internal/dto"
	"candle-shop-api/internal/service"

	"github.com/labstack/echo/v4"
)

type DiscountHandler struct {
	discountService service.DiscountService
}

func NewDiscountHandler(discountService service.DiscountService) *DiscountHandler {
	return &DiscountHandler{
		discountService: discountService,
	}
}

func (h *DiscountHandler) Validate(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ValidateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	discount, err := h.discountService.Validate(ctx, req.Code)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, discount)
}

func (h *DiscountHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	discounts, err := h.discountService.List(ctx)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, discounts)
}

func (h *DiscountHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.DiscountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	discount, err := h.discountService.Create(ctx, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, discount)
}

func (h *DiscountHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.DiscountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	discount, err := h.discountService.Update(ctx, id, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, discount)
}

func (h *DiscountHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.discountService.Delete(ctx, id); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "discount code deleted",
	})
}
