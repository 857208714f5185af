package handler

import (
	"net/http"

	"candle-shop-api/internal/dto"
	"candle-shop-api/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListFragrances(c echo.Context) error {
	ctx := c.Request().Context()

	fragrances, err := h.catalogService.ListFragrances(ctx)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, fragrances)
}

func (h *CatalogHandler) GetFragrance(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	fragrance, err := h.catalogService.GetFragrance(ctx, id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, fragrance)
}

func (h *CatalogHandler) CreateFragrance(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.FragranceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	fragrance, err := h.catalogService.CreateFragrance(ctx, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, fragrance)
}

func (h *CatalogHandler) UpdateFragrance(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.FragranceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	fragrance, err := h.catalogService.UpdateFragrance(ctx, id, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, fragrance)
}

func (h *CatalogHandler) DeleteFragrance(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteFragrance(ctx, id); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "fragrance deleted",
	})
}

func (h *CatalogHandler) AddSize(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.FragranceSizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	size, err := h.catalogService.AddSize(ctx, id, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, size)
}

func (h *CatalogHandler) UpdateSize(c echo.Context) error {
	ctx := c.Request().Context()

	sizeID, err := idParam(c, "sizeId")
	if err != nil {
		return err
	}

	var req dto.FragranceSizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	size, err := h.catalogService.UpdateSize(ctx, sizeID, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, size)
}

func (h *CatalogHandler) DeleteSize(c echo.Context) error {
	ctx := c.Request().Context()

	sizeID, err := idParam(c, "sizeId")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteSize(ctx, sizeID); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "fragrance size deleted",
	})
}

func (h *CatalogHandler) UpdateStock(c echo.Context) error {
	ctx := c.Request().Context()

	sizeID, err := idParam(c, "sizeId")
	if err != nil {
		return err
	}

	var req dto.UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	size, err := h.catalogService.UpdateStock(ctx, sizeID, req.StockQuantity)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, size)
}
