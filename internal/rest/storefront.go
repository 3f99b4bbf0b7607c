package rest

import (
	"context"
	"net/http"
	"time"

	"yabaMarket/domain"
	"yabaMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type StorefrontService interface {
	Distribute(ctx context.Context, category string) (domain.DistributionResult, error)
	MatchCategory(ctx context.Context, category string) ([]domain.CategoryMatch, error)
	Banners(ctx context.Context, perSection int) ([]domain.CategoryBanner, error)
}

type StorefrontHandler struct {
	storefrontService StorefrontService
	validator         *validator.Validate
	timeout           time.Duration
}

func NewStorefrontHandler(storefrontService StorefrontService, timeout time.Duration) *StorefrontHandler {
	return &StorefrontHandler{
		storefrontService: storefrontService,
		validator:         validator.New(),
		timeout:           timeout,
	}
}

type CategoryQuery struct {
	Category string `query:"category" validate:"max=100"`
}

type BannersQuery struct {
	PerSection int `query:"per_section" validate:"gte=0,lte=50"`
}

// Distribution returns the featured and general sections for ?category=.
func (h *StorefrontHandler) Distribution(c echo.Context) error {
	var q CategoryQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Failed to bind distribution query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&q); err != nil {
		logger.Error("Failed to validate distribution query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.storefrontService.Distribute(ctx, q.Category)
	if err != nil {
		logger.Error("Failed to distribute catalog", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// MatchCategory lists the products ?category= keeps with the strategy that kept them.
func (h *StorefrontHandler) MatchCategory(c echo.Context) error {
	var q CategoryQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Failed to bind category match query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&q); err != nil {
		logger.Error("Failed to validate category match query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	matches, err := h.storefrontService.MatchCategory(ctx, q.Category)
	if err != nil {
		logger.Error("Failed to match category", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(matches))
}

func (h *StorefrontHandler) Banners(c echo.Context) error {
	var q BannersQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Failed to bind banners query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&q); err != nil {
		logger.Error("Failed to validate banners query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	banners, err := h.storefrontService.Banners(ctx, q.PerSection)
	if err != nil {
		logger.Error("Failed to build category banners", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(banners))
}
