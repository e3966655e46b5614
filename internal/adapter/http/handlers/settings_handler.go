package handlers

import (
	"errors"
	"net/http"

	request "susunara/internal/adapter/http/dto/request"
	response "susunara/internal/adapter/http/dto/response"
	"susunara/internal/usecase"
	"susunara/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
)

// SettingsHandler manages the category registry and the reference price
// table. ListCategories doubles as the public category listing for the
// self-service form.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) ListCategories(c *gin.Context) {
	cats, err := h.usecase.Categories(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategories(cats))
}

func (h *SettingsHandler) AddMainCategory(c *gin.Context) {
	var payload request.MainCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	cats, err := h.usecase.AddMainCategory(c.Request.Context(), payload.Name)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCategories(cats))
}

func (h *SettingsHandler) DeleteMainCategory(c *gin.Context) {
	cats, err := h.usecase.DeleteMainCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategories(cats))
}

func (h *SettingsHandler) AddSubCategory(c *gin.Context) {
	var payload request.SubCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	cats, err := h.usecase.AddSubCategory(c.Request.Context(), payload.Category, payload.SubCategory)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCategories(cats))
}

func (h *SettingsHandler) DeleteSubCategory(c *gin.Context) {
	cats, err := h.usecase.DeleteSubCategory(c.Request.Context(), c.Param("name"), c.Param("sub"))
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategories(cats))
}

func (h *SettingsHandler) GetPriceTable(c *gin.Context) {
	table, err := h.usecase.PriceTable(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceTable(table))
}

func (h *SettingsHandler) SetPrice(c *gin.Context) {
	var payload request.PriceEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	table, err := h.usecase.SetPrice(c.Request.Context(), payload.Category, payload.SubCategory, payload.Price)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceTable(table))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCategoryNameRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryExists), errors.Is(err, usecase.ErrSubCategoryExists):
		return pkg.NewDomainErrorSimple("CATEGORY_ALREADY_EXISTS", "Category already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCategoryNotFound), errors.Is(err, usecase.ErrSubCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
