// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"catlog/internal/delivery/http/middleware"
	"catlog/internal/delivery/http/response"
	"catlog/internal/infra/metrics"
	"catlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatHandlerParams holds dependencies for CatHandler, injected by Fx.
type CatHandlerParams struct {
	fx.In

	CatUC   usecase.CatUsecase
	Metrics *metrics.Metrics
}

// CatHandler holds dependencies for cat-related handlers
type CatHandler struct {
	catUC   usecase.CatUsecase
	metrics *metrics.Metrics
}

// NewCatHandler is the constructor for CatHandler
func NewCatHandler(params CatHandlerParams) *CatHandler {
	return &CatHandler{
		catUC:   params.CatUC,
		metrics: params.Metrics,
	}
}

// RegisterCat handles cat registration
func (h *CatHandler) RegisterCat(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	var input *usecase.RegisterCatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cat input")
	}

	cat, err := h.catUC.RegisterCat(c.Request().Context(), ownerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.metrics.RecordCatRegistered()

	return response.Success(c, http.StatusCreated, cat, "Cat registered successfully")
}

// ListCats handles retrieving all cats of the owner
func (h *CatHandler) ListCats(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	cats, err := h.catUC.ListCats(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cats, "Cats retrieved successfully")
}

// GetCat handles retrieving a single cat
func (h *CatHandler) GetCat(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	catID, err := uuid.Parse(c.Param("catId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cat ID")
	}

	cat, err := h.catUC.GetCat(c.Request().Context(), ownerID, catID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cat, "Cat retrieved successfully")
}

// UpdateCat handles a sparse cat update
func (h *CatHandler) UpdateCat(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	catID, err := uuid.Parse(c.Param("catId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cat ID")
	}

	var input *usecase.UpdateCatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cat input")
	}

	cat, err := h.catUC.UpdateCat(c.Request().Context(), ownerID, catID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cat, "Cat updated successfully")
}

// DeleteCat handles deleting a cat together with its recorded events
func (h *CatHandler) DeleteCat(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	catID, err := uuid.Parse(c.Param("catId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cat ID")
	}

	confirmed := c.QueryParam("confirm") == "true"

	if err := h.catUC.DeleteCat(c.Request().Context(), ownerID, catID, confirmed); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cat deleted successfully"}, "Cat deleted successfully")
}

// UploadCatImage handles storing the cat's profile image
func (h *CatHandler) UploadCatImage(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	catID, err := uuid.Parse(c.Param("catId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cat ID")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file could not be read")
	}
	defer src.Close()

	cat, err := h.catUC.UploadCatImage(c.Request().Context(), ownerID, catID, fileHeader.Header.Get("Content-Type"), src)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cat, "Cat image uploaded successfully")
}

// getOwnerID extracts the authenticated owner ID from the context
func getOwnerID(c echo.Context) (string, error) {
	ownerIDVal := c.Get(middleware.KeyOwnerID)
	ownerID, ok := ownerIDVal.(string)
	if !ok || ownerID == "" {
		return "", response.Unauthorized(c, "UNAUTHORIZED", "Owner missing from request context")
	}

	return ownerID, nil
}
