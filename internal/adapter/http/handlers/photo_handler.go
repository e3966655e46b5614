package handlers

import (
	"errors"
	"io"
	"net/http"

	response "susunara/internal/adapter/http/dto/response"
	"susunara/internal/usecase"
	"susunara/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPhotoUpload = pkg.NewDomainErrorSimple("INVALID_PHOTO_INPUT", "A photo file is required", http.StatusBadRequest)
)

// maxPhotoUploadBytes caps the accepted multipart file size (10 MiB).
const maxPhotoUploadBytes = 10 << 20

// PhotoHandler accepts a multipart photo, compresses it and stores it.

type PhotoHandler struct {
	usecase usecase.IPhotoUseCase
}

func NewPhotoHandler(uc usecase.IPhotoUseCase) *PhotoHandler {
	return &PhotoHandler{usecase: uc}
}

func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(errInvalidPhotoUpload.HTTPStatus, errInvalidPhotoUpload.ToHTTPError())
		return
	}
	if fileHeader.Size > maxPhotoUploadBytes {
		appErr := pkg.NewDomainErrorSimple("PHOTO_TOO_LARGE", "Photo exceeds the upload limit", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidPhotoUpload.HTTPStatus, errInvalidPhotoUpload.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(errInvalidPhotoUpload.HTTPStatus, errInvalidPhotoUpload.ToHTTPError())
		return
	}

	url, err := h.usecase.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		appErr := mapPhotoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PhotoResponse{URL: url})
}

func mapPhotoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyPhoto):
		return pkg.NewDomainErrorSimple("INVALID_PHOTO_INPUT", "A photo file is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
