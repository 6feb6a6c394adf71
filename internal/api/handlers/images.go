package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/TravisBoyd884/SecondSpark/internal/store"
	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// ImagesHandler handles item image upload and retrieval. Uploads are
// multipart form posts, which Echo handles directly; everything else in the
// API goes through Huma.
type ImagesHandler struct {
	store   store.Store
	dir     string
	maxSize int64
}

// NewImagesHandler creates a new ImagesHandler storing files under dir.
func NewImagesHandler(s store.Store, dir string, maxSize int64) *ImagesHandler {
	return &ImagesHandler{store: s, dir: dir, maxSize: maxSize}
}

// Upload accepts a multipart "image" file for an item and stores it on disk.
// The stored filename is a fresh UUID; the client-supplied name is only used
// for its extension.
func (h *ImagesHandler) Upload(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	ctx := c.Request().Context()
	if _, err := h.store.GetItem(ctx, itemID); err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "item not found"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing image file"})
	}
	if fileHeader.Size > h.maxSize {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "image too large"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported image type"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "reading upload: " + err.Error()})
	}
	defer src.Close() //nolint:errcheck

	if err := os.MkdirAll(h.dir, 0o750); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "preparing upload dir: " + err.Error()})
	}

	name := uuid.NewString() + ext
	path := filepath.Join(h.dir, name)

	dst, err := os.Create(path) //nolint:gosec // name is a generated UUID
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "storing upload: " + err.Error()})
	}
	defer dst.Close() //nolint:errcheck

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path) //nolint:errcheck
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "storing upload: " + err.Error()})
	}

	img := &domain.ItemImage{
		ItemID:    itemID,
		URL:       "/uploads/" + name,
		IsPrimary: c.FormValue("is_primary") == "true",
	}
	if err := h.store.AddItemImage(ctx, img); err != nil {
		os.Remove(path) //nolint:errcheck
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "recording upload: " + err.Error()})
	}

	return c.JSON(http.StatusCreated, img)
}

// List returns an item's images, primary first.
func (h *ImagesHandler) List(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	imgs, err := h.store.ListItemImages(c.Request().Context(), itemID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "listing images: " + err.Error()})
	}
	if imgs == nil {
		imgs = []domain.ItemImage{}
	}
	return c.JSON(http.StatusOK, imgs)
}

// Delete removes an image record. The file on disk is left for a cleanup
// job; a dangling file is harmless, a dangling row is not.
func (h *ImagesHandler) Delete(c echo.Context) error {
	imageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image id"})
	}

	if err := h.store.DeleteItemImage(c.Request().Context(), imageID); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "deleting image: " + err.Error()})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}

// RegisterImageRoutes wires the image endpoints onto the Echo instance.
func RegisterImageRoutes(e *echo.Echo, h *ImagesHandler) {
	e.POST("/api/v1/items/:id/images", h.Upload)
	e.GET("/api/v1/items/:id/images", h.List)
	e.DELETE("/api/v1/images/:id", h.Delete)
	e.Static("/uploads", h.dir)
}
