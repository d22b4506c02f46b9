package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// maxImageBytes bounds uploads; images are embedded inline in the
// itinerary document, so oversized payloads would bloat every save.
const maxImageBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
}

// ImageHandler converts uploaded images into data URIs for inline
// embedding in itinerary documents. There is no object storage; the client
// attaches the returned URI to a transport, concert, or shopping entry.
type ImageHandler struct{}

func NewImageHandler() *ImageHandler {
	return &ImageHandler{}
}

func (h *ImageHandler) Upload(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		_ = c.Error(errors.ValidationFailed("Missing image", "multipart field 'image' is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		_ = c.Error(errors.InternalServerError("failed to read upload"))
		return
	}
	if len(data) > maxImageBytes {
		_ = c.Error(errors.ValidationFailed("Image too large", fmt.Sprintf("maximum size is %d bytes", maxImageBytes)))
		return
	}

	// Sniff the real content type; the client-sent header is ignored.
	mtype := mimetype.Detect(data)
	if !allowedImageTypes[mtype.String()] {
		_ = c.Error(errors.ValidationFailed("Unsupported image type", fmt.Sprintf("%s is not an accepted image format", mtype.String())))
		return
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mtype.String(), base64.StdEncoding.EncodeToString(data))
	c.JSON(http.StatusCreated, gin.H{
		"contentType": mtype.String(),
		"size":        len(data),
		"dataUri":     dataURI,
	})
}
