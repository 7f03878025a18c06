package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ImageController struct {
	uploadDir string
}

func NewImageController() *ImageController {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "public/assets"
	}
	os.MkdirAll(dir, 0o755)
	return &ImageController{uploadDir: dir}
}

// UploadImage stores a single multipart image under a unique filename
// and returns its public URL.
func (ic *ImageController) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to read uploaded file"})
	}
	defer src.Close()

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(ic.uploadDir, filename))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store uploaded file"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store uploaded file"})
	}

	return c.JSON(http.StatusOK, map[string]string{"url": "/assets/" + filename})
}
