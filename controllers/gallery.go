// controllers/gallery.go
package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pawsgroom-backend/config"
	"pawsgroom-backend/models"
	"pawsgroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxImageSize = 5 << 20 // 5MB

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var allowedImageMimes = map[string]bool{
	"image/jpeg": true, "image/png": true, "image/gif": true, "image/webp": true,
}

// GalleryController serves the gallery endpoints. Uploaded files live under
// UploadDir and are exposed at /uploads/<name>.
type GalleryController struct {
	UploadDir string
}

func NewGalleryController(uploadDir string) *GalleryController {
	return &GalleryController{UploadDir: uploadDir}
}

// UpdateGalleryInput defines the expected JSON structure for updating a
// gallery image. The stored image itself is never changed.
type UpdateGalleryInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

// GetActiveGallery returns the publicly visible images
func (gc *GalleryController) GetActiveGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := config.DB.Where("is_active = ?", true).
		Order("display_order ASC, created_at DESC").Find(&images).Error; err != nil {
		utils.Log.Errorf("list gallery failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve gallery")
		return
	}

	c.JSON(http.StatusOK, images)
}

// GetAllGallery returns every image regardless of visibility (admin only)
func (gc *GalleryController) GetAllGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := config.DB.Order("display_order ASC, created_at DESC").
		Find(&images).Error; err != nil {
		utils.Log.Errorf("list all gallery failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve gallery")
		return
	}

	c.JSON(http.StatusOK, images)
}

// CreateGalleryImage stores the uploaded image on disk and persists the
// record. Validation runs before the file is written so a rejected request
// leaves nothing behind.
func (gc *GalleryController) CreateGalleryImage(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	description := c.PostForm("description")
	category := c.PostForm("category")

	var errs []utils.FieldError
	if title == "" {
		errs = append(errs, utils.FieldError{Field: "title", Message: "Title is required"})
	}
	if category != "" && !utils.OneOf(category, models.GalleryCategories) {
		errs = append(errs, utils.FieldError{Field: "category", Message: "Invalid category"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	if file.Size > maxImageSize {
		utils.RespondWithError(c, http.StatusBadRequest, "Image must be 5MB or smaller")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] || !allowedImageMimes[file.Header.Get("Content-Type")] {
		utils.RespondWithError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	if err := os.MkdirAll(gc.UploadDir, 0o755); err != nil {
		utils.Log.Errorf("create upload dir failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	// Unique name, so concurrent uploads cannot collide
	filename := "image-" + uuid.New().String() + ext
	diskPath := filepath.Join(gc.UploadDir, filename)
	if err := c.SaveUploadedFile(file, diskPath); err != nil {
		utils.Log.Errorf("save upload failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	image := models.GalleryImage{
		Title:       title,
		Description: description,
		ImageURL:    "/uploads/" + filename,
		Category:    "other",
		IsActive:    true,
	}
	if category != "" {
		image.Category = category
	}

	if err := config.DB.Create(&image).Error; err != nil {
		// Do not leave the file orphaned when the record cannot be saved
		os.Remove(diskPath)
		utils.Log.Errorf("create gallery record failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create gallery item")
		return
	}

	c.JSON(http.StatusCreated, image)
}

// UpdateGalleryImage changes metadata, visibility and ordering only
func (gc *GalleryController) UpdateGalleryImage(c *gin.Context) {
	imageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid gallery ID format")
		return
	}

	var input UpdateGalleryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var errs []utils.FieldError
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		errs = append(errs, utils.FieldError{Field: "title", Message: "Title is required"})
	}
	if input.Category != nil && !utils.OneOf(*input.Category, models.GalleryCategories) {
		errs = append(errs, utils.FieldError{Field: "category", Message: "Invalid category"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	var image models.GalleryImage
	if err := config.DB.First(&image, "id = ?", imageUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Gallery item not found")
		} else {
			utils.Log.Errorf("load gallery item failed: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	image.Title = *input.Title
	if input.Description != nil {
		image.Description = *input.Description
	}
	if input.Category != nil {
		image.Category = *input.Category
	}
	if input.IsActive != nil {
		image.IsActive = *input.IsActive
	}
	if input.Order != nil {
		image.DisplayOrder = *input.Order
	}

	if err := config.DB.Save(&image).Error; err != nil {
		utils.Log.Errorf("update gallery item failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update gallery item")
		return
	}

	c.JSON(http.StatusOK, image)
}

// DeleteGalleryImage removes the backing file (best-effort) and the record
func (gc *GalleryController) DeleteGalleryImage(c *gin.Context) {
	imageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid gallery ID format")
		return
	}

	var image models.GalleryImage
	if err := config.DB.First(&image, "id = ?", imageUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Gallery item not found")
		} else {
			utils.Log.Errorf("load gallery item failed: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Proceed even if the file is already gone
	diskPath := filepath.Join(gc.UploadDir, filepath.Base(image.ImageURL))
	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		utils.Log.Warnf("remove gallery file %s failed: %v", diskPath, err)
	}

	if err := config.DB.Delete(&image).Error; err != nil {
		utils.Log.Errorf("delete gallery record failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete gallery item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted successfully"})
}
