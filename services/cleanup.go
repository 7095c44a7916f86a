package services

import (
	"os"
	"path/filepath"
	"time"

	"pawsgroom-backend/models"
	"pawsgroom-backend/utils"

	cron "github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Files younger than this are skipped so an in-flight upload whose record
// has not been committed yet is never swept.
const orphanGracePeriod = time.Hour

// StartOrphanSweeper schedules a daily reconciliation of the upload
// directory against the gallery records. Record deletion only removes files
// best-effort, so a crash can leave a file behind; the sweep cleans those up.
func StartOrphanSweeper(db *gorm.DB, uploadDir string) *cron.Cron {
	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		if err := SweepOrphanedUploads(db, uploadDir); err != nil {
			utils.Log.Errorf("orphan sweep failed: %v", err)
		}
	})

	c.Start()
	return c
}

// SweepOrphanedUploads deletes files in uploadDir that no gallery record
// references
func SweepOrphanedUploads(db *gorm.DB, uploadDir string) error {
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-orphanGracePeriod)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		var count int64
		if err := db.Model(&models.GalleryImage{}).
			Where("image_url = ?", "/uploads/"+entry.Name()).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			path := filepath.Join(uploadDir, entry.Name())
			if err := os.Remove(path); err != nil {
				utils.Log.Warnf("remove orphaned upload %s failed: %v", path, err)
				continue
			}
			utils.Log.Infof("removed orphaned upload %s", path)
		}
	}

	return nil
}
