package config

import (
	"os"

	"pawsgroom-backend/models"
	"pawsgroom-backend/utils"
)

// SeedDatabase wipes users and services and recreates the single admin
// account plus the starter service catalog. Run with `pawsgroom seed`.
func SeedDatabase() error {
	if err := DB.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return err
	}
	if err := DB.Where("1 = 1").Delete(&models.Service{}).Error; err != nil {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := models.User{
		Username: "admin",
		Email:    "admin@pawsgroom.com",
		Password: password, // hashed in BeforeCreate
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	services := []models.Service{
		{Name: "Basic Grooming", Description: "Complete grooming service including bath, brush, nail trim, and ear cleaning", Price: 45, Duration: 60, Category: "grooming", IsActive: true},
		{Name: "Deluxe Grooming", Description: "Premium grooming with extra attention to detail, including de-shedding treatment", Price: 65, Duration: 90, Category: "grooming", IsActive: true},
		{Name: "Bath & Brush", Description: "Thorough bath with premium shampoo and complete brush out", Price: 35, Duration: 45, Category: "bathing", IsActive: true},
		{Name: "Nail Trim", Description: "Professional nail trimming and filing", Price: 15, Duration: 15, Category: "health", IsActive: true},
		{Name: "Ear Cleaning", Description: "Deep ear cleaning and inspection", Price: 12, Duration: 15, Category: "health", IsActive: true},
		{Name: "Haircut & Style", Description: "Custom haircut and styling based on breed standards", Price: 55, Duration: 75, Category: "styling", IsActive: true},
		{Name: "Puppy Grooming", Description: "Gentle first-time grooming experience for puppies", Price: 40, Duration: 45, Category: "grooming", IsActive: true},
		{Name: "Senior Pet Care", Description: "Specialized grooming for senior pets with extra care and attention", Price: 50, Duration: 60, Category: "grooming", IsActive: true},
	}

	for _, service := range services {
		if err := DB.Create(&service).Error; err != nil {
			return err
		}
	}

	utils.Log.Info("seed data completed, admin user: admin / admin@pawsgroom.com")
	return nil
}
