// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends the generic {message} error body
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// RespondWithValidationErrors sends the itemized 400 {errors: [...]} body
func RespondWithValidationErrors(c *gin.Context, errs []FieldError) {
	c.JSON(400, gin.H{"errors": errs})
}
