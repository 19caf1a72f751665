package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONDetail sends the flat error body used across the API: {"detail": ...}
func JSONDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{
		"detail": detail,
	})
}
