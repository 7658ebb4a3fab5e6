package datastore

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const txKey = "datastore.tx"

// Transactional opens one database transaction per inbound request. Pending
// writes are committed when the handler chain finishes without error and
// rolled back otherwise. Failure to open the transaction aborts the request
// with 500; there is no retry.
func Transactional(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tx := db.Begin()
		if tx.Error != nil {
			log.Printf("failed to begin transaction: %v", tx.Error)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to open database session"})
			return
		}
		c.Set(txKey, tx)

		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusInternalServerError {
			tx.Rollback()
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.Error(err)
			log.Printf("failed to commit transaction: %v", err)
		}
	}
}

// Session returns the live transaction for the current request. It must
// only be called below Transactional.
func Session(c *gin.Context) *gorm.DB {
	return c.MustGet(txKey).(*gorm.DB)
}
