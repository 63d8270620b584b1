package productcontroller

import (
	"errors"
	"net/http"

	"github.com/easoftwareGit/e-commerce/dberr"
	"github.com/easoftwareGit/e-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct removes a catalog product. Cart and order line items
// reference products, so a product still in use is a 409.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.GetUint("productId")

		result := db.Delete(&models.Product{}, productID)
		if result.Error != nil {
			err := dberr.Translate(result.Error)
			if errors.Is(err, dberr.ErrForeignKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete - product is referenced"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
