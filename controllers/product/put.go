package productcontroller

import (
	"errors"
	"net/http"

	"github.com/easoftwareGit/e-commerce/dberr"
	"github.com/easoftwareGit/e-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct replaces a product's fields. A price change here is
// visible to every cart immediately but never to existing order items.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.GetUint("productId")

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		product.Name = input.Name
		product.ModelNumber = input.ModelNumber
		product.Description = input.Description
		product.Price = input.Price
		if err := db.Save(&product).Error; err != nil {
			err = dberr.Translate(err)
			if errors.Is(err, dberr.ErrUnique) {
				c.JSON(http.StatusConflict, gin.H{"error": "name or model_number already used"})
				return
			}
			c.JSON(dberr.Status(err), gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
