package productcontroller

import (
	"errors"
	"net/http"

	"github.com/easoftwareGit/e-commerce/dberr"
	"github.com/easoftwareGit/e-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	ModelNumber string  `json:"model_number" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// CreateProduct creates a new catalog product. Name and model number
// must both be unique.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			ModelNumber: input.ModelNumber,
			Description: input.Description,
			Price:       input.Price,
		}
		if err := db.Create(&product).Error; err != nil {
			err = dberr.Translate(err)
			switch {
			case errors.Is(err, dberr.ErrUnique):
				c.JSON(http.StatusConflict, gin.H{"error": "name or model_number already used"})
			case errors.Is(err, dberr.ErrNotNull):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Required value missing"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			}
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
