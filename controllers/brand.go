package controllers

import (
	"net/http"

	"clothing-store/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetBrands(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		brand, err := models.GetBrandByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}
		c.JSON(http.StatusOK, brand)
		return
	}

	brands, err := models.GetAllBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, brands)
}

func GetBrandByID(c *gin.Context) {
	brand, err := models.GetBrandByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	}
	c.JSON(http.StatusOK, brand)
}

func CreateBrand(c *gin.Context) {
	var brand models.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brand name is required"})
		return
	}

	created, err := models.AddBrand(brand)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateBrand(c *gin.Context) {
	id := recordID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing brand id"})
		return
	}

	fields, err := bindPartialUpdate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := models.UpdateBrand(id, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand updated"})
}

// DeleteBrand never checks for clothing items referencing the brand;
// their brand_id is left dangling on purpose.
func DeleteBrand(c *gin.Context) {
	id := recordID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing brand id"})
		return
	}

	if err := models.DeleteBrand(id); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
}
