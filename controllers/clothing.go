package controllers

import (
	"net/http"

	"clothing-store/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetClothing(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		item, err := models.GetClothingItemByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clothing item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
		return
	}

	items, err := models.GetAllClothingItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetClothingItemByID(c *gin.Context) {
	item, err := models.GetClothingItemByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Clothing item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func CreateClothingItem(c *gin.Context) {
	var item models.ClothingItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Clothing name and brand_id are required"})
		return
	}

	created, err := models.AddClothingItem(item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateClothingItem(c *gin.Context) {
	id := recordID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing clothing id"})
		return
	}

	fields, err := bindPartialUpdate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := models.UpdateClothingItem(id, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clothing item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Clothing item updated"})
}

func DeleteClothingItem(c *gin.Context) {
	id := recordID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing clothing id"})
		return
	}

	if err := models.DeleteClothingItem(id); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clothing item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Clothing item deleted"})
}

// UpdateStock applies one of two explicit write modes: "decrement" adjusts
// in_stock by -amount, "set" overwrites it. Sale creation never calls this.
func UpdateStock(c *gin.Context) {
	id := recordID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing clothing id"})
		return
	}

	var input struct {
		Mode   string `json:"mode" binding:"required,oneof=decrement set"`
		Amount *int   `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode (decrement|set) and amount are required"})
		return
	}

	var err error
	switch input.Mode {
	case models.StockModeDecrement:
		if *input.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Decrement amount must be positive"})
			return
		}
		err = models.DecrementStock(id, *input.Amount)
	case models.StockModeSet:
		if *input.Amount < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock value must not be negative"})
			return
		}
		err = models.SetStock(id, *input.Amount)
	}

	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clothing item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
}
