package controllers

import (
	"net/http"

	"clothing-store/extjson"
	"clothing-store/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetSales(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		sale, err := models.GetSaleByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		c.JSON(http.StatusOK, sale)
		return
	}

	sales, err := models.GetAllSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sales)
}

func GetSaleByID(c *gin.Context) {
	sale, err := models.GetSaleByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

// CreateSale inserts the sale record only. Stock stays untouched; callers
// that want the decrement issue a separate stock write.
func CreateSale(c *gin.Context) {
	var sale models.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, clothing_id and quantity are required"})
		return
	}

	if sale.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
		return
	}

	created, err := models.AddSale(sale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateSale(c *gin.Context) {
	id := recordID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing sale id"})
		return
	}

	fields, err := bindPartialUpdate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if qty, ok := numericField(fields, "quantity"); ok && qty < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
		return
	}

	// A plain-shape date would be stored as a raw number or string and break
	// every later decode of the record.
	if raw, ok := fields["date"]; ok {
		ts, ok := extjson.CoerceDate(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		fields["date"] = ts
	}

	if err := models.UpdateSale(id, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale updated"})
}

func DeleteSale(c *gin.Context) {
	id := recordID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing sale id"})
		return
	}

	if err := models.DeleteSale(id); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted"})
}
