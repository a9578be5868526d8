package controllers

import (
	"net/http"
	"time"

	"clothing-store/models"
	"clothing-store/services"

	"github.com/gin-gonic/gin"
)

// GetReports serves the combined report, preferring the cron-refreshed cache
// and falling back to a live aggregation when the cache is stale.
func GetReports(c *gin.Context) {
	if report, ok := services.CachedReport(); ok {
		c.JSON(http.StatusOK, report)
		return
	}

	report, err := models.CombinedReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.StoreReport(report)
	c.JSON(http.StatusOK, report)
}

func GetBrandsWithSales(c *gin.Context) {
	rows, err := models.BrandsWithSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func GetItemsSold(c *gin.Context) {
	rows, err := models.ItemsSold()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func GetTop5Brands(c *gin.Context) {
	rows, err := models.Top5Brands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func GetSalesByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date parameter (YYYY-MM-DD)"})
		return
	}

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	rows, err := models.SalesByDate(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
