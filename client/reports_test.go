package client

import (
	"testing"
	"time"

	"clothing-store/extjson"
	"clothing-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleOn(id, userID, clothingID string, qty int64) models.Sale {
	return models.Sale{
		ID:         id,
		UserID:     userID,
		ClothingID: clothingID,
		Quantity:   extjson.Int(qty),
		Date:       extjson.DateTime(time.Now().UTC()),
	}
}

func TestComputeReportZaraScenario(t *testing.T) {
	brands := []models.Brand{{ID: "b1", Name: "Zara", Country: "Spain"}}
	clothing := []models.ClothingItem{{
		ID:      "c1",
		Name:    "Camiseta Negra",
		BrandID: "b1",
		Price:   extjson.Double(19.99),
		InStock: extjson.Int(20),
	}}
	sales := []models.Sale{saleOn("s1", "u1", "c1", 3)}

	report := ComputeReport(sales, clothing, brands)

	require.Len(t, report.ItemsSold, 1)
	row := report.ItemsSold[0]
	assert.Equal(t, "Camiseta Negra", row.Name)
	assert.Equal(t, int64(3), row.Sold)
	assert.Equal(t, int64(20), row.InStock, "stock is never decremented by a sale insert")
	assert.Equal(t, int64(17), row.Remaining)

	require.Len(t, report.BrandsWithSales, 1)
	assert.Equal(t, "Zara", report.BrandsWithSales[0].Name)
	assert.Equal(t, int64(3), report.BrandsWithSales[0].SalesCount)

	require.Len(t, report.Top5Brands, 1)
	assert.Equal(t, "Zara", report.Top5Brands[0].Name)
}

func TestComputeReportEmptySales(t *testing.T) {
	brands := []models.Brand{{ID: "b1", Name: "Zara"}}
	clothing := []models.ClothingItem{{ID: "c1", Name: "Shirt", BrandID: "b1"}}

	report := ComputeReport(nil, clothing, brands)

	assert.Empty(t, report.BrandsWithSales)
	assert.Empty(t, report.ItemsSold)
	assert.Empty(t, report.Top5Brands)
	assert.NotNil(t, report.BrandsWithSales)
	assert.NotNil(t, report.ItemsSold)
	assert.NotNil(t, report.Top5Brands)
}

func TestComputeReportTop5Truncation(t *testing.T) {
	brands := make([]models.Brand, 0, 7)
	clothing := make([]models.ClothingItem, 0, 7)
	sales := make([]models.Sale, 0, 7)
	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"}

	for i, name := range names {
		brandID := "b" + name
		itemID := "c" + name
		brands = append(brands, models.Brand{ID: brandID, Name: name})
		clothing = append(clothing, models.ClothingItem{ID: itemID, Name: name + " Tee", BrandID: brandID})
		sales = append(sales, saleOn("s"+name, "u1", itemID, int64(i+1)))
	}

	report := ComputeReport(sales, clothing, brands)

	require.Len(t, report.Top5Brands, 5)
	assert.Equal(t, "Golf", report.Top5Brands[0].Name)
	assert.Equal(t, int64(7), report.Top5Brands[0].SalesCount)
	assert.Equal(t, "Charlie", report.Top5Brands[4].Name)

	// All seven still appear in the untruncated view, volume descending.
	require.Len(t, report.BrandsWithSales, 7)
	assert.Equal(t, int64(1), report.BrandsWithSales[6].SalesCount)
}

func TestComputeReportFewerThanFiveBrands(t *testing.T) {
	brands := []models.Brand{
		{ID: "b1", Name: "Zara"},
		{ID: "b2", Name: "Mango"},
	}
	clothing := []models.ClothingItem{
		{ID: "c1", Name: "Shirt", BrandID: "b1"},
		{ID: "c2", Name: "Dress", BrandID: "b2"},
	}
	sales := []models.Sale{
		saleOn("s1", "u1", "c1", 2),
		saleOn("s2", "u1", "c2", 5),
	}

	report := ComputeReport(sales, clothing, brands)

	require.Len(t, report.Top5Brands, 2)
	assert.Equal(t, "Mango", report.Top5Brands[0].Name)
	assert.Equal(t, "Zara", report.Top5Brands[1].Name)
}

func TestComputeReportTieBreakByName(t *testing.T) {
	brands := []models.Brand{
		{ID: "b1", Name: "Zara"},
		{ID: "b2", Name: "Adidas"},
	}
	clothing := []models.ClothingItem{
		{ID: "c1", Name: "Shirt", BrandID: "b1"},
		{ID: "c2", Name: "Shoes", BrandID: "b2"},
	}
	sales := []models.Sale{
		saleOn("s1", "u1", "c1", 4),
		saleOn("s2", "u1", "c2", 4),
	}

	report := ComputeReport(sales, clothing, brands)

	require.Len(t, report.Top5Brands, 2)
	assert.Equal(t, "Adidas", report.Top5Brands[0].Name)
	assert.Equal(t, "Zara", report.Top5Brands[1].Name)
}

func TestComputeReportSkipsDanglingReferences(t *testing.T) {
	brands := []models.Brand{{ID: "b1", Name: "Zara"}}
	clothing := []models.ClothingItem{{ID: "c1", Name: "Shirt", BrandID: "deleted-brand"}}
	sales := []models.Sale{
		saleOn("s1", "u1", "c1", 2),
		saleOn("s2", "u1", "deleted-item", 9),
	}

	report := ComputeReport(sales, clothing, brands)

	// The sale against the missing item drops out of the join entirely;
	// the item with a dangling brand still counts as sold, just brandless.
	require.Len(t, report.ItemsSold, 1)
	assert.Equal(t, int64(2), report.ItemsSold[0].Sold)
	assert.Empty(t, report.BrandsWithSales)
}

func TestComputeReportIgnoresNonPositiveQuantities(t *testing.T) {
	brands := []models.Brand{{ID: "b1", Name: "Zara"}}
	clothing := []models.ClothingItem{{ID: "c1", Name: "Shirt", BrandID: "b1"}}
	sales := []models.Sale{
		saleOn("s1", "u1", "c1", 0),
		saleOn("s2", "u1", "c1", 3),
	}

	report := ComputeReport(sales, clothing, brands)

	require.Len(t, report.ItemsSold, 1)
	assert.Equal(t, int64(3), report.ItemsSold[0].Sold)
}
