package client

import (
	"net/http"
	"sort"
	"sync"

	"clothing-store/models"
)

// FetchReports asks the server for the combined report and, when the
// endpoint is unavailable, recomputes the same shape locally from raw
// collection fetches.
func (c *Client) FetchReports() (models.Report, error) {
	var report models.Report
	if err := c.do(http.MethodGet, "reports", nil, &report); err == nil {
		return report, nil
	}
	return c.localReport()
}

// localReport fetches sales, clothing and brands concurrently. The three
// requests are independent and may complete in any order; each one fills
// only its own slice.
func (c *Client) localReport() (models.Report, error) {
	var (
		wg       sync.WaitGroup
		sales    []models.Sale
		clothing []models.ClothingItem
		brands   []models.Brand

		salesErr    error
		clothingErr error
		brandsErr   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		sales, salesErr = c.ListSales()
	}()
	go func() {
		defer wg.Done()
		clothing, clothingErr = c.ListClothing()
	}()
	go func() {
		defer wg.Done()
		brands, brandsErr = c.ListBrands()
	}()
	wg.Wait()

	for _, err := range []error{salesErr, clothingErr, brandsErr} {
		if err != nil {
			return models.Report{}, err
		}
	}

	return ComputeReport(sales, clothing, brands), nil
}

// ComputeReport derives the combined report from raw records with the same
// semantics as the server pipelines: quantities summed per brand and per
// item, sales whose item no longer exists dropped from the joins, ordering
// by volume descending with name ascending as tie-break, top-5 truncated.
func ComputeReport(sales []models.Sale, clothing []models.ClothingItem, brands []models.Brand) models.Report {
	itemByID := make(map[string]models.ClothingItem, len(clothing))
	for _, item := range clothing {
		itemByID[item.ID] = item
	}
	brandByID := make(map[string]models.Brand, len(brands))
	for _, brand := range brands {
		brandByID[brand.ID] = brand
	}

	soldByItem := map[string]int64{}
	soldByBrand := map[string]int64{}
	for _, sale := range sales {
		qty := int64(sale.Quantity)
		if qty <= 0 {
			continue
		}
		item, ok := itemByID[sale.ClothingID]
		if !ok {
			continue
		}
		soldByItem[item.ID] += qty
		if _, ok := brandByID[item.BrandID]; ok {
			soldByBrand[item.BrandID] += qty
		}
	}

	brandRows := []models.BrandSales{}
	for brandID, count := range soldByBrand {
		brandRows = append(brandRows, models.BrandSales{
			Name:       brandByID[brandID].Name,
			SalesCount: count,
			BrandID:    brandID,
		})
	}
	sort.Slice(brandRows, func(i, j int) bool {
		if brandRows[i].SalesCount != brandRows[j].SalesCount {
			return brandRows[i].SalesCount > brandRows[j].SalesCount
		}
		return brandRows[i].Name < brandRows[j].Name
	})

	itemRows := []models.ItemSold{}
	for itemID, sold := range soldByItem {
		item := itemByID[itemID]
		inStock := int64(item.InStock)
		itemRows = append(itemRows, models.ItemSold{
			ItemID:    itemID,
			Name:      item.Name,
			Sold:      sold,
			InStock:   inStock,
			Remaining: inStock - sold,
		})
	}
	sort.Slice(itemRows, func(i, j int) bool {
		if itemRows[i].Sold != itemRows[j].Sold {
			return itemRows[i].Sold > itemRows[j].Sold
		}
		return itemRows[i].Name < itemRows[j].Name
	})

	top5 := brandRows
	if len(top5) > 5 {
		top5 = top5[:5]
	}
	top5Rows := make([]models.BrandSales, len(top5))
	for i, row := range top5 {
		top5Rows[i] = models.BrandSales{Name: row.Name, SalesCount: row.SalesCount}
	}

	return models.Report{
		BrandsWithSales: brandRows,
		ItemsSold:       itemRows,
		Top5Brands:      top5Rows,
	}
}
