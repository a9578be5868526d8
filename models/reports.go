package models

import (
	"context"
	"time"

	db "clothing-store/database"

	"go.mongodb.org/mongo-driver/bson"
)

// BrandSales is one row of the brands-with-sales and top-5 views.
type BrandSales struct {
	Name       string `json:"name" bson:"name"`
	SalesCount int64  `json:"sales_count" bson:"sales_count"`
	BrandID    string `json:"brand_id,omitempty" bson:"brand_id,omitempty"`
}

// ItemSold is one row of the items-sold view. InStock is whatever the
// clothing record currently holds; the query never decrements it.
type ItemSold struct {
	ItemID    string `json:"item_id" bson:"item_id"`
	Name      string `json:"name" bson:"name"`
	Sold      int64  `json:"sold" bson:"sold"`
	InStock   int64  `json:"in_stock" bson:"in_stock"`
	Remaining int64  `json:"remaining" bson:"remaining"`
}

// SalesOnDate is one row of the sales-by-date view.
type SalesOnDate struct {
	Date      string `json:"date" bson:"date"`
	TotalSold int64  `json:"totalSold" bson:"totalSold"`
}

// Report is the combined payload served at /reports.
type Report struct {
	BrandsWithSales []BrandSales `json:"brands_with_sales"`
	ItemsSold       []ItemSold   `json:"items_sold"`
	Top5Brands      []BrandSales `json:"top5_brands"`
}

// brandVolumePipeline groups sale quantities by brand via the clothing join.
// Ties are broken by brand name so the ordering is deterministic.
func brandVolumePipeline(limit int) []bson.M {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "clothing",
			"localField":   "clothing_id",
			"foreignField": "_id",
			"as":           "item",
		}},
		{"$unwind": "$item"},
		{"$group": bson.M{
			"_id":         "$item.brand_id",
			"sales_count": bson.M{"$sum": "$quantity"},
		}},
		{"$lookup": bson.M{
			"from":         "brands",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "brand",
		}},
		{"$unwind": "$brand"},
		{"$project": bson.M{
			"_id":         0,
			"brand_id":    "$_id",
			"name":        "$brand.name",
			"sales_count": 1,
		}},
		{"$sort": bson.D{{Key: "sales_count", Value: -1}, {Key: "name", Value: 1}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}
	return pipeline
}

// BrandsWithSales returns sale volume per brand, highest first. Brands
// without sales do not appear; no sales at all yields an empty slice.
func BrandsWithSales() ([]BrandSales, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.SaleCollection.Aggregate(ctx, brandVolumePipeline(0))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []BrandSales{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Top5Brands returns at most five brands by sale volume.
func Top5Brands() ([]BrandSales, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.SaleCollection.Aggregate(ctx, brandVolumePipeline(5))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []BrandSales{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ItemsSold groups sale quantities by clothing item and joins the item for
// its name and stored stock. Sales whose item no longer exists drop out of
// the join, and items with no sales do not appear at all; in_stock reflects
// whatever the record currently holds.
func ItemsSold() ([]ItemSold, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":  "$clothing_id",
			"sold": bson.M{"$sum": "$quantity"},
		}},
		{"$lookup": bson.M{
			"from":         "clothing",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "item",
		}},
		{"$unwind": "$item"},
		{"$project": bson.M{
			"_id":       0,
			"item_id":   "$_id",
			"name":      "$item.name",
			"sold":      1,
			"in_stock":  bson.M{"$ifNull": bson.A{"$item.in_stock", 0}},
			"remaining": bson.M{"$subtract": bson.A{bson.M{"$ifNull": bson.A{"$item.in_stock", 0}}, "$sold"}},
		}},
		{"$sort": bson.D{{Key: "sold", Value: -1}, {Key: "name", Value: 1}}},
	}

	cursor, err := db.SaleCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []ItemSold{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesByDate sums sale quantities for the calendar day of the given time
// (UTC). A day with no sales yields an empty slice, not an error.
func SalesByDate(day time.Time) ([]SalesOnDate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	pipeline := []bson.M{
		{"$match": bson.M{"date": bson.M{"$gte": start, "$lt": end}}},
		{"$group": bson.M{
			"_id":       bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$date"}},
			"totalSold": bson.M{"$sum": "$quantity"},
		}},
		{"$project": bson.M{"_id": 0, "date": "$_id", "totalSold": 1}},
	}

	cursor, err := db.SaleCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []SalesOnDate{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CombinedReport assembles the three views for the /reports endpoint.
func CombinedReport() (Report, error) {
	brands, err := BrandsWithSales()
	if err != nil {
		return Report{}, err
	}
	items, err := ItemsSold()
	if err != nil {
		return Report{}, err
	}
	top5, err := Top5Brands()
	if err != nil {
		return Report{}, err
	}
	return Report{
		BrandsWithSales: brands,
		ItemsSold:       items,
		Top5Brands:      top5,
	}, nil
}
