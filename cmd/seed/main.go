// Seed and operations script: upserts sample records, removes one brand,
// registers a sale with its explicit (separate) stock decrement, then prints
// a few reporting queries. Mirrors the admin workflow end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"clothing-store/config"
	db "clothing-store/database"
	"clothing-store/extjson"
	"clothing-store/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	fakeCount := flag.Int("fake", 0, "number of extra fake users (each with one sale) to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db.InitDB(cfg)
	defer db.DisconnectDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, *fakeCount); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	showRecentSales(ctx)
	showStockByCategory(ctx)
	showTopClothing(ctx)
	showTopBrands(ctx)
}

func seed(ctx context.Context, fakeCount int) error {
	fmt.Println("--- upserting brands ---")
	founded2018 := extjson.Int(2018)
	founded2022 := extjson.Int(2022)
	_, err := db.BrandCollection.BulkWrite(ctx, []mongo.WriteModel{
		mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": "brand010"}).
			SetUpdate(bson.M{"$set": models.Brand{Name: "UrbanStyle", Country: "USA", Founded: &founded2018}}).
			SetUpsert(true),
		mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": "brand011"}).
			SetUpdate(bson.M{"$set": models.Brand{Name: "CostaRicaWear", Country: "Costa Rica", Founded: &founded2022}}).
			SetUpsert(true),
	})
	if err != nil {
		return fmt.Errorf("brand upsert: %w", err)
	}

	fmt.Println("--- deleting brand003 ---")
	switch err := models.DeleteBrand("brand003"); err {
	case nil:
		fmt.Println("brand003 deleted")
	case mongo.ErrNoDocuments:
		fmt.Println("brand003 not found")
	default:
		return fmt.Errorf("brand delete: %w", err)
	}

	fmt.Println("--- upserting clothing ---")
	jacket := models.ClothingItem{
		ID:       "cloth010",
		Name:     "Urban Jacket",
		BrandID:  "brand010",
		Category: "Outerwear",
		Color:    "Black",
		Price:    extjson.Double(89.95),
		InStock:  extjson.Int(150),
		Size:     []string{"S", "M", "L", "XL"},
	}
	jacketFields := jacket
	jacketFields.ID = ""
	_, err = db.ClothingCollection.UpdateOne(ctx,
		bson.M{"_id": jacket.ID},
		bson.M{"$set": jacketFields},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("clothing upsert: %w", err)
	}

	fmt.Println("--- upserting user ---")
	carlos := models.User{
		ID:       "user010",
		Name:     "Carlos Jiménez",
		Email:    "carlos.jimenez@example.com",
		Password: "hashedcarlos123",
		Address:  models.Address{City: "San José", Country: "Costa Rica"},
		Orders:   []string{},
	}
	carlosFields := carlos
	carlosFields.ID = ""
	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"_id": carlos.ID},
		bson.M{"$set": carlosFields},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("user upsert: %w", err)
	}

	fmt.Println("--- inserting sale ---")
	sale := models.Sale{
		ID:         "sale010",
		UserID:     "user010",
		ClothingID: "cloth010",
		Quantity:   extjson.Int(3),
		Date:       extjson.DateTime(time.Now().UTC()),
	}
	if _, err := models.AddSale(sale); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("sale insert: %w", err)
		}
		fmt.Println("sale010 already exists")
	} else {
		fmt.Println("sale010 recorded")
	}

	// The decrement is its own write: inserting the sale above did not touch
	// stock, and there is no rollback if this step fails.
	fmt.Println("--- decrementing stock ---")
	if err := models.DecrementStock("cloth010", 3); err != nil {
		return fmt.Errorf("stock decrement: %w", err)
	}
	fmt.Println("cloth010 stock reduced by 3")

	if fakeCount > 0 {
		fmt.Printf("--- generating %d fake users with sales ---\n", fakeCount)
		for i := 0; i < fakeCount; i++ {
			user, err := models.AddUser(models.User{
				Name:     gofakeit.Name(),
				Email:    gofakeit.Email(),
				Password: gofakeit.Password(true, true, true, false, false, 12),
				Address:  models.Address{City: gofakeit.City(), Country: gofakeit.Country()},
			})
			if err != nil {
				return fmt.Errorf("fake user insert: %w", err)
			}
			_, err = models.AddSale(models.Sale{
				UserID:     user.ID,
				ClothingID: "cloth010",
				Quantity:   extjson.Int(gofakeit.Number(1, 4)),
				Date:       extjson.DateTime(gofakeit.DateRange(time.Now().AddDate(0, 0, -6), time.Now()).UTC()),
			})
			if err != nil {
				return fmt.Errorf("fake sale insert: %w", err)
			}
		}
	}

	return nil
}

// showRecentSales prints per-item quantities for the last 7 days.
func showRecentSales(ctx context.Context) {
	fmt.Println("\nsales in the last 7 days:")
	weekAgo := time.Now().AddDate(0, 0, -7)

	cursor, err := db.SaleCollection.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"date": bson.M{"$gte": weekAgo}}},
		{"$group": bson.M{"_id": "$clothing_id", "total": bson.M{"$sum": "$quantity"}}},
	})
	if err != nil {
		log.Error().Err(err).Msg("recent sales query failed")
		return
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Total int64  `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		log.Error().Err(err).Msg("recent sales decode failed")
		return
	}
	for _, row := range rows {
		fmt.Printf("  item %s sold %d times\n", row.ID, row.Total)
	}
}

func showStockByCategory(ctx context.Context) {
	fmt.Println("\ntotal stock by category:")

	cursor, err := db.ClothingCollection.Aggregate(ctx, []bson.M{
		{"$group": bson.M{"_id": "$category", "stock_total": bson.M{"$sum": "$in_stock"}}},
	})
	if err != nil {
		log.Error().Err(err).Msg("stock by category query failed")
		return
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID         string `bson:"_id"`
		StockTotal int64  `bson:"stock_total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		log.Error().Err(err).Msg("stock by category decode failed")
		return
	}
	for _, row := range rows {
		fmt.Printf("  %s: %d units in stock\n", row.ID, row.StockTotal)
	}
}

func showTopClothing(ctx context.Context) {
	fmt.Println("\ntop 3 best-selling items:")

	cursor, err := db.SaleCollection.Aggregate(ctx, []bson.M{
		{"$group": bson.M{"_id": "$clothing_id", "totalSold": bson.M{"$sum": "$quantity"}}},
		{"$sort": bson.D{{Key: "totalSold", Value: -1}}},
		{"$limit": 3},
		{"$lookup": bson.M{"from": "clothing", "localField": "_id", "foreignField": "_id", "as": "item"}},
		{"$unwind": "$item"},
		{"$project": bson.M{"name": "$item.name", "totalSold": 1}},
	})
	if err != nil {
		log.Error().Err(err).Msg("top clothing query failed")
		return
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Name      string `bson:"name"`
		TotalSold int64  `bson:"totalSold"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		log.Error().Err(err).Msg("top clothing decode failed")
		return
	}
	for i, row := range rows {
		fmt.Printf("  %d. %s: %d sold\n", i+1, row.Name, row.TotalSold)
	}
}

func showTopBrands(ctx context.Context) {
	fmt.Println("\ntop 3 brands by volume:")

	cursor, err := db.SaleCollection.Aggregate(ctx, []bson.M{
		{"$lookup": bson.M{"from": "clothing", "localField": "clothing_id", "foreignField": "_id", "as": "item"}},
		{"$unwind": "$item"},
		{"$group": bson.M{"_id": "$item.brand_id", "totalSales": bson.M{"$sum": "$quantity"}}},
		{"$sort": bson.D{{Key: "totalSales", Value: -1}}},
		{"$limit": 3},
		{"$lookup": bson.M{"from": "brands", "localField": "_id", "foreignField": "_id", "as": "brand"}},
		{"$unwind": "$brand"},
		{"$project": bson.M{"brand": "$brand.name", "totalSales": 1}},
	})
	if err != nil {
		log.Error().Err(err).Msg("top brands query failed")
		return
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Brand      string `bson:"brand"`
		TotalSales int64  `bson:"totalSales"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		log.Error().Err(err).Msg("top brands decode failed")
		return
	}
	for i, row := range rows {
		fmt.Printf("  %d. %s: %d units sold\n", i+1, row.Brand, row.TotalSales)
	}
}
