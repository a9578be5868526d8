package models

import (
	"context"
	"time"

	db "clothing-store/database"
	"clothing-store/extjson"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sale references a user and a clothing item by soft id; neither reference
// is checked against the other collections. Inserting a sale never changes
// the item's stock.
type Sale struct {
	ID         string           `json:"_id" bson:"_id,omitempty"`
	UserID     string           `json:"user_id" bson:"user_id" binding:"required"`
	ClothingID string           `json:"clothing_id" bson:"clothing_id" binding:"required"`
	Quantity   extjson.Int      `json:"quantity" bson:"quantity" binding:"required"`
	Date       extjson.DateTime `json:"date" bson:"date"`
}

func AddSale(sale Sale) (Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if sale.ID == "" {
		sale.ID = primitive.NewObjectID().Hex()
	}
	if sale.Date.Time().IsZero() {
		sale.Date = extjson.DateTime(time.Now().UTC())
	}
	_, err := db.SaleCollection.InsertOne(ctx, sale)
	if err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func GetAllSales() ([]Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.SaleCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sales := []Sale{}
	if err = cursor.All(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func GetSaleByID(id string) (Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var sale Sale
	err := db.SaleCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&sale)
	if err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func UpdateSale(id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.SaleCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func DeleteSale(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.SaleCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
