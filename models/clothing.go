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

type ClothingItem struct {
	ID       string         `json:"_id" bson:"_id,omitempty"`
	Name     string         `json:"name" bson:"name" binding:"required"`
	BrandID  string         `json:"brand_id" bson:"brand_id" binding:"required"`
	Category string         `json:"category" bson:"category"`
	Color    string         `json:"color" bson:"color"`
	Price    extjson.Double `json:"price" bson:"price"`
	InStock  extjson.Int    `json:"in_stock" bson:"in_stock"`
	Size     []string       `json:"size" bson:"size"`
}

// Stock write modes for UpdateStock.
const (
	StockModeDecrement = "decrement"
	StockModeSet       = "set"
)

func AddClothingItem(item ClothingItem) (ClothingItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}
	if item.Size == nil {
		item.Size = []string{}
	}
	_, err := db.ClothingCollection.InsertOne(ctx, item)
	if err != nil {
		return ClothingItem{}, err
	}
	return item, nil
}

func GetAllClothingItems() ([]ClothingItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.ClothingCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []ClothingItem{}
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func GetClothingItemByID(id string) (ClothingItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var item ClothingItem
	err := db.ClothingCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return ClothingItem{}, err
	}
	return item, nil
}

func UpdateClothingItem(id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.ClothingCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func DeleteClothingItem(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.ClothingCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DecrementStock subtracts amount from in_stock. It is never triggered by a
// sale insert; callers decide when the two writes happen.
func DecrementStock(id string, amount int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.ClothingCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"in_stock": -amount}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetStock overwrites in_stock with an absolute value.
func SetStock(id string, value int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.ClothingCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"in_stock": value}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
