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

type Brand struct {
	ID      string       `json:"_id" bson:"_id,omitempty"`
	Name    string       `json:"name" bson:"name" binding:"required"`
	Country string       `json:"country" bson:"country"`
	Founded *extjson.Int `json:"founded,omitempty" bson:"founded,omitempty"`
}

func AddBrand(brand Brand) (Brand, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if brand.ID == "" {
		brand.ID = primitive.NewObjectID().Hex()
	}
	_, err := db.BrandCollection.InsertOne(ctx, brand)
	if err != nil {
		return Brand{}, err
	}
	return brand, nil
}

func GetAllBrands() ([]Brand, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.BrandCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	brands := []Brand{}
	if err = cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func GetBrandByID(id string) (Brand, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var brand Brand
	err := db.BrandCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if err != nil {
		return Brand{}, err
	}
	return brand, nil
}

// UpdateBrand merges the given fields onto the stored record.
func UpdateBrand(id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.BrandCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteBrand is unconditional: clothing items referencing the brand keep
// their brand_id and simply dangle.
func DeleteBrand(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.BrandCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
