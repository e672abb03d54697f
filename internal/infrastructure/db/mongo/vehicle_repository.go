package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autoyard/inventory-system/internal/core/domain"
)

const vehiclesCollection = "vehicles"

type MongoVehicleRepository struct {
	coll *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) *MongoVehicleRepository {
	return &MongoVehicleRepository{coll: db.Collection(vehiclesCollection)}
}

type mongoVehicle struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Make      string             `bson:"make"`
	Model     string             `bson:"model"`
	Year      int                `bson:"year"`
	Color     string             `bson:"color"`
	Price     float64            `bson:"price"`
	Available bool               `bson:"available"`
}

func (r *MongoVehicleRepository) Create(ctx context.Context, v *domain.Vehicle) (string, error) {
	doc := mongoVehicle{
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		Color:     v.Color,
		Price:     v.Price,
		Available: v.Available,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert vehicle: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert vehicle: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoVehicleRepository) FindByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVehicleNotFound
	}

	var mv mongoVehicle
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return mv.toDomain(), nil
}

func (r *MongoVehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles := make([]*domain.Vehicle, 0)
	for cursor.Next(ctx) {
		var mv mongoVehicle
		if err := cursor.Decode(&mv); err != nil {
			return nil, fmt.Errorf("decode vehicle: %w", err)
		}
		vehicles = append(vehicles, mv.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

// Update applies the change set as one $set document in a single UpdateOne,
// so concurrent readers see either none or all of the supplied fields.
func (r *MongoVehicleRepository) Update(ctx context.Context, id string, ch domain.VehicleChanges) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrVehicleNotFound
	}

	set := bson.M{}
	if ch.Make != nil {
		set["make"] = *ch.Make
	}
	if ch.Model != nil {
		set["model"] = *ch.Model
	}
	if ch.Year != nil {
		set["year"] = *ch.Year
	}
	if ch.Color != nil {
		set["color"] = *ch.Color
	}
	if ch.Price != nil {
		set["price"] = *ch.Price
	}
	if ch.Available != nil {
		set["available"] = *ch.Available
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *MongoVehicleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrVehicleNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (mv *mongoVehicle) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:        mv.ID.Hex(),
		Make:      mv.Make,
		Model:     mv.Model,
		Year:      mv.Year,
		Color:     mv.Color,
		Price:     mv.Price,
		Available: mv.Available,
	}
}
