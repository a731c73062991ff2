package slots

import (
	"context"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSlots),
	}
}

func (r *SlotMongoRepository) FindByID(ctx context.Context, slotID string) (*models.Slot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var slot models.Slot
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) FindByDoctorAndDate(ctx context.Context, doctorID, date string, onlyAvailable bool) ([]models.Slot, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"doctor": doctorObjectID, "date": date}
	if onlyAvailable {
		filter["isAvailable"] = true
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	slots := make([]models.Slot, 0)
	err = cursor.All(ctx, &slots)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

// ClaimSlot is the conditional update that closes the double-booking race:
// the availability flag only flips when it is still true, so among N
// concurrent claims exactly one matches the filter.
func (r *SlotMongoRepository) ClaimSlot(ctx context.Context, slotID string) (*models.Slot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "isAvailable": true}
	update := bson.M{"$set": bson.M{"isAvailable": false}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.Slot
	err = r.Collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) ReleaseSlot(ctx context.Context, slotID string) error {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{"isAvailable": true}}

	// A vanished slot is tolerated; the appointment side still proceeds.
	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SlotMongoRepository) SetAvailability(ctx context.Context, slotID string, available bool) (*models.Slot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{"isAvailable": available}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.Slot
	err = r.Collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) UpdateTimingsIfAvailable(ctx context.Context, slotID, startTime, endTime string) (*models.Slot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "isAvailable": true}
	update := bson.M{"$set": bson.M{"startTime": startTime, "endTime": endTime}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.Slot
	err = r.Collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) DeleteByDoctorAndDate(ctx context.Context, doctorID, date string) error {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteMany(ctx, bson.M{"doctor": doctorObjectID, "date": date})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *SlotMongoRepository) InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	documents := make([]interface{}, 0, len(slots))
	for i := range slots {
		if slots[i].ID.IsZero() {
			slots[i].ID = primitive.NewObjectID()
		}
		documents = append(documents, slots[i])
	}

	_, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return slots, nil
}
