package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ordergate/internal/models"
)

// Mongo implements UserStore on top of a MongoDB collection.
type Mongo struct {
	users *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{users: db.Collection("users")}
}

// EnsureIndexes creates the unique indexes on userId and phoneNumber that
// back the Conflict semantics of Create and UpdateProfile.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (s *Mongo) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Mongo) FindByLogin(ctx context.Context, userID, phoneNumber string) (*models.User, error) {
	var u models.User
	filter := bson.M{"userId": userID, "phoneNumber": phoneNumber}
	if err := s.users.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Mongo) ExistsOther(ctx context.Context, userID, phoneNumber, excludeID string) (bool, error) {
	var or []bson.M
	if userID != "" {
		or = append(or, bson.M{"userId": userID})
	}
	if phoneNumber != "" {
		or = append(or, bson.M{"phoneNumber": phoneNumber})
	}
	if len(or) == 0 {
		return false, nil
	}
	filter := bson.M{"$or": or}
	if excludeID != "" {
		oid, err := bson.ObjectIDFromHex(excludeID)
		if err != nil {
			return false, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}
	count, err := s.users.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Mongo) Create(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &ConflictError{Field: duplicateField(err)}
		}
		return err
	}
	return nil
}

func (s *Mongo) SetLastLogin(ctx context.Context, id string, t time.Time) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	update := bson.M{"$set": bson.M{"lastLogin": t, "updatedAt": time.Now()}}
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	set := bson.M{"updatedAt": time.Now()}
	if upd.AdminName != "" {
		set["adminName"] = upd.AdminName
	}
	if upd.UserID != "" {
		set["userId"] = upd.UserID
	}
	if upd.PhoneNumber != "" {
		set["phoneNumber"] = upd.PhoneNumber
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, &ConflictError{Field: duplicateField(err)}
		}
		return nil, err
	}
	return &u, nil
}

func (s *Mongo) DeleteAll(ctx context.Context) error {
	_, err := s.users.DeleteMany(ctx, bson.M{})
	return err
}

// duplicateField recovers which unique index rejected the write. The server
// error message names the index, e.g. "... index: phoneNumber_1 dup key ...".
func duplicateField(err error) string {
	if strings.Contains(err.Error(), "phoneNumber") {
		return "phoneNumber"
	}
	return "userId"
}
