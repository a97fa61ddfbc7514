package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/snipx/snipx-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDoc is the persisted shape of a user
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash []byte             `bson:"password_hash"`
	FirstName    string             `bson:"first_name,omitempty"`
	LastName     string             `bson:"last_name,omitempty"`
	IsDemo       bool               `bson:"is_demo,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		IsDemo:       d.IsDemo,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserRepository stores users in the users collection
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a user repository and ensures the unique email
// index exists. The index is what makes concurrent demo-user provisioning
// safe.
func NewUserRepository(ctx context.Context, db *DB) (*UserRepository, error) {
	coll := db.db.Collection(usersCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create email index: %w", err)
	}

	return &UserRepository{coll: coll}, nil
}

// Insert stores a new user and returns the generated id.
// Returns domain.ErrDuplicateEmail when the email is already taken.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (string, error) {
	doc := userDoc{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsDemo:       user.IsDemo,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrDuplicateEmail
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetByEmail looks up a user by email. Returns nil, nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

// GetByID looks up a user by id. Returns domain.ErrUserNotFound when absent
// or when the id is not a valid ObjectID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var doc userDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return doc.toDomain(), nil
}

// Update applies the non-nil fields of update and bumps updated_at.
// Returns domain.ErrUserNotFound when no document matched.
func (r *UserRepository) Update(ctx context.Context, id string, update domain.UserUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpsertByEmail inserts the user unless a document with the same email
// already exists, and returns the stored user either way. Used for demo
// account provisioning, where concurrent first calls would otherwise race.
func (r *UserRepository) UpsertByEmail(ctx context.Context, user *domain.User) (*domain.User, error) {
	filter := bson.M{"email": user.Email}
	update := bson.M{"$setOnInsert": bson.M{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"is_demo":       user.IsDemo,
		"created_at":    user.CreatedAt,
		"updated_at":    user.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc userDoc
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return doc.toDomain(), nil
}
