package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-assistant/internal/auth/repository"
	"library-assistant/internal/model"
	pkgLog "library-assistant/pkg/log"
)

// CollectionName holds one document per patron account.
const CollectionName = "users"

type implRepository struct {
	coll *mongo.Collection
	l    pkgLog.Logger
}

// New creates a Mongo-backed user repository.
func New(db *mongo.Database, l pkgLog.Logger) repository.UserRepository {
	return &implRepository{
		coll: db.Collection(CollectionName),
		l:    l,
	}
}

// userDoc is the stored document shape.
type userDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Cardnumber string             `bson:"cardnumber"`
	Username   string             `bson:"username"`
	Password   string             `bson:"password"` // bcrypt hash
}

func (r *implRepository) GetByCardnumber(ctx context.Context, cardnumber string) (model.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"cardnumber": cardnumber}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, repository.ErrUserNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "user repository: lookup failed for %s: %v", cardnumber, err)
		return model.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	return model.User{
		ID:           doc.ID.Hex(),
		Cardnumber:   doc.Cardnumber,
		Username:     doc.Username,
		PasswordHash: doc.Password,
	}, nil
}
