package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"library-assistant/internal/chat/repository"
	"library-assistant/internal/model"
	pkgLog "library-assistant/pkg/log"
)

// CollectionName holds one document per (cardnumber, session).
const CollectionName = "chat_retention_history"

type implRepository struct {
	coll *mongo.Collection
	l    pkgLog.Logger
}

// New creates a Mongo-backed retention repository.
func New(db *mongo.Database, l pkgLog.Logger) repository.RetentionRepository {
	return &implRepository{
		coll: db.Collection(CollectionName),
		l:    l,
	}
}

// retentionDoc is the stored document shape.
type retentionDoc struct {
	Cardnumber  string       `bson:"cardnumber"`
	SessionID   string       `bson:"session_id"`
	Name        string       `bson:"name"`
	Messages    []model.Turn `bson:"messages"`
	LastUpdated time.Time    `bson:"last_updated"`
}
