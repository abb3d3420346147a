package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"library-assistant/internal/chat/repository"
	"library-assistant/internal/model"
)

func sessionFilter(cardnumber, sessionID string) bson.M {
	return bson.M{"cardnumber": cardnumber, "session_id": sessionID}
}

// appendUpdate is the single update document behind AppendTurns. The
// $slice bound makes the server trim the oldest turns in the same
// atomic write that pushes the new ones.
func appendUpdate(turns []model.Turn, now time.Time) bson.M {
	return bson.M{
		"$push": bson.M{
			"messages": bson.M{
				"$each":  turns,
				"$slice": -repository.RetentionLimit,
			},
		},
		"$set":         bson.M{"last_updated": now},
		"$setOnInsert": bson.M{"name": ""},
	}
}

func renameUpdate(newName string, now time.Time) bson.M {
	return bson.M{"$set": bson.M{"name": newName, "last_updated": now}}
}

// truncateMessages keeps the turns up to and including index, giving
// the turn at index the new text while preserving its role and
// timestamp. The input slice is never mutated.
func truncateMessages(messages []model.Turn, index int, newText string) ([]model.Turn, error) {
	if index < 0 || index >= len(messages) {
		return nil, fmt.Errorf("%w: %d of %d", repository.ErrTurnIndexOutOfRange, index, len(messages))
	}
	truncated := make([]model.Turn, index+1)
	copy(truncated, messages[:index+1])
	truncated[index].Text = newText
	return truncated, nil
}

func editUpdate(messages []model.Turn, now time.Time) bson.M {
	return bson.M{"$set": bson.M{"messages": messages, "last_updated": now}}
}

// listFindOptions projects only the listing fields so the message
// payloads never leave the server, newest session first.
func listFindOptions() *options.FindOptions {
	return options.Find().
		SetProjection(bson.M{"session_id": 1, "name": 1, "last_updated": 1}).
		SetSort(bson.M{"last_updated": -1})
}

func (r *implRepository) LoadTurns(ctx context.Context, cardnumber, sessionID string) ([]model.Turn, error) {
	var doc retentionDoc
	err := r.coll.FindOne(ctx, sessionFilter(cardnumber, sessionID),
		options.FindOne().SetProjection(bson.M{"messages": 1})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "retention repository: load failed for %s/%s: %v", cardnumber, sessionID, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	return doc.Messages, nil
}

// AppendTurns relies on $push with $each/$slice so the retention cap
// is enforced by the server in one atomic update. Concurrent writers
// for the same user can never observe or produce an over-cap record.
func (r *implRepository) AppendTurns(ctx context.Context, cardnumber, sessionID string, turns []model.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	_, err := r.coll.UpdateOne(ctx, sessionFilter(cardnumber, sessionID),
		appendUpdate(turns, time.Now().UTC()),
		options.Update().SetUpsert(true))
	if err != nil {
		r.l.Errorf(ctx, "retention repository: append failed for %s/%s: %v", cardnumber, sessionID, err)
		return fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *implRepository) RenameSession(ctx context.Context, cardnumber, sessionID, newName string) error {
	res, err := r.coll.UpdateOne(ctx, sessionFilter(cardnumber, sessionID),
		renameUpdate(newName, time.Now().UTC()))
	if err != nil {
		r.l.Errorf(ctx, "retention repository: rename failed for %s/%s: %v", cardnumber, sessionID, err)
		return fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrSessionNotFound
	}
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, cardnumber, sessionID string) error {
	_, err := r.coll.DeleteOne(ctx, sessionFilter(cardnumber, sessionID))
	if err != nil {
		r.l.Errorf(ctx, "retention repository: delete failed for %s/%s: %v", cardnumber, sessionID, err)
		return fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	// A zero deleted count means the session never existed: a no-op.
	return nil
}

// UpdateTurn implements edit-and-regenerate: the turn at index keeps
// its role and timestamp, gets the new text, and everything after it
// is discarded.
func (r *implRepository) UpdateTurn(ctx context.Context, cardnumber, sessionID string, index int, newText string) ([]model.Turn, error) {
	var doc retentionDoc
	err := r.coll.FindOne(ctx, sessionFilter(cardnumber, sessionID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "retention repository: edit load failed for %s/%s: %v", cardnumber, sessionID, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}

	truncated, err := truncateMessages(doc.Messages, index, newText)
	if err != nil {
		return nil, err
	}

	_, err = r.coll.UpdateOne(ctx, sessionFilter(cardnumber, sessionID),
		editUpdate(truncated, time.Now().UTC()))
	if err != nil {
		r.l.Errorf(ctx, "retention repository: edit save failed for %s/%s: %v", cardnumber, sessionID, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	return truncated, nil
}

func (r *implRepository) ListSessions(ctx context.Context, cardnumber string) ([]model.SessionInfo, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"cardnumber": cardnumber}, listFindOptions())
	if err != nil {
		r.l.Errorf(ctx, "retention repository: list failed for %s: %v", cardnumber, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	sessions := make([]model.SessionInfo, 0)
	for cursor.Next(ctx) {
		var doc retentionDoc
		if err := cursor.Decode(&doc); err != nil {
			r.l.Errorf(ctx, "retention repository: list decode failed for %s: %v", cardnumber, err)
			return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
		}
		sessions = append(sessions, model.SessionInfo{
			SessionID:   doc.SessionID,
			Name:        doc.Name,
			LastUpdated: doc.LastUpdated,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	return sessions, nil
}
