package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

// mediaCounterID keys the counter document holding the highest media id
// ever assigned.
const mediaCounterID = "media"

// MediaStore keeps one document per media item, keyed by id.
type MediaStore struct {
	db *Database
}

func NewMediaStore(db *Database) *MediaStore {
	return &MediaStore{
		db: db,
	}
}

func (s *MediaStore) collection() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(MediaCollection)
}

// Load returns all items ordered by id, which is also creation order.
func (s *MediaStore) Load(ctx context.Context) ([]model.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	cursor, err := s.collection().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []model.MediaItem{}
	for cursor.Next(ctx) {
		var record model.Record
		if err := cursor.Decode(&record); err != nil {
			logger.Warn("skipping undecodable media document", "raw_id", cursor.Current.Lookup("_id").String(), "err", err)

			continue
		}
		items = append(items, record.Item())
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Save makes the collection match items: every item is upserted and every
// document whose id is not in items is deleted, in one ordered bulk write.
func (s *MediaStore) Save(ctx context.Context, items []model.MediaItem) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	ids := make([]int64, 0, len(items))
	writes := make([]mongo.WriteModel, 0, len(items)+1)
	for i := range items {
		ids = append(ids, items[i].ID)
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": items[i].ID}).
			SetReplacement(items[i].Record()).
			SetUpsert(true))
	}

	writes = append(writes, mongo.NewDeleteManyModel().
		SetFilter(bson.M{"_id": bson.M{"$nin": ids}}))

	_, err := s.collection().BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))

	return err
}

func (s *MediaStore) LastID(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var counter struct {
		LastID int64 `bson:"last_id"`
	}

	err := s.db.Client.Database(s.db.DBName).Collection(CounterCollection).
		FindOne(ctx, bson.M{"_id": mediaCounterID}).Decode(&counter)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return counter.LastID, nil
}

// SetLastID only ever raises the counter.
func (s *MediaStore) SetLastID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.db.Client.Database(s.db.DBName).Collection(CounterCollection).UpdateOne(ctx,
		bson.M{"_id": mediaCounterID},
		bson.M{"$max": bson.M{"last_id": id}},
		options.Update().SetUpsert(true))

	return err
}
