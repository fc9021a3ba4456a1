package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

const (
	MediaCollection   = "media"
	CounterCollection = "counters"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty:  true,
			DefaultDocumentM: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initMediaCollection(db); err != nil {
		return nil, err
	}

	logger.Info("connected to mongodb", "db", cfg.DBName)

	return db, nil
}

func initMediaCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": MediaCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "type", "title", "status", "created_at", "updated_at"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":    []string{"long", "int"},
					"minimum":     1,
					"description": "must be a positive numeric id",
				},
				"type":   bson.M{"enum": []string{"image", "video"}},
				"title":  bson.M{"bsonType": "string", "minLength": 1},
				"status": bson.M{"bsonType": "string"},
				"tags": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
				"media_url": bson.M{"bsonType": "string"},
				"media_urls": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
				"thumbnail_url": bson.M{"bsonType": "string"},
				"media_meta": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "object"},
				},
				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, MediaCollection, collOpts); err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(MediaCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
