package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to MongoDB and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// slotRecord is the stored shape of a slot: the serialized document kept as
// an opaque string so the payload is byte-identical to the other backends.
type slotRecord struct {
	Key       string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoSlot stores the document as one record of a collection, keyed by Key.
type MongoSlot struct {
	Collection *mongo.Collection
	Key        string
}

// Read loads the payload of the slot record.
func (s *MongoSlot) Read(ctx context.Context) ([]byte, error) {
	if s.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var rec slotRecord
	err := s.Collection.FindOne(ctx, bson.M{"_id": s.Key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("find slot %q: %w", s.Key, err)
	}
	if rec.Payload == "" {
		return nil, ErrSlotEmpty
	}
	return []byte(rec.Payload), nil
}

// Write upserts the slot record with the new payload.
func (s *MongoSlot) Write(ctx context.Context, payload []byte) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	rec := slotRecord{Key: s.Key, Payload: string(payload), UpdatedAt: time.Now().UTC()}
	_, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": s.Key}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace slot %q: %w", s.Key, err)
	}
	return nil
}
