package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

const collectionSnapshots = "collections"

// collectionDocument stores one whole collection under its name. The payload
// is kept as JSON text so it stays readable from the mongo shell.
type collectionDocument struct {
	Name      string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// documents is the part of *mongo.Collection the store uses.
type documents interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
}

type CollectionStore struct {
	col documents
	db  *mongo.Database
	now func() time.Time
}

func NewCollectionStore(db *mongo.Database) *CollectionStore {
	return &CollectionStore{col: db.Collection(collectionSnapshots), db: db, now: time.Now}
}

// Load retrieves the payload saved under name.
func (s *CollectionStore) Load(ctx context.Context, name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc collectionDocument
	err := s.col.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("mongo load %s: %w", name, err)
	}
	return []byte(doc.Payload), nil
}

// Save replaces the document of name, creating it on first write.
func (s *CollectionStore) Save(ctx context.Context, name string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := collectionDocument{Name: name, Payload: string(payload), UpdatedAt: s.now().UTC()}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo save %s: %w", name, err)
	}
	return nil
}

// Ping runs the server ping command against the store database.
func (s *CollectionStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("mongo: no database")
	}
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
