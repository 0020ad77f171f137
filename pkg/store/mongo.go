package store

import (
	"context"
	stderrors "errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/errors"
)

// MongoStore is the durable document backend for the hosted API.
// Documents are upserted by ID into a single collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB, verifies the connection with a ping,
// and binds to the given database and collection.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to ping mongodb")
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Put upserts the document by ID.
func (s *MongoStore) Put(ctx context.Context, doc *canvas.CanvasDocument) error {
	if err := errors.ValidateDocumentID(doc.ID); err != nil {
		return err
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"id": doc.ID}, doc, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to store document %q", doc.ID)
	}
	return nil
}

// Get fetches the document by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*canvas.CanvasDocument, error) {
	var doc canvas.CanvasDocument
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(errors.ErrCodeDocumentNotFound, "document %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to read document %q", id)
	}
	doc.ApplyDefaults()
	return &doc, nil
}

// List returns all stored document IDs.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"id": 1}).SetSort(bson.M{"id": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to list documents")
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var row struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to decode document row")
		}
		ids = append(ids, row.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to iterate documents")
	}
	return ids, nil
}

// Delete removes the document. Deleting an unknown ID is not an error.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to delete document %q", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
