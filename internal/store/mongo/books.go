package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/5w1tchy/library-api/internal/models"
	"github.com/5w1tchy/library-api/internal/store/books"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ books.Store = (*Store)(nil)

type bookDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Comments []string           `bson:"comments"`
}

func (d bookDoc) model() models.Book {
	return models.Book{ID: d.ID.Hex(), Title: d.Title, Comments: d.Comments}.Normalize()
}

type summaryDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Title        string             `bson:"title"`
	CommentCount int                `bson:"commentcount"`
}

// Store implements books.Store on a single collection.
type Store struct {
	gw   *Gateway
	coll *mongo.Collection
}

func New(gw *Gateway) *Store {
	return &Store{gw: gw, coll: gw.Collection()}
}

// commentcount is computed server side from the live comments array.
var listPipeline = mongo.Pipeline{
	{{Key: "$project", Value: bson.D{
		{Key: "title", Value: 1},
		{Key: "commentcount", Value: bson.D{{Key: "$size", Value: bson.D{
			{Key: "$ifNull", Value: bson.A{"$comments", bson.A{}}},
		}}}},
	}}},
}

func (s *Store) List(ctx context.Context) ([]models.BookSummary, error) {
	cur, err := s.coll.Aggregate(ctx, listPipeline)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]models.BookSummary, 0)
	for cur.Next(ctx) {
		var d summaryDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode book summary: %w", err)
		}
		out = append(out, models.BookSummary{ID: d.ID.Hex(), Title: d.Title, CommentCount: d.CommentCount})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, title string) (models.Book, error) {
	doc := bookDoc{Title: title, Comments: []string{}}
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return models.Book{}, fmt.Errorf("insert book: %w", mapWriteErr(err))
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Book{}, fmt.Errorf("insert book: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.model(), nil
}

func (s *Store) Get(ctx context.Context, id string) (models.Book, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Book{}, err
	}
	var d bookDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Book{}, books.ErrNotFound
		}
		return models.Book{}, fmt.Errorf("find book %s: %w", id, err)
	}
	return d.model(), nil
}

// AddComment pushes and reads back in one findAndModify round trip.
func (s *Store) AddComment(ctx context.Context, id, comment string) (models.Book, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Book{}, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$push": bson.M{"comments": comment}}

	var d bookDoc
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Book{}, books.ErrNotFound
		}
		return models.Book{}, fmt.Errorf("push comment to %s: %w", id, mapWriteErr(err))
	}
	return d.model(), nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete book %s: %w", id, mapWriteErr(err))
	}
	if res.DeletedCount < 1 {
		return books.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("delete all books: %w", mapWriteErr(err))
	}
	return res.DeletedCount, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.gw == nil {
		return nil
	}
	return s.gw.Ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.gw == nil {
		return nil
	}
	return s.gw.Close(ctx)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", books.ErrMalformedID, id)
	}
	return oid, nil
}

func mapWriteErr(err error) error {
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return books.ErrNotAcknowledged
	}
	return err
}
