package repository

import (
	"context"
	"errors"
	"time"

	"github.com/storely/basket/internal/adapters/mongo/document"
	"github.com/storely/basket/internal/core/domain"
	"github.com/storely/basket/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BasketRegistryRepository struct {
	*BaseRepository[document.BasketDocument]
	collection *mongo.Collection
}

func NewBasketRegistryRepository(db *mongo.Database) port.BasketRegistryPort {
	return &BasketRegistryRepository{
		BaseRepository: NewBaseRepository[document.BasketDocument](db, "baskets"),
		collection:     db.Collection("baskets"),
	}
}

func (r *BasketRegistryRepository) Create(ctx context.Context) (domain.ID, error) {
	doc := document.BasketDocument{CreatedAt: time.Now()}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", parseError(err)
	}
	return domain.ID(result.InsertedID.(primitive.ObjectID).Hex()), nil
}

func (r *BasketRegistryRepository) Exists(ctx context.Context, id domain.ID) (bool, error) {
	_, err := r.FindByID(ctx, string(id))
	if err != nil {
		return false, parseError(err)
	}

	return true, nil
}

// BasketLineRepository stores basket lines as one document per line,
// keyed by (scope, product_id). It backs BasketStore when the mongo
// backend is selected.
type BasketLineRepository struct {
	*BaseRepository[document.BasketLineDocument]
	collection *mongo.Collection
	scope      domain.ID
}

type BasketLineRepositoryFactory struct {
	db *mongo.Database
}

func NewBasketLineRepositoryFactory(db *mongo.Database) *BasketLineRepositoryFactory {
	return &BasketLineRepositoryFactory{db: db}
}

func (f *BasketLineRepositoryFactory) For(scope domain.ID) port.BasketStorePort {
	return &BasketLineRepository{
		BaseRepository: NewBaseRepository[document.BasketLineDocument](f.db, "basket_lines"),
		collection:     f.db.Collection("basket_lines"),
		scope:          scope,
	}
}

func (r *BasketLineRepository) filter(productID domain.ID) (bson.M, error) {
	objectID, err := primitive.ObjectIDFromHex(string(productID))
	if err != nil {
		return nil, parseError(err)
	}
	return bson.M{"scope": string(r.scope), "product_id": objectID}, nil
}

func (r *BasketLineRepository) Set(ctx context.Context, line *domain.BasketLine) error {
	filter, err := r.filter(line.ProductID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"quantity":   line.Quantity,
		"updated_at": time.Now(),
	}}
	_, err = r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return parseError(err)
	}

	return nil
}

func (r *BasketLineRepository) Get(ctx context.Context, productID domain.ID) (*domain.BasketLine, error) {
	filter, err := r.filter(productID)
	if err != nil {
		return nil, err
	}

	var doc document.BasketLineDocument
	err = r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, parseError(err)
	}

	return doc.ToDomain(), nil
}

func (r *BasketLineRepository) Exists(ctx context.Context, productID domain.ID) (bool, error) {
	line, err := r.Get(ctx, productID)
	if err != nil {
		return false, err
	}
	return line != nil, nil
}

func (r *BasketLineRepository) Remove(ctx context.Context, productID domain.ID) error {
	filter, err := r.filter(productID)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return parseError(err)
	}

	return nil
}

func (r *BasketLineRepository) Clear(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"scope": string(r.scope)})
	if err != nil {
		return parseError(err)
	}

	return nil
}

func (r *BasketLineRepository) All(ctx context.Context) ([]*domain.BasketLine, error) {
	docs, err := r.Find(ctx, bson.M{"scope": string(r.scope)})
	if err != nil {
		return nil, err
	}

	lines := make([]*domain.BasketLine, 0, len(docs))
	for i := range docs {
		lines = append(lines, docs[i].ToDomain())
	}

	return lines, nil
}
