package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/storely/basket/internal/adapters/mongo/document"
	"github.com/storely/basket/internal/adapters/outbox"
	"github.com/storely/basket/internal/core/domain"
	"github.com/storely/basket/internal/core/port"
	"github.com/storely/basket/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	db         *mongo.Database
	collection *mongo.Collection
	outbox     outbox.Repository
}

func NewProductRepository(db *mongo.Database, outbox outbox.Repository) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		db:             db,
		collection:     db.Collection("products"),
		outbox:         outbox,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc := document.ToProductDocument(product)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	product.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

// GetByIDs resolves a batch of ids with a single $in query. Ids that do not
// resolve are dropped from the result; malformed ids are skipped the same
// way since they cannot match any document.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(string(id))
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}

	docs, err := r.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}

	return products, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	docs, err := r.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}

	return products, nil
}

func (r *ProductRepository) UpdateStockWithOutbox(ctx context.Context, id domain.ID, stock int, event domain.Event) error {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return parseError(err)
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		result, err := r.collection.UpdateOne(sessCtx, bson.M{"_id": objectID}, bson.M{
			"$set": bson.M{
				"stock":      stock,
				"updated_at": time.Now(),
			},
		})
		if err != nil {
			return nil, parseError(err)
		}
		if result.MatchedCount == 0 {
			return nil, serviceerrors.NewNotFoundError("entity not found")
		}

		entry := outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		}
		if err := r.outbox.Insert(sessCtx, entry); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}
