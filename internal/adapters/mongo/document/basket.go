package document

import (
	"time"

	"github.com/storely/basket/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BasketDocument registers a basket scope; lines live separately.
type BasketDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (doc BasketDocument) GetID() primitive.ObjectID {
	return doc.ID
}

// BasketLineDocument is one stored line, keyed by (scope, product_id).
type BasketLineDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Scope     string             `bson:"scope"`
	ProductID primitive.ObjectID `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (doc BasketLineDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *BasketLineDocument) ToDomain() *domain.BasketLine {
	return &domain.BasketLine{
		ProductID: domain.ID(doc.ProductID.Hex()),
		Quantity:  doc.Quantity,
	}
}
