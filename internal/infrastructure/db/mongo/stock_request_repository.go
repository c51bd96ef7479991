package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// StockRequestRepository implements ports.StockRequestRepository using MongoDB.
type StockRequestRepository struct {
	col *mongo.Collection
}

// NewStockRequestRepository creates a new StockRequestRepository.
func NewStockRequestRepository(db *mongo.Database) ports.StockRequestRepository {
	return &StockRequestRepository{col: db.Collection(collectionStockRequests)}
}

type mongoStockRequest struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	Protocol   string              `bson:"protocolo"`
	User       *primitive.ObjectID `bson:"usuario,omitempty"`
	Medication *primitive.ObjectID `bson:"medicamento,omitempty"`
	Facility   *primitive.ObjectID `bson:"posto,omitempty"`
	CreatedAt  time.Time           `bson:"criadoEm"`
}

func (ms *mongoStockRequest) toDomain() *domain.StockRequest {
	return &domain.StockRequest{
		ID:           ms.ID.Hex(),
		Protocol:     ms.Protocol,
		UserID:       hexOf(ms.User),
		MedicationID: hexOf(ms.Medication),
		FacilityID:   hexOf(ms.Facility),
		CreatedAt:    ms.CreatedAt.UTC(),
	}
}

// Insert persists a stock request to the solicitacoes collection.
func (r *StockRequestRepository) Insert(ctx context.Context, req *domain.StockRequest) (*domain.StockRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoStockRequest{
		Protocol:   req.Protocol,
		User:       optionalID(req.UserID),
		Medication: optionalID(req.MedicationID),
		Facility:   optionalID(req.FacilityID),
		CreatedAt:  req.CreatedAt.UTC(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert stock request: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// List returns the requests matching filter, newest first.
func (r *StockRequestRepository) List(ctx context.Context, filter ports.StockRequestFilter) ([]*domain.StockRequest, error) {
	q := bson.M{}
	if filter.UserID != "" {
		oid, ok := objectID(filter.UserID)
		if !ok {
			return []*domain.StockRequest{}, nil
		}
		q["usuario"] = oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "criadoEm", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list stock requests: %w", err)
	}
	var docs []mongoStockRequest
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode stock requests: %w", err)
	}

	out := make([]*domain.StockRequest, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}
