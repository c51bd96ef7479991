package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

type MedicationRepository struct {
	col *mongo.Collection
}

func NewMedicationRepository(db *mongo.Database) *MedicationRepository {
	return &MedicationRepository{col: db.Collection(collectionMedications)}
}

type mongoMedication struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Name        string              `bson:"nome"`
	Type        string              `bson:"tipo,omitempty"`
	Description string              `bson:"descricao,omitempty"`
	Facility    *primitive.ObjectID `bson:"postoSaude,omitempty"`
	Quantity    int                 `bson:"quantidade"`
	Status      string              `bson:"status"`
	UpdatedAt   time.Time           `bson:"ultimaAtualizacao"`
	FacilityDoc *mongoFacility      `bson:"postoDoc,omitempty"`
}

func (mm *mongoMedication) toDomain() *domain.Medication {
	m := &domain.Medication{
		ID:          mm.ID.Hex(),
		Name:        mm.Name,
		Type:        mm.Type,
		Description: mm.Description,
		FacilityID:  hexOf(mm.Facility),
		Quantity:    mm.Quantity,
		Status:      domain.StockStatus(mm.Status),
		UpdatedAt:   mm.UpdatedAt.UTC(),
	}
	if mm.FacilityDoc != nil {
		m.Facility = mm.FacilityDoc.toDomain()
	}
	return m
}

// medicationQuery translates filter into a Mongo query. Name matches as a
// case-insensitive literal substring. ok is false when filter can match
// nothing.
func medicationQuery(filter ports.MedicationFilter) (q bson.M, ok bool) {
	q = bson.M{}
	if filter.Name != "" {
		q["nome"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}
	if filter.Type != "" {
		q["tipo"] = filter.Type
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	if filter.FacilityID != "" {
		oid, valid := objectID(filter.FacilityID)
		if !valid {
			return nil, false
		}
		q["postoSaude"] = oid
	}
	return q, true
}

func medicationPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionFacilities,
			"localField":   "postoSaude",
			"foreignField": "_id",
			"as":           "postoDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$postoDoc", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$sort", Value: bson.D{{Key: "nome", Value: 1}}}},
	}
}

// List returns the medications matching filter, sorted by name, each with
// its facility joined in.
func (r *MedicationRepository) List(ctx context.Context, filter ports.MedicationFilter) ([]*domain.Medication, error) {
	q, ok := medicationQuery(filter)
	if !ok {
		return []*domain.Medication{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.aggregate(ctx, medicationPipeline(q))
}

func (r *MedicationRepository) FindByID(ctx context.Context, id string) (*domain.Medication, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrMedicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	meds, err := r.aggregate(ctx, medicationPipeline(bson.M{"_id": oid}))
	if err != nil {
		return nil, err
	}
	if len(meds) == 0 {
		return nil, domain.ErrMedicationNotFound
	}
	return meds[0], nil
}

func (r *MedicationRepository) Create(ctx context.Context, m *domain.Medication) (*domain.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMedication{
		Name:        m.Name,
		Type:        m.Type,
		Description: m.Description,
		Facility:    optionalID(m.FacilityID),
		Quantity:    m.Quantity,
		Status:      string(m.Status),
		UpdatedAt:   m.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert medication: %w", err)
	}
	return r.FindByID(ctx, res.InsertedID.(primitive.ObjectID).Hex())
}

// UpdateStock writes quantity, status and timestamp together so the stored
// status always matches the stored quantity.
func (r *MedicationRepository) UpdateStock(ctx context.Context, id string, quantity int, status domain.StockStatus, updatedAt time.Time) (*domain.Medication, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrMedicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"quantidade":        quantity,
		"status":            string(status),
		"ultimaAtualizacao": updatedAt,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMedicationNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MedicationRepository) CountByStatus(ctx context.Context, status domain.StockStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"status": string(status)})
}

func (r *MedicationRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Medication, error) {
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate medications: %w", err)
	}
	var docs []mongoMedication
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode medications: %w", err)
	}

	out := make([]*domain.Medication, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}
