package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/postosaude/clinic-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Doctors
// ---------------------------------------------------------------------------

type DoctorRepository struct {
	col *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *DoctorRepository {
	return &DoctorRepository{col: db.Collection(collectionDoctors)}
}

type mongoContact struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"nome"`
	Email string             `bson:"email"`
	Phone string             `bson:"telefone,omitempty"`
}

type mongoDoctor struct {
	ID           primitive.ObjectID    `bson:"_id,omitempty"`
	User         *primitive.ObjectID   `bson:"usuario,omitempty"`
	Specialty    string                `bson:"especialidade"`
	License      string                `bson:"crm"`
	Availability []domain.Availability `bson:"disponibilidade"`
	Contact      *mongoContact         `bson:"usuarioDoc,omitempty"`
}

func (md *mongoDoctor) toDomain() *domain.Doctor {
	d := &domain.Doctor{
		ID:           md.ID.Hex(),
		UserID:       hexOf(md.User),
		Specialty:    md.Specialty,
		License:      md.License,
		Availability: md.Availability,
	}
	if d.Availability == nil {
		d.Availability = []domain.Availability{}
	}
	if md.Contact != nil {
		d.User = &domain.DoctorContact{
			ID:    md.Contact.ID.Hex(),
			Name:  md.Contact.Name,
			Email: md.Contact.Email,
			Phone: md.Contact.Phone,
		}
	}
	return d
}

// doctorPipeline joins each profile with the public fields of its identity.
func doctorPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionUsers,
			"localField":   "usuario",
			"foreignField": "_id",
			"as":           "usuarioDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$usuarioDoc", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{"usuarioDoc.senha": 0, "usuarioDoc.tipo": 0, "usuarioDoc.criadoEm": 0}}},
	}
}

func (r *DoctorRepository) List(ctx context.Context, specialty string) ([]*domain.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{}
	if specialty != "" {
		match["especialidade"] = specialty
	}
	return r.aggregate(ctx, doctorPipeline(match))
}

func (r *DoctorRepository) FindByID(ctx context.Context, id string) (*domain.Doctor, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doctors, err := r.aggregate(ctx, doctorPipeline(bson.M{"_id": oid}))
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, domain.ErrDoctorNotFound
	}
	return doctors[0], nil
}

func (r *DoctorRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *DoctorRepository) Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoDoctor{
		User:         optionalID(d.UserID),
		Specialty:    d.Specialty,
		License:      d.License,
		Availability: d.Availability,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *DoctorRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Doctor, error) {
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate doctors: %w", err)
	}
	var docs []mongoDoctor
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}

	out := make([]*domain.Doctor, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Facilities
// ---------------------------------------------------------------------------

type FacilityRepository struct {
	col *mongo.Collection
}

func NewFacilityRepository(db *mongo.Database) *FacilityRepository {
	return &FacilityRepository{col: db.Collection(collectionFacilities)}
}

type mongoFacility struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"nome"`
	Address      string             `bson:"endereco,omitempty"`
	Neighborhood string             `bson:"bairro,omitempty"`
	Coordinates  domain.Coordinates `bson:"coordenadas"`
	Phone        string             `bson:"telefone,omitempty"`
	OpeningHours string             `bson:"horarioFuncionamento,omitempty"`
}

func (mf *mongoFacility) toDomain() *domain.Facility {
	return &domain.Facility{
		ID:           mf.ID.Hex(),
		Name:         mf.Name,
		Address:      mf.Address,
		Neighborhood: mf.Neighborhood,
		Coordinates:  mf.Coordinates,
		Phone:        mf.Phone,
		OpeningHours: mf.OpeningHours,
	}
}

func (r *FacilityRepository) List(ctx context.Context, neighborhood string) ([]*domain.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if neighborhood != "" {
		filter["bairro"] = neighborhood
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "nome", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	var docs []mongoFacility
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode facilities: %w", err)
	}

	out := make([]*domain.Facility, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (r *FacilityRepository) FindByID(ctx context.Context, id string) (*domain.Facility, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrFacilityNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mf mongoFacility
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mf); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFacilityNotFound
		}
		return nil, fmt.Errorf("find facility: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FacilityRepository) Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoFacility{
		Name:         f.Name,
		Address:      f.Address,
		Neighborhood: f.Neighborhood,
		Coordinates:  f.Coordinates,
		Phone:        f.Phone,
		OpeningHours: f.OpeningHours,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert facility: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}
