package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

type mongoAppointment struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Patient   primitive.ObjectID  `bson:"paciente"`
	Doctor    *primitive.ObjectID `bson:"medico,omitempty"`
	Date      time.Time           `bson:"data"`
	TimeSlot  string              `bson:"horario"`
	Type      string              `bson:"tipo"`
	Specialty string              `bson:"especialidade,omitempty"`
	Status    string              `bson:"status"`
	Notes     string              `bson:"observacoes,omitempty"`
	CreatedAt time.Time           `bson:"criadoEm"`
	DoctorDoc *mongoDoctor        `bson:"medicoDoc,omitempty"`
}

func (ma *mongoAppointment) toDomain() *domain.Appointment {
	a := &domain.Appointment{
		ID:        ma.ID.Hex(),
		PatientID: ma.Patient.Hex(),
		DoctorID:  hexOf(ma.Doctor),
		Date:      ma.Date.UTC(),
		TimeSlot:  ma.TimeSlot,
		Type:      ma.Type,
		Specialty: ma.Specialty,
		Status:    ma.Status,
		Notes:     ma.Notes,
		CreatedAt: ma.CreatedAt.UTC(),
	}
	if ma.DoctorDoc != nil {
		a.Doctor = ma.DoctorDoc.toDomain()
	}
	return a
}

// appointmentQuery translates filter into a Mongo query. A malformed id in
// any field can match no stored document, so ok is false.
func appointmentQuery(filter ports.AppointmentFilter) (q bson.M, ok bool) {
	q = bson.M{}
	for field, hex := range map[string]string{
		"_id":      filter.ID,
		"paciente": filter.PatientID,
		"medico":   filter.DoctorID,
	} {
		if hex == "" {
			continue
		}
		oid, valid := objectID(hex)
		if !valid {
			return nil, false
		}
		q[field] = oid
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	return q, true
}

func appointmentPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "criadoEm", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionDoctors,
			"localField":   "medico",
			"foreignField": "_id",
			"as":           "medicoDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$medicoDoc", "preserveNullAndEmptyArrays": true}}},
	}
}

// List returns the appointments matching filter, newest first, each with
// its doctor profile joined in.
func (r *AppointmentRepository) List(ctx context.Context, filter ports.AppointmentFilter) ([]*domain.Appointment, error) {
	q, ok := appointmentQuery(filter)
	if !ok {
		return []*domain.Appointment{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.aggregate(ctx, appointmentPipeline(q))
}

// FindOne retrieves the first appointment matching filter.
func (r *AppointmentRepository) FindOne(ctx context.Context, filter ports.AppointmentFilter) (*domain.Appointment, error) {
	q, ok := appointmentQuery(filter)
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(appointmentPipeline(q), bson.D{{Key: "$limit", Value: 1}})
	appts, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(appts) == 0 {
		return nil, domain.ErrAppointmentNotFound
	}
	return appts[0], nil
}

// Create inserts a new appointment document.
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	patient, ok := objectID(a.PatientID)
	if !ok {
		return nil, fmt.Errorf("insert appointment: invalid patient id %q", a.PatientID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAppointment{
		Patient:   patient,
		Doctor:    optionalID(a.DoctorID),
		Date:      a.Date,
		TimeSlot:  a.TimeSlot,
		Type:      a.Type,
		Specialty: a.Specialty,
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// UpdateOne applies changes to the appointment matching filter and returns
// it re-read with its doctor joined in.
func (r *AppointmentRepository) UpdateOne(ctx context.Context, filter ports.AppointmentFilter, changes domain.AppointmentChanges) (*domain.Appointment, error) {
	q, ok := appointmentQuery(filter)
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}

	set, unset := bson.M{}, bson.M{}
	if changes.DoctorID != nil {
		if oid := optionalID(*changes.DoctorID); oid != nil {
			set["medico"] = *oid
		} else {
			unset["medico"] = ""
		}
	}
	if changes.Date != nil {
		set["data"] = *changes.Date
	}
	if changes.TimeSlot != nil {
		set["horario"] = *changes.TimeSlot
	}
	if changes.Type != nil {
		set["tipo"] = *changes.Type
	}
	if changes.Specialty != nil {
		set["especialidade"] = *changes.Specialty
	}
	if changes.Status != nil {
		set["status"] = *changes.Status
	}
	if changes.Notes != nil {
		set["observacoes"] = *changes.Notes
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var updated mongoAppointment
	err := r.col.FindOneAndUpdate(ctx, q, update).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return r.FindOne(ctx, ports.AppointmentFilter{ID: updated.ID.Hex()})
}

// DeleteOne removes the appointment matching filter.
func (r *AppointmentRepository) DeleteOne(ctx context.Context, filter ports.AppointmentFilter) error {
	q, ok := appointmentQuery(filter)
	if !ok {
		return domain.ErrAppointmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, q)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) Count(ctx context.Context, filter ports.AppointmentFilter) (int64, error) {
	q, ok := appointmentQuery(filter)
	if !ok {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, q)
}

func (r *AppointmentRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Appointment, error) {
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate appointments: %w", err)
	}
	var docs []mongoAppointment
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}

	out := make([]*domain.Appointment, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}
