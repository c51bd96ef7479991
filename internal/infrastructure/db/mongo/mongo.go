package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 10 * time.Second
	appName        = "clinic-api"
)

const (
	collectionUsers         = "usuarios"
	collectionDoctors       = "medicos"
	collectionFacilities    = "postos"
	collectionMedications   = "medicamentos"
	collectionAppointments  = "consultas"
	collectionStockRequests = "solicitacoes"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect opens a client, pings the primary and returns the client with the
// clinic database. Timeout bounds both server selection and the ping.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes every collection relies on. It is safe
// to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionDoctors: {
			{Keys: bson.D{{Key: "especialidade", Value: 1}}},
		},
		collectionFacilities: {
			{Keys: bson.D{{Key: "bairro", Value: 1}}},
		},
		collectionMedications: {
			{Keys: bson.D{{Key: "nome", Value: 1}}},
			{Keys: bson.D{{Key: "postoSaude", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		collectionAppointments: {
			{Keys: bson.D{{Key: "paciente", Value: 1}, {Key: "criadoEm", Value: -1}}},
			{Keys: bson.D{{Key: "medico", Value: 1}}},
		},
		collectionStockRequests: {
			{Keys: bson.D{{Key: "usuario", Value: 1}, {Key: "criadoEm", Value: -1}}},
			{Keys: bson.D{{Key: "protocolo", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// Reset removes every document from the clinic collections. Indexes are
// kept. Only the seed command calls it.
func Reset(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, name := range []string{
		collectionUsers, collectionDoctors, collectionFacilities,
		collectionMedications, collectionAppointments, collectionStockRequests,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

// objectID parses a hex id. Malformed ids report false so callers can treat
// them as a lookup that matches nothing.
func objectID(hex string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// optionalID parses a reference that may be empty.
func optionalID(hex string) *primitive.ObjectID {
	if hex == "" {
		return nil
	}
	oid, ok := objectID(hex)
	if !ok {
		return nil
	}
	return &oid
}

func hexOf(oid *primitive.ObjectID) string {
	if oid == nil || oid.IsZero() {
		return ""
	}
	return oid.Hex()
}
