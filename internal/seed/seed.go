// Package seed loads the demo data set: patients, doctors, an administrator,
// five health posts and the same medication catalogue stocked in each post.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// DefaultPassword is the password of every seeded identity.
const DefaultPassword = "senha123"

// Repositories are the stores the seed writes through.
type Repositories struct {
	Users       ports.UserRepository
	Doctors     ports.DoctorRepository
	Facilities  ports.FacilityRepository
	Medications ports.MedicationRepository
}

type Options struct {
	Password   string
	BcryptCost int
	Now        func() time.Time
}

// Summary counts what was created.
type Summary struct {
	Users       int
	Doctors     int
	Facilities  int
	Medications int
}

type doctorSeed struct {
	userIndex    int
	specialty    string
	license      string
	availability []domain.Availability
}

type medicationSeed struct {
	name     string
	kind     string
	quantity int
}

var slots = []string{"08:00", "09:00", "10:00", "14:00", "15:00"}

var users = []domain.User{
	{Name: "Maria Silva", Email: "maria@email.com", Phone: "(11) 98765-4321", Role: domain.RolePatient},
	{Name: "João Santos", Email: "joao@email.com", Phone: "(11) 98765-1234", Role: domain.RolePatient},
	{Name: "Dr. Carlos Silva", Email: "carlos@email.com", Phone: "(11) 91234-5678", Role: domain.RoleDoctor},
	{Name: "Dra. Ana Costa", Email: "ana@email.com", Phone: "(11) 91234-8765", Role: domain.RoleDoctor},
	{Name: "Administrador", Email: "admin@email.com", Phone: "(11) 99999-9999", Role: domain.RoleAdmin},
}

var doctors = []doctorSeed{
	{
		userIndex: 2,
		specialty: "Cardiologia",
		license:   "CRM-SP 123456",
		availability: []domain.Availability{
			{Weekday: 1, Slots: slots},
			{Weekday: 3, Slots: slots},
			{Weekday: 5, Slots: slots},
		},
	},
	{
		userIndex: 3,
		specialty: "Dermatologia",
		license:   "CRM-SP 654321",
		availability: []domain.Availability{
			{Weekday: 2, Slots: slots},
			{Weekday: 4, Slots: slots},
		},
	},
}

const openingHours = "Segunda a Sexta: 8h às 17h"

var facilities = []domain.Facility{
	{Name: "Posto de Saúde Central", Address: "Rua das Flores, 123", Neighborhood: "Centro", Coordinates: domain.Coordinates{Lat: -23.5505, Lng: -46.6333}, Phone: "(11) 3000-0001", OpeningHours: openingHours},
	{Name: "Posto de Saúde Norte", Address: "Av. Principal, 456", Neighborhood: "Zona Norte", Coordinates: domain.Coordinates{Lat: -23.5205, Lng: -46.6133}, Phone: "(11) 3000-0002", OpeningHours: openingHours},
	{Name: "Posto de Saúde Sul", Address: "Rua das Palmeiras, 789", Neighborhood: "Zona Sul", Coordinates: domain.Coordinates{Lat: -23.5805, Lng: -46.6533}, Phone: "(11) 3000-0003", OpeningHours: openingHours},
	{Name: "Posto de Saúde Leste", Address: "Av. das Árvores, 321", Neighborhood: "Zona Leste", Coordinates: domain.Coordinates{Lat: -23.5405, Lng: -46.6033}, Phone: "(11) 3000-0004", OpeningHours: openingHours},
	{Name: "Posto de Saúde Oeste", Address: "Rua dos Pinheiros, 654", Neighborhood: "Zona Oeste", Coordinates: domain.Coordinates{Lat: -23.5605, Lng: -46.6633}, Phone: "(11) 3000-0005", OpeningHours: openingHours},
}

var catalogue = []medicationSeed{
	{"Paracetamol 500mg", "Analgésico", 45},
	{"Paracetamol 750mg", "Analgésico", 30},
	{"Amoxicilina 250mg", "Antibiótico", 12},
	{"Amoxicilina 500mg", "Antibiótico", 25},
	{"Losartana 50mg", "Anti-hipertensivo", 0},
	{"Losartana 100mg", "Anti-hipertensivo", 18},
	{"Metformina 850mg", "Antidiabético", 28},
	{"Metformina 500mg", "Antidiabético", 35},
	{"Omeprazol 20mg", "Gastroprotetor", 35},
	{"Omeprazol 40mg", "Gastroprotetor", 22},
	{"Sinvastatina 20mg", "Hipolipemiante", 5},
	{"Sinvastatina 40mg", "Hipolipemiante", 15},
	{"AAS 100mg", "Antiagregante Plaquetário", 60},
	{"Insulina NPH", "Antidiabético", 0},
	{"Captopril 25mg", "Anti-hipertensivo", 42},
	{"Dipirona 500mg", "Analgésico", 50},
	{"Ibuprofeno 600mg", "Anti-inflamatório", 38},
	{"Atenolol 25mg", "Anti-hipertensivo", 27},
	{"Enalapril 10mg", "Anti-hipertensivo", 33},
}

// Run writes the demo data set through repos. It does not clear existing
// data; callers reset the store first.
func Run(ctx context.Context, repos Repositories, opts Options, log zerolog.Logger) (*Summary, error) {
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	summary := &Summary{}
	now := opts.Now().UTC()

	created := make([]*domain.User, 0, len(users))
	for _, u := range users {
		u.PasswordHash = string(hash)
		u.CreatedAt = now
		saved, err := repos.Users.Create(ctx, &u)
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		created = append(created, saved)
	}
	summary.Users = len(created)
	log.Info().Int("count", summary.Users).Msg("users created")

	for _, d := range doctors {
		doctor := &domain.Doctor{
			UserID:       created[d.userIndex].ID,
			Specialty:    d.specialty,
			License:      d.license,
			Availability: d.availability,
		}
		if _, err := repos.Doctors.Create(ctx, doctor); err != nil {
			return nil, fmt.Errorf("seed doctor %s: %w", d.license, err)
		}
		summary.Doctors++
	}
	log.Info().Int("count", summary.Doctors).Msg("doctors created")

	for _, f := range facilities {
		posto, err := repos.Facilities.Create(ctx, &f)
		if err != nil {
			return nil, fmt.Errorf("seed facility %s: %w", f.Name, err)
		}
		summary.Facilities++

		for _, m := range catalogue {
			med := &domain.Medication{
				Name:        m.name,
				Type:        m.kind,
				Description: m.kind + " - " + m.name,
				FacilityID:  posto.ID,
			}
			med.SetQuantity(m.quantity, now)
			if _, err := repos.Medications.Create(ctx, med); err != nil {
				return nil, fmt.Errorf("seed medication %s: %w", m.name, err)
			}
			summary.Medications++
		}
	}
	log.Info().
		Int("facilities", summary.Facilities).
		Int("medications", summary.Medications).
		Msg("facilities stocked")

	return summary, nil
}
