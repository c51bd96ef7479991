package domain

import "time"

const (
	AppointmentPending   = "pendente"
	AppointmentCompleted = "realizada"
)

// Appointment is a scheduled visit between a patient and a doctor.
// PatientID is fixed at creation and never rewritten.
type Appointment struct {
	ID        string    `json:"_id"`
	PatientID string    `json:"paciente"`
	DoctorID  string    `json:"-"`
	Doctor    *Doctor   `json:"medico,omitempty"`
	Date      time.Time `json:"data"`
	TimeSlot  string    `json:"horario"`
	Type      string    `json:"tipo"`
	Specialty string    `json:"especialidade,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"observacoes,omitempty"`
	CreatedAt time.Time `json:"criadoEm"`
}

// AppointmentChanges carries the mutable fields of an appointment. Nil
// fields are left untouched.
type AppointmentChanges struct {
	DoctorID  *string
	Date      *time.Time
	TimeSlot  *string
	Type      *string
	Specialty *string
	Status    *string
	Notes     *string
}

// Empty reports whether no field is set.
func (c AppointmentChanges) Empty() bool {
	return c.DoctorID == nil && c.Date == nil && c.TimeSlot == nil && c.Type == nil &&
		c.Specialty == nil && c.Status == nil && c.Notes == nil
}
