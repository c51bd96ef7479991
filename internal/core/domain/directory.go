package domain

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Facility is a health post where medications are stocked.
type Facility struct {
	ID           string      `json:"_id"`
	Name         string      `json:"nome"`
	Address      string      `json:"endereco,omitempty"`
	Neighborhood string      `json:"bairro,omitempty"`
	Coordinates  Coordinates `json:"coordenadas"`
	Phone        string      `json:"telefone,omitempty"`
	OpeningHours string      `json:"horarioFuncionamento,omitempty"`
}

// Availability lists the time slots a doctor attends on a weekday
// (0 = Sunday).
type Availability struct {
	Weekday int      `json:"diaSemana" bson:"diaSemana"`
	Slots   []string `json:"horarios" bson:"horarios"`
}

// DoctorContact is the public subset of the identity behind a doctor profile.
type DoctorContact struct {
	ID    string `json:"_id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"telefone,omitempty"`
}

// Doctor is a practitioner profile linked to an identity with the doctor role.
type Doctor struct {
	ID           string         `json:"_id"`
	UserID       string         `json:"-"`
	User         *DoctorContact `json:"usuario,omitempty"`
	Specialty    string         `json:"especialidade"`
	License      string         `json:"crm"`
	Availability []Availability `json:"disponibilidade"`
}
