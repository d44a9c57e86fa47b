// Package participants implements the participant record pipeline: parsing
// heterogeneous JSON/CSV sources into typed variants, anonymizing
// identifying fields, and persisting tagged records.
package participants

// Participant type discriminators used in serialized records.
const (
	TypeStudent = "student"
	TypeAdult   = "adult"
	TypeSenior  = "senior"
)

// Participant is the capability shared by all record variants. Participants
// are constructed by the pipeline and never mutated afterwards.
type Participant interface {
	Name() string
	Age() int
	Email() string
	Type() string
	// Record serializes the participant back to a tagged map, including the
	// "type" discriminator and the variant-specific field.
	Record() map[string]any
}

type participantBase struct {
	name  string
	age   int
	email string
}

func (p participantBase) Name() string  { return p.name }
func (p participantBase) Age() int      { return p.age }
func (p participantBase) Email() string { return p.email }

func (p participantBase) record(participantType string) map[string]any {
	return map[string]any{
		"type":  participantType,
		"name":  p.name,
		"age":   p.age,
		"email": p.email,
	}
}

// Student is a participant enrolled at a school.
type Student struct {
	participantBase
	school string
}

// NewStudent creates a student participant.
func NewStudent(name string, age int, email, school string) *Student {
	return &Student{participantBase{name, age, email}, school}
}

func (s *Student) Type() string   { return TypeStudent }
func (s *Student) School() string { return s.school }

func (s *Student) Record() map[string]any {
	r := s.record(TypeStudent)
	r["school"] = s.school
	return r
}

// Adult is a working-age participant.
type Adult struct {
	participantBase
	occupation string
}

// NewAdult creates an adult participant.
func NewAdult(name string, age int, email, occupation string) *Adult {
	return &Adult{participantBase{name, age, email}, occupation}
}

func (a *Adult) Type() string       { return TypeAdult }
func (a *Adult) Occupation() string { return a.occupation }

func (a *Adult) Record() map[string]any {
	r := a.record(TypeAdult)
	r["occupation"] = a.occupation
	return r
}

// Senior is a participant of retirement age.
type Senior struct {
	participantBase
	retired bool
}

// NewSenior creates a senior participant.
func NewSenior(name string, age int, email string, retired bool) *Senior {
	return &Senior{participantBase{name, age, email}, retired}
}

func (s *Senior) Type() string  { return TypeSenior }
func (s *Senior) Retired() bool { return s.retired }

func (s *Senior) Record() map[string]any {
	r := s.record(TypeSenior)
	r["retirement_status"] = s.retired
	return r
}
