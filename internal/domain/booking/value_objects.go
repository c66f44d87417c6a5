package booking

import (
	"crypto/rand"
	"errors"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrInvalidEmail    = errors.New("invalid guest email")
	ErrEmptyGuestName  = errors.New("guest name cannot be empty")
	ErrInvalidTimezone = errors.New("invalid guest timezone")
)

// Guest identifies the person holding the booking. The email is normalized to
// lower case; requester-identity checks compare against it case-insensitively.
type Guest struct {
	name     string
	email    string
	timezone string
}

func NewGuest(name, email, timezone string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrEmptyGuestName
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return Guest{}, ErrInvalidEmail
	}

	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			return Guest{}, ErrInvalidTimezone
		}
	}

	return Guest{name: name, email: email, timezone: timezone}, nil
}

// ReconstructGuest restores a guest from storage without re-validating;
// values were validated on the way in.
func ReconstructGuest(name, email, timezone string) Guest {
	return Guest{name: name, email: email, timezone: timezone}
}

func (g Guest) Name() string     { return g.name }
func (g Guest) Email() string    { return g.email }
func (g Guest) Timezone() string { return g.timezone }

// Matches compares a requester email against the guest's, case-insensitively.
func (g Guest) Matches(email string) bool {
	return g.email == strings.ToLower(strings.TrimSpace(email))
}

// referenceAlphabet is Crockford base32: no I, L, O, U, so codes survive being
// read aloud or retyped.
const referenceAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const referenceLength = 10

// NewReference generates the external-facing booking code. Distinct from the
// internal id: it is what guests see in links and emails.
func NewReference() string {
	buf := make([]byte, referenceLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in much deeper trouble
		panic(err)
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return string(buf)
}

// Answers is the versioned, schema-validated replacement for the loosely
// typed metadata payloads: additional guests and custom question responses
// round-trip as an explicit structure.
type Answers struct {
	SchemaVersion    int              `json:"schema_version"`
	AdditionalGuests []string         `json:"additional_guests,omitempty"`
	Questions        []QuestionAnswer `json:"questions,omitempty"`
}

type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

const answersSchemaVersion = 1

func NewAnswers(additionalGuests []string, questions []QuestionAnswer) Answers {
	return Answers{
		SchemaVersion:    answersSchemaVersion,
		AdditionalGuests: additionalGuests,
		Questions:        questions,
	}
}
