package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type OccurrenceType string

const (
	TypeBasic       OccurrenceType = "basic"
	TypePreHospital OccurrenceType = "pre-hospital"
	TypeFire        OccurrenceType = "fire"
	TypeRescue      OccurrenceType = "rescue"
	TypeHazmat      OccurrenceType = "hazmat"
)

type ActivationMethod string

const (
	ActivationTelephone ActivationMethod = "telephone"
	ActivationRadio     ActivationMethod = "radio"
	ActivationInPerson  ActivationMethod = "in-person"
	ActivationOther     ActivationMethod = "other"
)

// activationSynonyms accepts both the canonical vocabulary and the legacy
// Portuguese form keys still present in stored data.
var activationSynonyms = map[string]ActivationMethod{
	"telephone":   ActivationTelephone,
	"telefone":    ActivationTelephone,
	"radio":       ActivationRadio,
	"radioamador": ActivationRadio,
	"in-person":   ActivationInPerson,
	"pessoalmente": ActivationInPerson,
	"other":       ActivationOther,
	"outros":      ActivationOther,
}

func ParseActivation(raw string) (ActivationMethod, bool) {
	m, ok := activationSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return m, ok
}

func (t OccurrenceType) Valid() bool {
	switch t {
	case TypeBasic, TypePreHospital, TypeFire, TypeRescue, TypeHazmat:
		return true
	}
	return false
}

// NoAddressNumber is the literal marker for an address without a number.
const NoAddressNumber = "S/N"

type Address struct {
	Street       string `json:"rua"`
	Number       string `json:"numero"` // non-empty string or NoAddressNumber
	District     string `json:"bairro"`
	Municipality string `json:"municipio"`
	Reference    string `json:"referencia,omitempty"`
}

type Requester struct {
	Name     string `json:"nome"`
	Phone    string `json:"telefone"`
	Relation string `json:"relacao"`
}

// Coordinates is always a complete pair plus an accuracy radius in meters.
type Coordinates struct {
	Latitude  float64   `json:"latitude" validate:"lat"`
	Longitude float64   `json:"longitude" validate:"lng"`
	Accuracy  float64   `json:"precisao"`
	Timestamp time.Time `json:"timestamp"`
}

// Occurrence is the persisted record of a single tracked incident.
//
// Two historical field names exist for the overall status: statusGeral and
// the older status. Both are kept as stored; every consumer goes through
// CurrentStatus / NormalizeStatus instead of branching on the raw fields.
type Occurrence struct {
	ID            uuid.UUID        `json:"id"`
	TicketNumber  string           `json:"numAviso"`
	Type          OccurrenceType   `json:"tipoOcorrencia"`
	InitialNature string           `json:"naturezaInicial"`
	ReceivedAt    time.Time        `json:"timestampRecebimento"` // zero when the stored value was unparsable
	Activation    ActivationMethod `json:"formaAcionamento"`
	StatusGeral   string           `json:"statusGeral,omitempty"`
	LegacyStatus  string           `json:"status,omitempty"`
	Address       Address          `json:"endereco"`
	Requester     Requester        `json:"solicitante"`
	Coordinates   *Coordinates     `json:"coordenadas,omitempty"`
	CreatedBy     string           `json:"criadoPor"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// CurrentStatus resolves the stored status pair into the canonical status.
// ok is false when the stored value is free text the vocabulary does not know.
func (o *Occurrence) CurrentStatus() (Status, bool) {
	return NormalizeStatus(o.StatusGeral, o.LegacyStatus)
}

// SetStatus writes the canonical status into both historical fields so that
// readers of either name observe the same value.
func (o *Occurrence) SetStatus(s Status) {
	o.StatusGeral = string(s)
	o.LegacyStatus = string(s)
}
