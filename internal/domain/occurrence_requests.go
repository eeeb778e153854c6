package domain

import "time"

// OccurrenceDraft is the raw intake payload as the form submits it: choice
// groups still as maps of booleans, date and time of receipt still separate,
// phone possibly masked. The intake validator turns it into an Occurrence.
type OccurrenceDraft struct {
	TicketNumber  string         `json:"numAviso"`
	Type          OccurrenceType `json:"tipoOcorrencia"`
	InitialNature string         `json:"naturezaInicial"`
	ReceiptDate   string         `json:"dataRecebimento"`
	ReceiptTime   string         `json:"horaRecebimento"`
	Activation    ChoiceGroup    `json:"formaAcionamento"`
	Situation     ChoiceGroup    `json:"situacaoOcorrencia"`

	RequesterName     string `json:"solNome"`
	RequesterPhone    string `json:"solFone"`
	RequesterRelation string `json:"solRelacao"`

	Street       string `json:"endRua"`
	Number       string `json:"endNumero"`
	District     string `json:"endBairro"`
	Municipality string `json:"endMunicipio"`
	Reference    string `json:"endReferencia"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Accuracy  float64  `json:"precisao,omitempty"`
}

// UpdateOccurrenceRequest is a partial payload: nil fields are untouched.
type UpdateOccurrenceRequest struct {
	TicketNumber  *string           `json:"numAviso,omitempty"`
	Type          *OccurrenceType   `json:"tipoOcorrencia,omitempty" validate:"omitempty,oneof=basic pre-hospital fire rescue hazmat"`
	InitialNature *string           `json:"naturezaInicial,omitempty"`
	ReceivedAt    *time.Time        `json:"timestampRecebimento,omitempty"`
	Activation    *ActivationMethod `json:"formaAcionamento,omitempty" validate:"omitempty,oneof=telephone radio in-person other"`
	Situation     *ChoiceGroup      `json:"situacaoOcorrencia,omitempty"`
	Address       *Address          `json:"endereco,omitempty"`
	Requester     *Requester        `json:"solicitante,omitempty"`
}

// UpdateLocationRequest is the coordinate-only patch used by GPS refinement.
type UpdateLocationRequest struct {
	Latitude  float64   `json:"latitude" validate:"lat"`
	Longitude float64   `json:"longitude" validate:"lng"`
	Accuracy  float64   `json:"precisao"`
	Timestamp time.Time `json:"timestamp"`
}
