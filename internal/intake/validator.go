// Package intake validates a raw occurrence draft against the required-field
// and cross-field rules and normalizes it into a persistable record. Errors
// are accumulated per field so the form can highlight everything at once.
package intake

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"ignis/internal/domain"
	"ignis/pkg/format"
	"ignis/pkg/validator"
)

// FieldErrors maps a draft field name to a human-readable message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

// Options tunes validation to the calling context.
type Options struct {
	// RequireCoordinates is set on new-occurrence intake, where a GPS fix
	// is mandatory. Missing members produce field-scoped errors.
	RequireCoordinates bool
}

type Validator struct {
	logger *slog.Logger
	now    func() time.Time
}

func New(logger *slog.Logger) *Validator {
	return &Validator{logger: logger, now: time.Now}
}

// NewWithClock pins the clock, for tests.
func NewWithClock(logger *slog.Logger, now func() time.Time) *Validator {
	return &Validator{logger: logger, now: now}
}

// Validate checks every rule and either returns the normalized occurrence or
// the full set of field errors. It never fails fast: a draft missing five
// fields yields five entries.
func (v *Validator) Validate(draft domain.OccurrenceDraft, opts Options) (*domain.Occurrence, FieldErrors) {
	errs := FieldErrors{}

	if strings.TrimSpace(draft.TicketNumber) == "" {
		errs["numAviso"] = "Número do aviso é obrigatório."
	}
	if draft.Type == "" {
		errs["tipoOcorrencia"] = "Tipo de ocorrência é obrigatório."
	} else if !draft.Type.Valid() {
		errs["tipoOcorrencia"] = "Tipo de ocorrência inválido."
	}
	if strings.TrimSpace(draft.InitialNature) == "" {
		errs["naturezaInicial"] = "Natureza inicial é obrigatória."
	}

	var activation domain.ActivationMethod
	if key, ok := draft.Activation.Selected(); !ok {
		errs["formaAcionamento"] = "Selecione uma forma de acionamento."
	} else if activation, ok = domain.ParseActivation(key); !ok {
		errs["formaAcionamento"] = "Forma de acionamento inválida."
	}

	var status domain.Status
	if key, ok := draft.Situation.Selected(); !ok {
		errs["situacaoOcorrencia"] = "Selecione uma situação."
	} else if status, ok = domain.NormalizeStatus(key, ""); !ok {
		errs["situacaoOcorrencia"] = "Situação inválida."
	}

	if strings.TrimSpace(draft.RequesterName) == "" {
		errs["solNome"] = "Nome do solicitante é obrigatório."
	}
	phoneDigits := format.DigitsOnly(draft.RequesterPhone)
	if len(phoneDigits) < 10 {
		errs["solFone"] = "Telefone inválido ou incompleto."
	}

	if strings.TrimSpace(draft.Street) == "" {
		errs["endRua"] = "Rua é obrigatória."
	}
	if strings.TrimSpace(draft.Number) == "" {
		errs["endNumero"] = "Número é obrigatório (use S/N quando não houver)."
	}
	if strings.TrimSpace(draft.Municipality) == "" {
		errs["endMunicipio"] = "Município é obrigatório."
	}

	coords := v.validateCoordinates(draft, opts, errs)

	if len(errs) > 0 {
		return nil, errs
	}

	receivedAt, ok := format.ComposeTimestamp(draft.ReceiptDate, draft.ReceiptTime, v.now())
	if !ok {
		// data-quality event, not a validation failure
		v.logger.Warn("receipt timestamp unparsable, falling back to now",
			slog.String("data", draft.ReceiptDate),
			slog.String("hora", draft.ReceiptTime),
		)
	}

	occ := &domain.Occurrence{
		TicketNumber:  strings.TrimSpace(draft.TicketNumber),
		Type:          draft.Type,
		InitialNature: strings.TrimSpace(draft.InitialNature),
		ReceivedAt:    receivedAt,
		Activation:    activation,
		Address: domain.Address{
			Street:       strings.TrimSpace(draft.Street),
			Number:       strings.TrimSpace(draft.Number),
			District:     strings.TrimSpace(draft.District),
			Municipality: strings.TrimSpace(draft.Municipality),
			Reference:    strings.TrimSpace(draft.Reference),
		},
		Requester: domain.Requester{
			Name:     strings.TrimSpace(draft.RequesterName),
			Phone:    phoneDigits,
			Relation: strings.TrimSpace(draft.RequesterRelation),
		},
		Coordinates: coords,
	}
	occ.SetStatus(status)
	return occ, nil
}

// validateCoordinates enforces the all-or-nothing pair rule and the range
// checks, honoring the RequireCoordinates context.
func (v *Validator) validateCoordinates(draft domain.OccurrenceDraft, opts Options, errs FieldErrors) *domain.Coordinates {
	lat, lng := draft.Latitude, draft.Longitude

	if lat == nil && lng == nil {
		if opts.RequireCoordinates {
			errs["latitude"] = "Latitude é obrigatória."
			errs["longitude"] = "Longitude é obrigatória."
		}
		return nil
	}
	if lat == nil {
		errs["latitude"] = "Latitude é obrigatória."
		return nil
	}
	if lng == nil {
		errs["longitude"] = "Longitude é obrigatória."
		return nil
	}

	coords := &domain.Coordinates{
		Latitude:  *lat,
		Longitude: *lng,
		Accuracy:  draft.Accuracy,
		Timestamp: v.now().UTC(),
	}
	if err := validator.ValidateStruct(coords); err != nil {
		if ve, ok := validator.Errors(err); ok {
			for _, fe := range ve {
				switch fe.Field() {
				case "Latitude":
					errs["latitude"] = "Latitude inválida."
				case "Longitude":
					errs["longitude"] = "Longitude inválida."
				}
			}
		} else {
			errs["latitude"] = "Coordenadas inválidas."
		}
		return nil
	}
	return coords
}
