package intake

import (
	"strings"

	"ignis/internal/domain"
	"ignis/pkg/format"
)

// ValidatePatch re-validates only the fields the partial payload carries,
// using the same field-level rules as Validate, and merges them into a copy
// of the existing record. The status choice group, when supplied, must both
// resolve to a known status and be a legal transition from the current one.
func (v *Validator) ValidatePatch(existing *domain.Occurrence, req domain.UpdateOccurrenceRequest) (*domain.Occurrence, FieldErrors) {
	errs := FieldErrors{}
	merged := *existing

	if req.TicketNumber != nil {
		if strings.TrimSpace(*req.TicketNumber) == "" {
			errs["numAviso"] = "Número do aviso é obrigatório."
		} else {
			merged.TicketNumber = strings.TrimSpace(*req.TicketNumber)
		}
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			errs["tipoOcorrencia"] = "Tipo de ocorrência inválido."
		} else {
			merged.Type = *req.Type
		}
	}
	if req.InitialNature != nil {
		if strings.TrimSpace(*req.InitialNature) == "" {
			errs["naturezaInicial"] = "Natureza inicial é obrigatória."
		} else {
			merged.InitialNature = strings.TrimSpace(*req.InitialNature)
		}
	}
	if req.ReceivedAt != nil {
		merged.ReceivedAt = req.ReceivedAt.UTC()
	}
	if req.Activation != nil {
		if m, ok := domain.ParseActivation(string(*req.Activation)); ok {
			merged.Activation = m
		} else {
			errs["formaAcionamento"] = "Forma de acionamento inválida."
		}
	}
	if req.Situation != nil {
		v.patchStatus(existing, &merged, *req.Situation, errs)
	}
	if req.Address != nil {
		v.patchAddress(&merged, *req.Address, errs)
	}
	if req.Requester != nil {
		v.patchRequester(&merged, *req.Requester, errs)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &merged, nil
}

func (v *Validator) patchStatus(existing, merged *domain.Occurrence, group domain.ChoiceGroup, errs FieldErrors) {
	key, ok := group.Selected()
	if !ok {
		errs["situacaoOcorrencia"] = "Selecione uma situação."
		return
	}
	next, ok := domain.NormalizeStatus(key, "")
	if !ok {
		errs["situacaoOcorrencia"] = "Situação inválida."
		return
	}
	// unknown stored free text is treated as received for transition checks
	current, _ := existing.CurrentStatus()
	if current == "" {
		current = domain.StatusReceived
	}
	if !current.CanTransitionTo(next) {
		errs["situacaoOcorrencia"] = "Transição de situação inválida."
		return
	}
	merged.SetStatus(next)
}

func (v *Validator) patchAddress(merged *domain.Occurrence, addr domain.Address, errs FieldErrors) {
	if strings.TrimSpace(addr.Street) == "" {
		errs["endRua"] = "Rua é obrigatória."
	}
	if strings.TrimSpace(addr.Number) == "" {
		errs["endNumero"] = "Número é obrigatório (use S/N quando não houver)."
	}
	if strings.TrimSpace(addr.Municipality) == "" {
		errs["endMunicipio"] = "Município é obrigatório."
	}
	if len(errs) > 0 {
		return
	}
	merged.Address = domain.Address{
		Street:       strings.TrimSpace(addr.Street),
		Number:       strings.TrimSpace(addr.Number),
		District:     strings.TrimSpace(addr.District),
		Municipality: strings.TrimSpace(addr.Municipality),
		Reference:    strings.TrimSpace(addr.Reference),
	}
}

func (v *Validator) patchRequester(merged *domain.Occurrence, req domain.Requester, errs FieldErrors) {
	if strings.TrimSpace(req.Name) == "" {
		errs["solNome"] = "Nome do solicitante é obrigatório."
	}
	digits := format.DigitsOnly(req.Phone)
	if len(digits) < 10 {
		errs["solFone"] = "Telefone inválido ou incompleto."
	}
	if len(errs) > 0 {
		return
	}
	merged.Requester = domain.Requester{
		Name:     strings.TrimSpace(req.Name),
		Phone:    digits,
		Relation: strings.TrimSpace(req.Relation),
	}
}
