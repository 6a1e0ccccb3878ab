package intake

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"nutrisigno-api/internal/domain"
)

// Campos del payload que se mapean a campos tipados del FormSubmission.
// Cualquier otra clave (las respuestas del cuestionario de pilares, por
// ejemplo) se conserva tal cual en Extras.
var knownFields = map[string]struct{}{
	"nome":                    {},
	"email":                   {},
	"telefone":                {},
	"data_nascimento":         {},
	"hora_nascimento":         {},
	"local_nascimento":        {},
	"signo":                   {},
	"peso":                    {},
	"altura":                  {},
	"historico_saude":         {},
	"consumo_agua":            {},
	"nivel_atividade":         {},
	"tipo_fezes":              {},
	"cor_urina":               {},
	"motivacao":               {},
	"estresse":                {},
	"habitos_alimentares":     {},
	"energia_diaria":          {},
	"impulsividade_alimentar": {},
	"rotina_alimentar":        {},
	"observacoes":             {},
}

// FromPayload construye un FormSubmission desde el payload crudo. Los
// numéricos que no se pueden convertir quedan en nil sin reportar error;
// el validador decide después qué es obligatorio.
func FromPayload(data map[string]any) domain.FormSubmission {
	form := domain.FormSubmission{
		Nome:                   strings.TrimSpace(asString(data["nome"])),
		Email:                  strings.TrimSpace(asString(data["email"])),
		Telefone:               asString(data["telefone"]),
		DataNascimento:         asString(data["data_nascimento"]),
		HoraNascimento:         asString(data["hora_nascimento"]),
		LocalNascimento:        asString(data["local_nascimento"]),
		Signo:                  asString(data["signo"]),
		Peso:                   toFloatPtr(data["peso"]),
		Altura:                 toFloatPtr(data["altura"]),
		HistoricoSaude:         asString(data["historico_saude"]),
		ConsumoAgua:            toFloatPtr(data["consumo_agua"]),
		NivelAtividade:         asString(data["nivel_atividade"]),
		TipoFezes:              asString(data["tipo_fezes"]),
		CorUrina:               asString(data["cor_urina"]),
		Motivacao:              toIntPtr(data["motivacao"]),
		Estresse:               toIntPtr(data["estresse"]),
		HabitosAlimentares:     asString(data["habitos_alimentares"]),
		EnergiaDiaria:          asString(data["energia_diaria"]),
		ImpulsividadeAlimentar: toIntPtr(data["impulsividade_alimentar"]),
		RotinaAlimentar:        toIntPtr(data["rotina_alimentar"]),
		Observacoes:            asString(data["observacoes"]),
	}

	extras := make(map[string]any)
	for key, value := range data {
		if _, known := knownFields[key]; !known {
			extras[key] = value
		}
	}
	form.Extras = extras
	return form
}

// Normalize devuelve una copia del FormSubmission con teléfono y fecha de
// nacimiento canónicos. Si los Extras traen esas mismas claves también se
// canonicalizan ahí.
func Normalize(form domain.FormSubmission) (domain.FormSubmission, error) {
	form.Telefone = CanonPhone(form.Telefone)

	dob, err := CanonBirthDate(form.DataNascimento)
	if err != nil {
		return domain.FormSubmission{}, err
	}
	form.DataNascimento = dob

	if len(form.Extras) > 0 {
		extras := make(map[string]any, len(form.Extras))
		for key, value := range form.Extras {
			extras[key] = value
		}
		if value, ok := extras["telefone"]; ok {
			extras["telefone"] = CanonPhone(asString(value))
		}
		if value, ok := extras["data_nascimento"]; ok {
			nd, err := CanonBirthDate(asString(value))
			if err != nil {
				return domain.FormSubmission{}, err
			}
			extras["data_nascimento"] = nd
		}
		form.Extras = extras
	}
	return form, nil
}

// Respostas aplana el FormSubmission en el mapa de respuestas que consumen
// el motor de pilares y la persistencia JSONB. Los opcionales no informados
// se guardan como nil para que el motor los trate como "sin respuesta".
func Respostas(form domain.FormSubmission) map[string]any {
	respostas := map[string]any{
		"nome":                    form.Nome,
		"email":                   form.Email,
		"telefone":                form.Telefone,
		"data_nascimento":         form.DataNascimento,
		"hora_nascimento":         nilIfEmpty(form.HoraNascimento),
		"local_nascimento":        nilIfEmpty(form.LocalNascimento),
		"signo":                   nilIfEmpty(form.Signo),
		"peso":                    floatOrNil(form.Peso),
		"altura":                  floatOrNil(form.Altura),
		"historico_saude":         nilIfEmpty(form.HistoricoSaude),
		"consumo_agua":            floatOrNil(form.ConsumoAgua),
		"nivel_atividade":         nilIfEmpty(form.NivelAtividade),
		"tipo_fezes":              nilIfEmpty(form.TipoFezes),
		"cor_urina":               nilIfEmpty(form.CorUrina),
		"motivacao":               intOrNil(form.Motivacao),
		"estresse":                intOrNil(form.Estresse),
		"habitos_alimentares":     nilIfEmpty(form.HabitosAlimentares),
		"energia_diaria":          nilIfEmpty(form.EnergiaDiaria),
		"impulsividade_alimentar": intOrNil(form.ImpulsividadeAlimentar),
		"rotina_alimentar":        intOrNil(form.RotinaAlimentar),
		"observacoes":             nilIfEmpty(form.Observacoes),
	}
	for key, value := range form.Extras {
		respostas[key] = value
	}
	return respostas
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func floatOrNil(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(value)
	}
}

func toFloatPtr(value any) *float64 {
	var f float64
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case bool:
		if v {
			f = 1
		}
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

func toIntPtr(value any) *int {
	f := toFloatPtr(value)
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	n := int(*f)
	return &n
}
