package scoring

/*
========================
 Resolución de respuestas
========================
*/

// aliasSource es una clave alternativa bajo la que formularios viejos
// guardaron la respuesta de una pregunta. transform, si existe, convierte
// el valor heredado a la unidad canónica; si falla se prueba el siguiente
// alias.
type aliasSource struct {
	key       string
	transform func(any) (any, bool)
}

// legacyAliases mapea id canónico -> claves heredadas, en orden de
// preferencia. Se consulta solo cuando la clave canónica no está presente.
var legacyAliases = map[string][]aliasSource{
	"nivel_energia_dia":      {{key: "nivel_energia"}, {key: "energia_diaria"}},
	"acorda_cansada":         {{key: "sensacao_ao_acordar"}},
	"tipo_fezes_bristol":     {{key: "tipo_fezes"}},
	"freq_inchaco_abdominal": {{key: "freq_inchaco"}},
	"freq_evacuacao":         {{key: "freq_intestino"}},
	"horas_sono_noite":       {{key: "horas_sono"}, {key: "sono_horas"}},
	"copos_agua_dia": {
		{key: "qtd_copos_agua"},
		{key: "consumo_agua", transform: litersToCups},
	},
	"retencao_inchaco":         {{key: "retencao_liquidos"}},
	"refeicoes_por_dia":        {{key: "refeicoes_no_dia"}},
	"constancia_fim_de_semana": {{key: "variacao_rotina_fim_de_semana"}},
}

// consumo_agua llegaba en litros; el catálogo trabaja en copos de 200 ml.
func litersToCups(v any) (any, bool) {
	liters, ok := coerceFloat(v)
	if !ok {
		return nil, false
	}
	return liters * 5.0, true
}

// resolveAnswer busca la respuesta de una pregunta: primero la clave
// canónica, después los alias heredados. Una clave presente con valor nil
// cuenta como ausente y, si es la canónica, corta la búsqueda.
func resolveAnswer(respostas Answers, questionID string) (any, bool) {
	if v, ok := respostas[questionID]; ok {
		return v, v != nil
	}
	for _, alias := range legacyAliases[questionID] {
		v, ok := respostas[alias.key]
		if !ok {
			continue
		}
		if alias.transform == nil {
			return v, v != nil
		}
		if tv, ok := alias.transform(v); ok {
			return tv, true
		}
	}
	return nil, false
}
