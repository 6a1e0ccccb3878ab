package intake

import (
	"time"

	"nutrisigno-api/internal/domain"
)

// Validate aplica las reglas de dominio sobre un FormSubmission ya
// normalizado y devuelve los mensajes de error en portugués, listos para
// el usuario final. Un slice vacío significa formulario válido.
func Validate(form domain.FormSubmission) []string {
	var errs []string

	if CanonPhone(form.Telefone) == "" {
		errs = append(errs, "Telefone é obrigatório e deve conter apenas números.")
	}

	dob, err := CanonBirthDate(form.DataNascimento)
	switch {
	case err != nil:
		errs = append(errs, "Data de nascimento inválida. Use DD/MM/AAAA ou YYYY-MM-DD.")
	case dob == "":
		errs = append(errs, "Data de nascimento é obrigatória.")
	default:
		if _, perr := time.Parse(BirthDateLayout, dob); perr != nil {
			errs = append(errs, "Data de nascimento inválida. Use DD/MM/AAAA ou YYYY-MM-DD.")
		}
	}

	if form.Peso != nil && !(*form.Peso > 0 && *form.Peso <= 500) {
		errs = append(errs, "Peso deve estar entre 0 e 500 kg.")
	}
	if form.Altura != nil && !(*form.Altura > 0 && *form.Altura <= 300) {
		errs = append(errs, "Altura deve estar entre 0 e 300 cm.")
	}
	if form.Motivacao != nil && !(*form.Motivacao >= 1 && *form.Motivacao <= 5) {
		errs = append(errs, "Motivação deve estar entre 1 e 5.")
	}
	if form.Estresse != nil && !(*form.Estresse >= 1 && *form.Estresse <= 5) {
		errs = append(errs, "Estresse deve estar entre 1 e 5.")
	}
	if form.ConsumoAgua != nil && !(*form.ConsumoAgua >= 0 && *form.ConsumoAgua <= 15) {
		errs = append(errs, "Consumo de água deve estar entre 0 e 15 litros.")
	}

	return errs
}
