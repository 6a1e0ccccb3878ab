package domain

// Insights agrupa las métricas derivadas de la anamnesis que acompañan a los
// puntajes de pilares: IMC, hidratación recomendada e interpretaciones
// textuales listas para mostrar.
type Insights struct {
	BMI              *float64 `json:"bmi,omitempty"`
	BMICategory      string   `json:"bmi_category,omitempty"`
	RecommendedWater float64  `json:"recommended_water"`
	WaterStatus      string   `json:"water_status"`
	Bristol          string   `json:"bristol"`
	Urine            string   `json:"urine"`
	SignHint         string   `json:"sign_hint,omitempty"`
	MentalNotes      string   `json:"mental_notes,omitempty"`
	Consumption      float64  `json:"consumption"`
}
