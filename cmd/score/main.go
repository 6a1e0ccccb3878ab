package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"nutrisigno-api/internal/scoring"
)

// Calcula los seis pilares a partir de un JSON de respuestas, sin tocar la
// base de datos. Útil para probar ajustes del catálogo con casos reales:
//
//	score respostas.json
//	cat respostas.json | score
func main() {
	raw, err := readInput()
	if err != nil {
		log.Fatalf("leer respuestas: %v", err)
	}

	var respostas scoring.Answers
	if err := json.Unmarshal(raw, &respostas); err != nil {
		log.Fatalf("parsear JSON: %v", err)
	}

	scores := scoring.CalculatePillars(respostas)

	fmt.Println("===== Pilares =====")
	for _, pillar := range scoring.Pillars() {
		if score := scores[pillar]; score != nil {
			fmt.Printf("%-11s %d\n", pillar, *score)
		} else {
			fmt.Printf("%-11s null\n", pillar)
		}
	}

	out, err := json.Marshal(scores)
	if err != nil {
		log.Fatalf("serializar pilares: %v", err)
	}
	fmt.Println(string(out))
}

func readInput() ([]byte, error) {
	if len(os.Args) > 1 {
		return os.ReadFile(os.Args[1])
	}
	return io.ReadAll(os.Stdin)
}
