package utils

import "strings"

// NormalizarString remove espaços nas pontas e colapsa espaços internos
// repetidos. Toda entrada textual vinda da camada de chamada passa por aqui
// antes de ser persistida.
func NormalizarString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
