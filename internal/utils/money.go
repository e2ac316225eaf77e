package utils

import "fmt"

// FormatSoles keeps consistent currency formatting across responses and the
// printed boleto.
func FormatSoles(amount float64) string {
	return fmt.Sprintf("S/. %.2f", amount)
}
