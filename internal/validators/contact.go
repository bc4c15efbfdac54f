package validators

import "strings"

// IsPhoneValid exige pelo menos 10 dígitos, ignorando máscara
func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

// IsEmailValid faz a checagem mínima de formato; email é opcional
func IsEmailValid(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
