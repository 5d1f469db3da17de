package contacts

import "strings"

// NormalizeWhatsApp strips formatting from a number and prefixes the India
// country code to bare 10-digit numbers.
func NormalizeWhatsApp(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n := b.String()
	if len(n) == 10 && !strings.HasPrefix(n, "91") {
		n = "91" + n
	}
	return n
}

// WhatsAppLink is the click-to-chat URL for number.
func WhatsAppLink(number string) string {
	return "https://wa.me/" + NormalizeWhatsApp(number)
}
