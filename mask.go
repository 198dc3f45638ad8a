package mongy

import (
	"net/netip"
	"strings"
	"unicode"
)

// MaskType names a known data format with masking rules.
type MaskType string

const (
	MaskSSN   MaskType = "ssn"   // 123-45-6789 -> ***-**-6789
	MaskEmail MaskType = "email" // alice@example.com -> a***@example.com
	MaskPhone MaskType = "phone" // (555) 123-4567 -> (***) ***-4567
	MaskCard  MaskType = "card"  // 4111111111111111 -> ************1111
	MaskIP    MaskType = "ip"    // 192.168.1.100 -> 192.168.xxx.xxx
	MaskUUID  MaskType = "uuid"  // 550e8400-e29b-41d4-a716-446655440000 -> 550e8400-****-****-****-************
	MaskIBAN  MaskType = "iban"  // GB82WEST12345698765432 -> GB82**************5432
	MaskName  MaskType = "name"  // John Smith -> J*** S****
)

// Masker applies content-aware masking.
type Masker interface {
	Mask(value string) string
}

// MaskerFunc adapts a function to the Masker interface.
type MaskerFunc func(value string) string

// Mask calls f(value).
func (f MaskerFunc) Mask(value string) string { return f(value) }

var maskers = map[MaskType]Masker{
	MaskSSN:   MaskerFunc(maskSSN),
	MaskEmail: MaskerFunc(maskEmail),
	MaskPhone: MaskerFunc(maskPhone),
	MaskCard:  MaskerFunc(maskCard),
	MaskIP:    MaskerFunc(maskIP),
	MaskUUID:  MaskerFunc(maskUUID),
	MaskIBAN:  MaskerFunc(maskIBAN),
	MaskName:  MaskerFunc(maskName),
}

// MaskerFor returns the built-in masker for mt.
func MaskerFor(mt MaskType) (Masker, bool) {
	m, ok := maskers[mt]
	return m, ok
}

func stars(s string) string { return strings.Repeat("*", len(s)) }

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func maskSSN(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return stars(value)
	}
	return "***-**-" + digits[len(digits)-4:]
}

func maskEmail(value string) string {
	at := strings.LastIndex(value, "@")
	if at < 1 {
		return stars(value)
	}
	return value[:1] + "***" + value[at:]
}

func maskPhone(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return stars(value)
	}
	last4 := digits[len(digits)-4:]
	switch {
	case len(digits) >= 10 && strings.HasPrefix(value, "("):
		return "(***) ***-" + last4
	case len(digits) >= 10:
		return "***-***-" + last4
	default:
		return "***-" + last4
	}
}

func maskCard(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return stars(value)
	}
	last4 := digits[len(digits)-4:]

	sep := ""
	switch {
	case strings.Contains(value, " "):
		sep = " "
	case strings.Contains(value, "-"):
		sep = "-"
	default:
		return strings.Repeat("*", len(digits)-4) + last4
	}

	groups := make([]string, (len(digits)-1)/4, (len(digits)-1)/4+1)
	for i := range groups {
		groups[i] = "****"
	}
	return strings.Join(append(groups, last4), sep)
}

// maskIP keeps the network half of an address: two IPv4 octets or four IPv6 groups.
func maskIP(value string) string {
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return stars(value)
	}
	if addr.Is4() {
		octets := strings.Split(addr.String(), ".")
		return octets[0] + "." + octets[1] + ".xxx.xxx"
	}
	groups := strings.Split(addr.StringExpanded(), ":")
	return strings.Join(groups[:4], ":") + ":xxxx:xxxx:xxxx:xxxx"
}

func maskUUID(value string) string {
	parts := strings.Split(value, "-")
	if len(parts) != 5 {
		return stars(value)
	}
	return parts[0] + "-****-****-****-************"
}

func maskIBAN(value string) string {
	if len(value) <= 8 {
		return stars(value)
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}

func maskName(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		runes := []rune(word)
		words[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
	}
	return strings.Join(words, " ")
}
