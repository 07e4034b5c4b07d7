package entities

import "strings"

// NormalizeMAC lowercases a MAC address. Inputs holding exactly twelve hex
// digits in any separator style are rewritten to the IOS dotted form
// (aabb.ccdd.eeff) so they compare equal to parsed device output.
func NormalizeMAC(mac string) string {
	lower := strings.ToLower(strings.TrimSpace(mac))
	plain := strings.NewReplacer(":", "", "-", "", ".", "").Replace(lower)
	if len(plain) != 12 || !isHex(plain) {
		return lower
	}
	return plain[0:4] + "." + plain[4:8] + "." + plain[8:12]
}

func isHex(s string) bool {
	for _, ch := range s {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return false
		}
	}
	return true
}
