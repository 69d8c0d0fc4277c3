package validate

import (
	"regexp"
	"strings"

	dm "github.com/ashmatics/datamodels"
)

// Compiled patterns for FDA identifier formats.
var (
	kNumberRegex     = regexp.MustCompile(`^(K|BK|DEN)\d{6}$`)
	pmaNumberRegex   = regexp.MustCompile(`^P\d{6}$`)
	productCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Expected-format descriptions surfaced in FormatError messages.
const (
	kNumberFormat     = "K######, BK######, or DEN###### (6 digits)"
	pmaNumberFormat   = "P###### (6 digits)"
	productCodeFormat = "3 letters (e.g. MYN)"
)

// KNumber validates an FDA 510(k) premarket notification number.
//
// Accepted prefixes: K (traditional 510(k)), BK (510(k) submitted by CBER),
// DEN (De Novo), each followed by exactly 6 digits. Returns the uppercase
// canonical form.
func KNumber(value string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if !kNumberRegex.MatchString(normalized) {
		return "", &dm.FormatError{
			Kind:   "510(k) number",
			Value:  value,
			Format: kNumberFormat,
		}
	}
	return normalized, nil
}

// PMANumber validates an FDA premarket approval number (P + 6 digits).
// Returns the uppercase canonical form.
func PMANumber(value string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if !pmaNumberRegex.MatchString(normalized) {
		return "", &dm.FormatError{
			Kind:   "PMA number",
			Value:  value,
			Format: pmaNumberFormat,
		}
	}
	return normalized, nil
}

// DeNovoNumber validates a De Novo classification request number.
// De Novo numbers share the 510(k) layout but must carry the DEN prefix.
func DeNovoNumber(value string) (string, error) {
	normalized, err := KNumber(value)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(normalized, "DEN") {
		return "", &dm.FormatError{
			Kind:   "De Novo number",
			Value:  value,
			Format: "DEN###### (6 digits)",
		}
	}
	return normalized, nil
}

// ProductCode validates a three-letter FDA device product code.
// Returns the uppercase canonical form.
func ProductCode(value string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if !productCodeRegex.MatchString(normalized) {
		return "", &dm.FormatError{
			Kind:   "product code",
			Value:  value,
			Format: productCodeFormat,
		}
	}
	return normalized, nil
}
