package validate

import (
	"slices"
	"strings"

	dm "github.com/ashmatics/datamodels"
)

// supportedCountryCodes is the fixed ISO 3166-1 alpha-2 subset covered by
// the schemas. Loaded once at program start and never mutated.
var supportedCountryCodes = map[string]struct{}{
	// North America
	"US": {}, "CA": {}, "MX": {},
	// Europe
	"GB": {}, "DE": {}, "FR": {}, "IT": {}, "ES": {}, "NL": {}, "BE": {},
	"CH": {}, "AT": {}, "SE": {}, "NO": {}, "DK": {}, "FI": {}, "IE": {},
	"PL": {}, "CZ": {}, "PT": {},
	// Asia-Pacific
	"CN": {}, "JP": {}, "KR": {}, "IN": {}, "AU": {}, "NZ": {}, "SG": {},
	"HK": {}, "TW": {}, "TH": {}, "MY": {}, "ID": {}, "PH": {}, "VN": {},
	// Latin America
	"BR": {}, "AR": {}, "CL": {}, "CO": {}, "PE": {},
	// Middle East & Africa
	"IL": {}, "AE": {}, "SA": {}, "ZA": {}, "EG": {},
}

const countryCodeFormat = "ISO 3166-1 alpha-2 (e.g. US, DE, JP)"

// CountryCode validates an ISO 3166-1 alpha-2 country code against the
// supported subset. Returns the uppercase canonical form. Three-letter
// codes and codes outside the supported set are rejected.
func CountryCode(value string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if len(normalized) != 2 {
		return "", &dm.FormatError{
			Kind:   "country code",
			Value:  value,
			Format: countryCodeFormat,
		}
	}
	if _, ok := supportedCountryCodes[normalized]; !ok {
		return "", &dm.FormatError{
			Kind:   "country code",
			Value:  value,
			Format: countryCodeFormat + "; supported: " + strings.Join(SupportedCountryCodes(), ", "),
		}
	}
	return normalized, nil
}

// SupportedCountryCodes returns the supported codes in sorted order.
func SupportedCountryCodes() []string {
	codes := make([]string, 0, len(supportedCountryCodes))
	for code := range supportedCountryCodes {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
