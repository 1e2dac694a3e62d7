package models

import "strings"

// Crust is the crust variant of a pizza
type Crust string

const (
	CrustThin Crust = "Thin"
)

// Flavour is the flavour variant of a pizza
type Flavour string

const (
	FlavourHawaii          Flavour = "Hawaii"
	FlavourRegina          Flavour = "Regina"
	FlavourQuattroFormaggi Flavour = "Quattro-Formaggi"
)

// Size is the size variant of a pizza
type Size string

const (
	SizeLarge  Size = "Large"
	SizeMedium Size = "Medium"
)

// normalizeEnum folds case and the dash/underscore distinction so that both
// the enum constant spelling (QUATTRO_FORMAGGI) and the display text
// (Quattro-Formaggi) are accepted on the wire.
func normalizeEnum(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}

// ParseCrust parses a wire value into a Crust
func ParseCrust(s string) (Crust, error) {
	switch normalizeEnum(s) {
	case "THIN":
		return CrustThin, nil
	}
	return "", ValidationError{Field: "Crust", Message: "invalid crust: " + s}
}

// ParseFlavour parses a wire value into a Flavour
func ParseFlavour(s string) (Flavour, error) {
	switch normalizeEnum(s) {
	case "HAWAII":
		return FlavourHawaii, nil
	case "REGINA":
		return FlavourRegina, nil
	case "QUATTRO_FORMAGGI":
		return FlavourQuattroFormaggi, nil
	}
	return "", ValidationError{Field: "Flavor", Message: "invalid flavor: " + s}
}

// ParseSize parses a wire value into a Size
func ParseSize(s string) (Size, error) {
	switch normalizeEnum(s) {
	case "L", "LARGE":
		return SizeLarge, nil
	case "M", "MEDIUM":
		return SizeMedium, nil
	}
	return "", ValidationError{Field: "Size", Message: "invalid size: " + s}
}
