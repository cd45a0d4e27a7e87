// Package common holds enumerations shared by the configuration and the
// extend driver, so that config does not have to import the driver and the
// driver does not have to import config.
package common

//go:generate go tool go-enum --marshal

// ExtendMode selects how @extend treats the selector being extended.
// In normal mode the original selector is kept next to the generated ones,
// in replace mode it is kept only when no extension applied.
// ENUM(normal, replace)
type ExtendMode int

func (m ExtendMode) KeepOriginal() bool {
	return m == ExtendModeNormal
}
