package types

import "errors"

// Status values for the estado column. These are the only two legal values;
// the sole legal transition is a complete flip between them.
const (
	StatusActivo   = "Activo"
	StatusInactivo = "Inactivo"
)

// ErrInvalidStatus reports an estado value outside {Activo, Inactivo}.
var ErrInvalidStatus = errors.New("invalid estado value")

// ToggleStatus returns the complement of the given status.
func ToggleStatus(current string) (string, error) {
	switch current {
	case StatusActivo:
		return StatusInactivo, nil
	case StatusInactivo:
		return StatusActivo, nil
	default:
		return "", ErrInvalidStatus
	}
}
