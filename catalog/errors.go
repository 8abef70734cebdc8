// errors.go - catalog error policy: required anchors are fatal, everything else is tolerant
package catalog

import (
	"errors"
	"fmt"
)

// ErrAnchorMissing is returned when a required bootstrap anchor (a row-set,
// an owning alloc-unit, the boot page itself) cannot be found. This is the
// one catalog-level failure that is fatal: the file is not a usable
// database.
var ErrAnchorMissing = errors.New("catalog: required anchor missing")

func errUnknownEnum(field string, v int64) error {
	return fmt.Errorf("catalog: unknown enum value %d for %s", v, field)
}
