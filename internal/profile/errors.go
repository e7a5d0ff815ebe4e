// Package profile normalizes a raw assessment into a canonical UserProfile.
package profile

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// MalformedProfileError is returned when no field of an assessment could be normalized.
type MalformedProfileError struct {
	Warnings []types.Warning
}

func (e *MalformedProfileError) Error() string {
	if len(e.Warnings) == 0 {
		return "malformed profile: no identifiable fields"
	}
	fields := make([]string, 0, len(e.Warnings))
	for _, w := range e.Warnings {
		fields = append(fields, w.Field)
	}
	return fmt.Sprintf("malformed profile: no identifiable fields (unparseable: %s)", strings.Join(fields, ", "))
}
