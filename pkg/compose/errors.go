package compose

import (
	"fmt"
	"strings"
)

// MissingSelectionError reports the required axes that were still unset at
// composition time. No request is produced when it is returned; the session
// state is untouched so the caller can fix the gaps and recompose.
type MissingSelectionError struct {
	// Axes lists the unset axis labels in the fixed check order.
	Axes []string
}

func (e *MissingSelectionError) Error() string {
	return fmt.Sprintf("compose: required selections missing: %s", strings.Join(e.Axes, ", "))
}
