package domain

import "strings"

// ValidationErrors collects all field-level violations found while
// validating an entity. It satisfies error so services can return it
// directly; the handler layer renders the individual messages.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}
