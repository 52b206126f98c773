package config

import (
	"fmt"
	"strings"
)

// FieldError is a single validation violation for one variable.
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is the complete list of violations from one validation
// pass, in variable declaration order. It is never empty when returned.
type ValidationErrors []FieldError

// Error lists every violation on its own line.
func (v ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("invalid configuration:")
	for _, e := range v {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}
