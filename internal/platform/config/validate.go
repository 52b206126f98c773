package config

// Parsed holds the coerced, typed value of every variable that was set or
// defaulted. It exists only between a fully successful validation pass and
// derivation; values are read through Var.Get and Var.Lookup.
type Parsed struct {
	values map[string]any
}

// Validate checks src against every field in table, in table order. It
// returns either a complete Parsed or the full ordered list of violations as
// a ValidationErrors — never a partial result, never just the first error.
// Validate is a pure function of its inputs.
func Validate(table []Field, src Source) (Parsed, error) {
	values := make(map[string]any, len(table))
	var errs ValidationErrors

	for _, f := range table {
		val, set, ferr := f.check(src)
		if ferr != nil {
			errs = append(errs, *ferr)
			continue
		}
		if set {
			values[f.Name()] = val
		}
	}

	if len(errs) > 0 {
		return Parsed{}, errs
	}
	return Parsed{values: values}, nil
}
