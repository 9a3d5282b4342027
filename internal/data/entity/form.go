package entity

// FormState holds in-progress field values and a parallel map of per-field
// error messages. An empty message means the field is valid.
type FormState struct {
	Values map[string]string
	Errors map[string]string
}

func NewFormState(fields ...string) *FormState {
	f := &FormState{
		Values: make(map[string]string, len(fields)),
		Errors: make(map[string]string, len(fields)),
	}
	for _, field := range fields {
		f.Values[field] = ""
		f.Errors[field] = ""
	}
	return f
}

// Set stores value verbatim, whether or not errMsg is empty.
func (f *FormState) Set(field, value, errMsg string) {
	f.Values[field] = value
	f.Errors[field] = errMsg
}

func (f *FormState) Value(field string) string {
	return f.Values[field]
}

func (f *FormState) Error(field string) string {
	return f.Errors[field]
}

func (f *FormState) Has(field string) bool {
	_, ok := f.Values[field]
	return ok
}

func (f *FormState) HasErrors() bool {
	for _, msg := range f.Errors {
		if msg != "" {
			return true
		}
	}
	return false
}

// Reset clears every known field back to an empty value and no error.
func (f *FormState) Reset() {
	for field := range f.Values {
		f.Values[field] = ""
		f.Errors[field] = ""
	}
}

// Snapshot copies both maps so callers can read them without holding the session lock.
func (f *FormState) Snapshot() (map[string]string, map[string]string) {
	values := make(map[string]string, len(f.Values))
	errs := make(map[string]string, len(f.Errors))
	for k, v := range f.Values {
		values[k] = v
	}
	for k, v := range f.Errors {
		errs[k] = v
	}
	return values, errs
}
