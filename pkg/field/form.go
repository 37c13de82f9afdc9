package field

// Form is an ordered collection of fields, mirroring the layout order of
// the inputs it backs. Like Field it is single-goroutine UI state.
type Form struct {
	fields []*Field
	byName map[string]*Field
}

// NewForm assembles a form from fields. Field order is preserved; later
// fields with a duplicate name shadow earlier ones in name lookups but
// keep their own slot in the iteration order.
func NewForm(fields ...*Field) *Form {
	byName := make(map[string]*Field, len(fields))
	for _, f := range fields {
		byName[f.Name()] = f
	}
	return &Form{fields: fields, byName: byName}
}

// Field looks a field up by name, returning nil when absent.
func (fm *Form) Field(name string) *Field {
	return fm.byName[name]
}

// Fields returns the fields in layout order. The slice is shared; callers
// must not modify it.
func (fm *Form) Fields() []*Field {
	return fm.fields
}

// Valid reports whether every field passes validation.
func (fm *Form) Valid() bool {
	for _, f := range fm.fields {
		if !f.Valid() {
			return false
		}
	}
	return true
}

// Messages returns the current error message per invalid field, keyed by
// field name. A valid form yields an empty map.
func (fm *Form) Messages() map[string]string {
	messages := make(map[string]string)
	for _, f := range fm.fields {
		if msg := f.Message(); msg != "" {
			messages[f.Name()] = msg
		}
	}
	return messages
}

// Reset clears every field.
func (fm *Form) Reset() {
	for _, f := range fm.fields {
		f.Reset()
	}
}
