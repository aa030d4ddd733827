package wire

// ID is a validated wire identifier.
//
// Valid identifiers are non-empty and consist solely of ASCII lowercase
// letters. IDs are comparable and usable as map keys.
type ID string

// NewID validates s and returns it as an ID.
func NewID(s string) (ID, error) {
	if !validID(s) {
		return "", newInvalidIDError(s)
	}
	return ID(s), nil
}

func validID(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func (id ID) String() string {
	return string(id)
}
