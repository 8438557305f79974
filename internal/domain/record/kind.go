package record

// Kind is the declared type of a field or column.
type Kind string

const (
	KindText   Kind = "text"
	KindDate   Kind = "date"  // YYYY-MM-DD
	KindMonth  Kind = "month" // MM/YYYY
	KindYear   Kind = "year"  // YYYY
	KindChoice Kind = "choice"
	KindNumber Kind = "number"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindDate, KindMonth, KindYear, KindChoice, KindNumber:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
