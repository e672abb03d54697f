package domain

// Year bounds accepted for any vehicle record.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Vehicle is the core catalog entity. Available starts true and flips to
// false when a vehicle is reserved.
type Vehicle struct {
	ID        string  `json:"id"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Color     string  `json:"color"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// VehicleChanges is a partial update to a vehicle. A nil field means the
// caller did not ask to change it.
type VehicleChanges struct {
	Make      *string
	Model     *string
	Year      *int
	Color     *string
	Price     *float64
	Available *bool
}

// Empty reports whether no field change was requested.
func (ch VehicleChanges) Empty() bool {
	return ch.Make == nil && ch.Model == nil && ch.Year == nil &&
		ch.Color == nil && ch.Price == nil && ch.Available == nil
}

// hasFieldOtherThanAvailable reports whether the change set touches anything
// beyond the availability flag.
func (ch VehicleChanges) hasFieldOtherThanAvailable() bool {
	return ch.Make != nil || ch.Model != nil || ch.Year != nil ||
		ch.Color != nil || ch.Price != nil
}

// Validate checks field-level constraints on every supplied field and returns
// the first violation. It never inspects fields the caller did not supply.
func (ch VehicleChanges) Validate() error {
	if ch.Year != nil && (*ch.Year < MinYear || *ch.Year > MaxYear) {
		return &FieldError{Field: "year", Reason: "must be between 1900 and 2100"}
	}
	if ch.Price != nil && *ch.Price < 0 {
		return &FieldError{Field: "price", Reason: "cannot be negative"}
	}
	return nil
}
