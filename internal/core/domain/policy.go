package domain

// Authorization policy for catalog mutations. These are pure decision
// functions: they look at the acting user and the requested change set and
// return ErrForbidden when the operation is not permitted. Catalog reads are
// public and never pass through here.

// AuthorizeCreate permits vehicle creation for admins only.
func AuthorizeCreate(actor *User) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	return nil
}

// AuthorizeDelete permits vehicle deletion for admins only.
func AuthorizeDelete(actor *User) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	return nil
}

// AuthorizeUpdate decides whether the actor may apply the requested change
// set. Admins may change any field. A non-admin request is permitted only
// when it is exactly {available: false}, the reservation transition. The
// gate is all-or-nothing: a non-admin asking for available:false together
// with any other field is rejected in full, so a vehicle can only move from
// available to reserved by their hand, never back.
func AuthorizeUpdate(actor *User, ch VehicleChanges) error {
	if actor.IsAdmin {
		return nil
	}
	if ch.Available == nil || *ch.Available {
		return ErrForbidden
	}
	if ch.hasFieldOtherThanAvailable() {
		return ErrForbidden
	}
	return nil
}
