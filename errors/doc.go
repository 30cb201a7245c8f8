// Package errors provides structured error types for ownership and
// resource failures.
//
// Every error carries a Phase (where in the handle or resource
// lifecycle it occurred) and a Kind (what went wrong), so callers can
// match with errors.Is without parsing strings:
//
//	if errors.Is(err, &ownerrors.Error{Phase: ownerrors.PhaseIO, Kind: ownerrors.KindIOFailure}) {
//	    // resource acquisition failed
//	}
//
// Ownership misuse (dereferencing an emptied exclusive handle) is NOT
// represented here; it is a fail-fast programming error and panics.
// Resolving an expired observer is likewise not an error at all: it is
// an expected absent result.
package errors
