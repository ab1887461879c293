// Package overload resolves between mode-deduced and conventionally
// mode-qualified definitions of one operation.
//
// A type may declare an operation both ways: qualified candidates each
// accept exactly one access mode, a deduced candidate accepts them all.
// A Set collects the candidates under the operation's name; Resolve ranks
// them against the access mode of a call site using the ordinary
// preference order: an exact qualified match first, the deduced candidate
// only as a tie-breaker of last resort. Equally-good candidates fail with
// ErrAmbiguousCall rather than an arbitrary pick.
//
// Registration checks each candidate's callable shape with reflect, and
// bind-style sets (NewBindSet) also require candidates to return an
// Optional. Shape violations and resolution failures all surface while
// the call graph is composed; correct usage never sees them at run time.
package overload
