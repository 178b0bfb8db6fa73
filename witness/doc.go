// Package witness provides the certification primitive shared by every
// pattern in this module.
//
// A witness is a function (or marker relation) whose successful use is
// itself the proof that some property holds. Certified is the artifact such
// a function returns: holding a Certified[T] means the check already
// happened, so downstream code never re-checks and never forgets to check.
//
// This package contains the wrapper only. The gating lives in the witness
// functions of the consuming packages; Certified itself never fails and
// carries no runtime state beyond the wrapped value.
package witness
