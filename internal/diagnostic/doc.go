// Package diagnostic provides structured errors, warnings and notes produced
// while checking a variant schema before generation.
//
// Every diagnostic carries a stable code (e.g. "duplicate_label") and the
// location it refers to: the whole file, one record, or one field of a record.
// Record-scoped errors let the generator skip only the offending record.
package diagnostic
