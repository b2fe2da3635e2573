// Package schema derives the run-wide CSV column list. The schema is built
// exactly once per run and is immutable afterwards; every emitted row must
// match its column count.
package schema
