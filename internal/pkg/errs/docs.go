// Package errs provides standardized error types shared across the back
// office. Each error kind follows the same pattern: a sentinel error for
// classification, a struct carrying details, constructors with and without a
// cause, and Error/Unwrap methods so errors.Is works against the sentinel.
package errs
