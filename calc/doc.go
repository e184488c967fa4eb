// Package calc evaluates nucleon operations described as data.
//
// A Request names an operation (binding, fission, fusion, decay) and carries
// its scalar arguments; a Calculator dispatches it to semf, reaction or decay
// with its configured mass-formula coefficients and returns a Result.
// Requests can be decoded from YAML or JSON lists, which is how the
// "nucleon batch" command evaluates files.
//
// Errors:
//
//   - ErrUnknownOp: the request names no known operation.
//   - ErrFormat: DecodeRequests was given an unsupported format.
//   - Any domain error from the formula packages, wrapped with the request
//     index and name (errors.Is still matches nucleon.ErrDomain).
package calc
