// Package binder reads HTTP request bodies into handler request values.
//
// RawBody captures the body verbatim, up to a size limit, for handlers that
// validate the payload themselves. A JSON content type is accepted with or
// without parameters; a missing Content-Type header is tolerated because
// PayPal clients do not always send one.
package binder
