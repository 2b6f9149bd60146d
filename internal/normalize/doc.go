// Package normalize converts remote wire-format records into the local
// canonical shapes held by the replica store.
//
// Decoding is schema-validated: raw payloads are checked against embedded
// JSON schemas before being mapped, so malformed input surfaces as a typed
// [*DecodeError] instead of silently defaulted fields. Normalization itself
// is pure and total — a validated record always normalizes, with absent
// optional fields omitted rather than written as explicit zero values.
package normalize
