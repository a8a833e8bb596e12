// Package record implements the generic record store shared by every
// ArraBoard feature.
//
// A feature collection (contacts, transactions, goals, ...) is a flat set
// of records keyed by a client-generated UUID. The Store interface offers
// the four CRUD operations over one collection and is implemented by two
// interchangeable backends:
//
//   - the local backend persists each collection as one JSON blob file and
//     performs a full read-modify-write on every operation, mirroring a
//     single-user browser-storage model;
//   - the remote backend forwards every operation over HTTP to the
//     ArraBoard server, scoped to the authenticated user.
//
// Feature code depends only on Store and the sentinel errors of this
// package; it never touches a concrete backend directly.
package record
