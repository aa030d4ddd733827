// Package catalog provides durable storage for circuit descriptions.
//
// The catalog stores wire definitions only. Signal state is never
// persisted; a loaded circuit starts with every wire unresolved.
//
// Revisions are content-addressed: saving the same circuit under the
// same name twice returns the existing revision instead of writing a
// new one. Revision ids are UUIDv7, so lexical order follows creation
// order.
package catalog
