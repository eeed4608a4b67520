// Package store implements the generic tabular data-access layer for the
// cartilla directory: allowlist-validated identifiers, parameterized CRUD,
// join-table relation replacement, name-keyed updates with denormalization
// sync, and the transactional cascade status engine.
package store
