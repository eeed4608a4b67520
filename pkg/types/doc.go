// Package types defines the records, status values, configuration, and
// standard errors shared by the cartilla data-access layer and its callers.
package types
