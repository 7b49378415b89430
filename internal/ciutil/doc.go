// Package ciutil detects the execution environment and resolves settings
// that may be supplied under more than one environment variable name.
//
// Test helpers use it to decide whether a missing test database is an
// acceptable local skip or a CI misconfiguration.
package ciutil
