// Package testutil provides testing utilities for the secretmanager packages.
//
// This package is intended for use in tests and benchmarks only.
// It generates random, wire-valid resource records for round-trip tests.
//
// # Random Records
//
//	rng := testutil.NewRNG(seed)
//	secret := rng.Secret()
//	version := rng.SecretVersion()
//
// Generated values survive an encode/decode cycle unchanged: maps and byte
// slices are either nil or non-empty, and a user managed replication always
// carries a replica list.
package testutil
