// Package config turns the flat process environment into a single validated,
// strongly typed configuration snapshot.
//
// An optional .env file (godotenv) fills gaps before validation; variables
// already set in the process environment always win. Every declared variable
// is checked in declaration order and all violations are reported together,
// so a broken deployment can be fixed in one pass instead of one restart per
// mistake. The resulting Snapshot is built exactly once at startup and passed
// by value into the rest of the process.
package config
