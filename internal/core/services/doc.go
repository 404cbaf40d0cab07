// Package services implements the driving ports on top of the shared
// application state. Services mutate state first and persist after;
// storage failures are logged, never propagated to callers.
package services
