// Package team defines the recognized-team set accepted by the scoreboard.
//
// The set is a closed roster: a match may only be started between two teams the
// roster knows about. Default() carries the built-in international roster;
// LoadFile reads a YAML roster with ${VAR} environment variable substitution.
package team
