// Package sandbox runs learner JavaScript in a node subprocess.
//
// The code is compiled as the body of a function whose only parameter is a
// replacement console. console.log arguments are formatted the way the
// tutorial pages show them: objects with JSON.stringify, everything else with
// String, joined by a space. Output logged before a throw is kept.
//
// This is isolation by process boundary and timeout only. It is meant for a
// learner's own machine, not for untrusted multi-tenant input.
package sandbox
