// Package version parses and compares dotted numeric version tokens.
//
// It covers the two kinds of versions the recipe deals with: compiler
// versions from the build settings ("5", "190", "15.0.0") and dependency or
// orchestrator versions checked against declared ranges ("boost/[>=1.83.0]",
// ">=1.53.0").
//
// Comparison pads missing components with zero:
//
//	version.MustParseVersion("6").Equals(version.MustParseVersion("6.0.0")) // true
//
// Constraints are conjunctions of operator terms:
//
//	c, _ := version.ParseConstraint("[>=1.83.0 <2]")
//	c.Satisfied(version.MustParseVersion("1.84.0")) // true
package version
