// Package compliance validates a canvas document against platform rules and
// reduces the results to a single 0-100 score.
//
// A compliance run executes a fixed battery of independent checks:
//
//  1. Prohibited copy: text matched against a table of risky ad phrases
//  2. Safe zones: text and image objects inside reserved platform bands
//  3. Logo placement: presence, size ratio, and allowed anchor zones
//  4. Color contrast: WCAG relative-luminance ratio of text against the
//     document background
//  5. Text limits: total character budget for the target format
//
// Checks are isolated: a panic while evaluating one check degrades that
// single check to a fail with a diagnostic message, and the remaining
// checks still run. The score always computes and is always in [0, 100].
//
// # Usage
//
//	report := compliance.Run(doc, descriptor)
//	for _, check := range report.Checks {
//	    fmt.Println(check.Status, check.Label, check.Message)
//	}
//	fmt.Println("score:", report.Score)
package compliance
