// Package domain defines the shared vocabulary of the recommendation email
// client: the closed enumerations that appear on the wire and the URL result
// returned to the email-rendering pipeline.
//
// Types in this package are pure value objects with no behavior beyond
// parsing and validation of their own values. They are the shared language
// between the URL generator, the HTTP API and the CLI.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No http.Request, no context.Context in struct fields
//   - JSON tags are allowed (they're metadata, not behavior)
//   - Validation methods are allowed (they're pure functions on the type)
//   - Constants and enums belong here
package domain
