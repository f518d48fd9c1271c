// Package model defines the core data structures used throughout phishcheck.
//
// This package contains the following main types:
//   - Verdict: The classifier's judgment on a URL with its supporting reasons
//   - FeedbackRecord: A user's correctness rating for a verdict
//   - FeedbackSummary: Vote counts the server keeps for a URL
//   - BlockAck / BlockMessage: Acknowledgements of the two block endpoints
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The client, view, report and controller packages all need
// these types, so centralizing them prevents import cycles.
//
// The models mirror the wire format of the classification service and are
// serializable to JSON for report output.
package model
