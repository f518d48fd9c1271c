// Package controller drives a phishcheck session: it submits URLs for
// classification, renders verdicts, and carries out the follow-up actions
// (block, navigate, feedback, list blocked sites).
//
// The Controller owns one view.State and applies the pure transitions of
// package view to it. Network calls are delegated to a Service, the
// client-side block list to a BlockCache, user notifications to a Notifier
// and navigation to a Navigator, so every collaborator can be replaced in
// tests.
//
// Design decision: Classification requests are tagged with a sequence
// number. When a newer request has been submitted before an older one
// answers, the older verdict is dropped (last request wins). This keeps a
// slow response from overwriting the verdict the user is looking at, while
// never making the user wait for or cancel an in-flight request.
//
// The block action always returns the view to the home section and clears
// the input, whether or not the block succeeded.
package controller
