// Package view holds the on-screen state of a phishcheck session and the
// pure functions that transform it.
//
// A session cycles through two mutually exclusive sections: "home", where a
// URL is entered, and "result", where the verdict and its follow-up actions
// are shown. The blocked-sites overlay is toggled independently and may be
// open over either section.
//
// Design decision: State is a plain value and every transition returns a
// new State instead of mutating shared UI objects. Rendering a verdict can
// therefore be tested without a terminal, and the adapters in package report
// only paint whatever State they are given.
package view
