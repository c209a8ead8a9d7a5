// Package envelope recognizes the e-mail and Usenet noise that surrounds
// recipes in harvested archives: message headers, MIME multipart boundaries,
// mailing-list dividers, and fixed-width horizontal rules.
//
// IsGroupBreak is a pure function. Classifier carries the per-document state
// (the active MIME boundary token and the header block of the current
// message); create one Classifier per document and never share it.
package envelope
