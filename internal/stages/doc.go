// Package stages implements the four pipeline stage handlers.
//
// Import reads a document's lines, envelope splits them into recipe chunks,
// decode turns each chunk into a normalized recipe, and encode writes the
// document's recipes in every configured export format. Each handler owns
// no per-document state: everything a document needs travels on its
// queue.Job, so one handler value serves all workers of its stage.
package stages

// Stage names used in logs, metrics, and errors.
const (
	NameImport   = "import"
	NameEnvelope = "envelope"
	NameDecode   = "decode"
	NameEncode   = "encode"
)
