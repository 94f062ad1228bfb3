// Package corpus aligns two independently organized directory trees, one of
// audio recordings and one of reference transcripts, into matched record
// pairs and scores each pair's automatic transcription against its reference.
//
// The hierarchy is Corpus, Session, Participant, Record, mirroring the
// <root>/<session>/<participant>/<item> layout shared by both trees. Matching
// is purely by path-component name equality: a name must exist on both sides
// to produce a child, one-sided names are silently dropped, hidden entries
// never match, and every level sorts its intersection so discovery is
// deterministic. Each level computes its children once on first access and
// caches them for the object's lifetime; construct a new object to force
// rediscovery.
//
// Scoring collaborators (transcription engine, document extractor, metric)
// are interface-typed parameters passed at call time, keeping the pure
// path/set discovery separate from the I/O- and model-bound scoring.
package corpus
