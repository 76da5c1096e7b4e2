// Package search implements the find/replace engine.
//
// The engine computes and tracks an ordered, non-overlapping match set
// against the buffer under a search configuration (case sensitivity,
// whole word, regex, selection-only scope) and exposes circular
// navigation, single replacement, and bulk replacement. The match set
// is recomputed on every buffer mutation, config toggle, and scope
// change; it is never consulted stale.
//
// Selection-only scope freezes the selection range as an anchor when
// the mode is enabled. The anchor persists across searches until the
// mode is toggled off, and is re-derived after a scoped bulk replace so
// repeated scoped operations stay coherent as the buffer mutates.
package search
