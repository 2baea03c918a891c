// Package record models the collaborator interfaces the core detector
// needs from an ECG record repository (MIT-BIH, AFDB, LTAFDB and similar
// annotated databases) and drives a Detector from them. Reading records
// and annotations from an actual repository, restart logic for an
// embedded host, plotting, and CSV/text export are not implemented here;
// only the interfaces and the per-record/per-run loops that consume them
// live in this package.
package record

import "errors"

// QRS and Rhythm are the two annotation kinds a Source produces. Rhythm
// annotations carry an auxiliary string; QRS annotations mark a beat.
const (
	QRS = iota
	Rhythm
)

// Annotation is one (time, annotation-code, aux-string) tuple as read
// from an external annotation source.
type Annotation struct {
	// Time is a sample-clock tick in the source's own annotation-clock
	// frequency (see Source.AnnotationFreq), not necessarily the
	// detector's sampling rate.
	Time int64
	Code int
	Aux  string
}

// ErrEmptyRecord is returned by Driver.Run when a record yields no RR
// intervals at all.
var ErrEmptyRecord = errors.New("record: no RR intervals collected")

// Source streams QRS beat annotations and (optionally) rhythm-change
// annotations for one record, in arrival order. NextQRS and NextRhythm
// each return io.EOF once exhausted. A source with no rhythm annotations
// (plain MIT-BIH records have none) may have NextRhythm return io.EOF on
// the very first call; ground truth is then always false.
type Source interface {
	NextQRS() (Annotation, error)
	NextRhythm() (Annotation, error)

	// SampleFreq returns the record's sampling frequency in Hz, or 0 if
	// the source doesn't know it (Config.SPSOverride then applies).
	SampleFreq() float64

	// AnnotationFreq returns the annotation clock's original frequency,
	// or 0 if it matches SampleFreq.
	AnnotationFreq() float64
}
