// Package afdetect implements an online detector of atrial fibrillation
// (AF) episodes from a stream of RR-intervals (the time deltas between
// successive QRS complexes in an electrocardiogram).
//
// Given a sequence of positive-integer RR values, Detector produces,
// sample for sample, a binary AF/not-AF label suitable for real-time use
// on a constrained device and for batch evaluation against ground-truth
// annotations.
//
// # Pipeline
//
// Each call to Detector.Step runs one RR interval through a fixed
// five-stage pipeline and a sliding-window entropy estimator:
//
//  1. a 17-tap running median filter,
//  2. a length-16 low-reference integrator,
//  3. a length-96 cascaded high-reference integrator,
//  4. a symbolic coder mapping delta-RR to one of ten symbols,
//  5. a three-symbol word encoder, and
//  6. a 127-word sliding-window Shannon-entropy estimator.
//
// The resulting entropy estimate is compared against a threshold
// (default 0.353) to produce the AF prediction.
//
// # Scope
//
// Reading RR intervals and ground-truth rhythm annotations from a record
// source (e.g. MIT-BIH, AFDB, LTAFDB) is out of scope for this package;
// see the record subpackage for the collaborator interfaces a caller
// implements to drive a Detector from a real annotation source.
package afdetect
