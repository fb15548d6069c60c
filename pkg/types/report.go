// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AnomalyKind classifies a non-fatal ingestion issue.
type AnomalyKind string

const (
	// AnomalyExtraction records a document whose text could not be obtained.
	AnomalyExtraction AnomalyKind = "extraction_error"

	// AnomalyCoercion records a field value that failed type coercion. For
	// non-identifier fields the field is dropped; for the identifier the
	// whole record is discarded.
	AnomalyCoercion AnomalyKind = "coercion_error"

	// AnomalySegmentation records a block with no resolvable identifier.
	AnomalySegmentation AnomalyKind = "segmentation_anomaly"

	// AnomalyMergeConflict records divergent field values for the same
	// identifier across documents; the later document's value wins.
	AnomalyMergeConflict AnomalyKind = "merge_conflict"
)

// Anomaly is one recorded ingestion issue with enough context to locate it.
type Anomaly struct {
	Kind     AnomalyKind `json:"kind" yaml:"kind"`
	Document string      `json:"document" yaml:"document"`
	GUID     string      `json:"guid,omitempty" yaml:"guid,omitempty"`
	Field    string      `json:"field,omitempty" yaml:"field,omitempty"`
	Detail   string      `json:"detail" yaml:"detail"`
}

// DocumentReport summarizes ingestion of a single document.
type DocumentReport struct {
	Document string `json:"document" yaml:"document"`
	Blocks   int    `json:"blocks" yaml:"blocks"`
	Stored   int    `json:"stored" yaml:"stored"`
	Failed   bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// maxAnomalySamples caps the samples kept in a report; counts keep growing
// past the cap.
const maxAnomalySamples = 50

// BuildReport accumulates every anomaly from one ingestion run so a single
// build surfaces all issues at once instead of aborting on the first.
type BuildReport struct {
	Documents []DocumentReport    `json:"documents" yaml:"documents"`
	Counts    map[AnomalyKind]int `json:"anomaly_counts" yaml:"anomaly_counts"`
	Samples   []Anomaly           `json:"anomaly_samples,omitempty" yaml:"anomaly_samples,omitempty"`
}

// NewBuildReport returns an empty report ready to record anomalies.
func NewBuildReport() *BuildReport {
	return &BuildReport{Counts: make(map[AnomalyKind]int)}
}

// Record counts the anomaly and keeps it as a sample while under the cap.
func (r *BuildReport) Record(a Anomaly) {
	r.Counts[a.Kind]++
	if len(r.Samples) < maxAnomalySamples {
		r.Samples = append(r.Samples, a)
	}
}

// AddDocument appends a per-document summary.
func (r *BuildReport) AddDocument(d DocumentReport) {
	r.Documents = append(r.Documents, d)
}

// TotalAnomalies returns the count across all kinds.
func (r *BuildReport) TotalAnomalies() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// ExtractionFailed reports whether any document failed text extraction,
// which makes the overall build a partial failure.
func (r *BuildReport) ExtractionFailed() bool {
	return r.Counts[AnomalyExtraction] > 0
}
