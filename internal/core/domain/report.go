package domain

import "go.trai.ch/embedstr"

// FileReport holds the token statistics of a single scanned file.
type FileReport struct {
	Path          string `json:"path"`
	Tokens        int    `json:"tokens"`
	Embedded      int    `json:"embedded"`
	Boxed         int    `json:"boxed"`
	EmbeddedBytes int    `json:"embeddedBytes"`
	BoxedBytes    int    `json:"boxedBytes"`
}

// Count records one token in the report.
func (f *FileReport) Count(s *embedstr.EmbeddedString) {
	f.Tokens++
	switch s.Mode() {
	case embedstr.Embedded:
		f.Embedded++
		f.EmbeddedBytes += s.Len()
	case embedstr.Boxed:
		f.Boxed++
		f.BoxedBytes += s.Len()
	}
}

// Report aggregates the statistics of a whole scan.
type Report struct {
	Files         []FileReport `json:"files"`
	Tokens        int          `json:"tokens"`
	Embedded      int          `json:"embedded"`
	Boxed         int          `json:"boxed"`
	Distinct      int          `json:"distinct"`
	EmbeddedBytes int          `json:"embeddedBytes"`
	BoxedBytes    int          `json:"boxedBytes"`
	Limit         int          `json:"limit"`
}

// NewReport creates an empty Report for the current embedding limit.
func NewReport() *Report {
	return &Report{Limit: embedstr.EmbedLimit}
}

// Add folds a file report into the totals.
func (r *Report) Add(f FileReport) {
	r.Files = append(r.Files, f)
	r.Tokens += f.Tokens
	r.Embedded += f.Embedded
	r.Boxed += f.Boxed
	r.EmbeddedBytes += f.EmbeddedBytes
	r.BoxedBytes += f.BoxedBytes
}

// EmbeddedRatio returns the fraction of tokens stored inline, or 0 for an empty report.
func (r *Report) EmbeddedRatio() float64 {
	if r.Tokens == 0 {
		return 0
	}
	return float64(r.Embedded) / float64(r.Tokens)
}
