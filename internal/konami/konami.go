// Package konami watches a stream of key codes for the Konami sequence.
package konami

import "slices"

// Sequence is ↑ ↑ ↓ ↓ ← → ← → B A as KeyboardEvent.code values.
var Sequence = []string{
	"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight",
	"KeyB", "KeyA",
}

// Message is shown when the sequence completes.
const Message = "🎉 Konami Code activated! You found the easter egg!"

// Detector keeps only the most recent len(sequence) codes. One Detector
// belongs to one visitor session; it is not safe for concurrent use.
type Detector struct {
	sequence []string
	buf      []string
}

func NewDetector() *Detector {
	return NewDetectorFor(Sequence)
}

// NewDetectorFor watches for an arbitrary sequence.
func NewDetectorFor(seq []string) *Detector {
	return &Detector{
		sequence: slices.Clone(seq),
		buf:      make([]string, 0, len(seq)),
	}
}

// Push records code and reports whether the last codes now spell the
// sequence. The buffer is not cleared on a match, so the sequence must be
// typed again in full to fire twice.
func (d *Detector) Push(code string) bool {
	if len(d.sequence) == 0 {
		return false
	}
	if len(d.buf) == len(d.sequence) {
		copy(d.buf, d.buf[1:])
		d.buf = d.buf[:len(d.buf)-1]
	}
	d.buf = append(d.buf, code)
	return slices.Equal(d.buf, d.sequence)
}

// Reset forgets every recorded code.
func (d *Detector) Reset() {
	d.buf = d.buf[:0]
}
