package filter

import "fmt"

// SegmentKind tells the renderer how to style a segment
type SegmentKind int

const (
	SegmentTitle SegmentKind = iota // Highlighted application name
	SegmentText                     // Plain text
	SegmentLabel                    // Field label preceding a value
	SegmentMuted                    // De-emphasized value
)

// Segment is one piece of the detail view
type Segment struct {
	Kind SegmentKind
	Text string
}

// Verbosity levels at which extra detail appears
const (
	VerboseExec  = 1
	VerboseStats = 2
)

// Detail projects the selected application at the current verbosity.
// It returns nil when nothing is selected.
func (s *State) Detail() []Segment {
	return Project(s)
}

// Project builds the detail segments for the selected application of s
func Project(s *State) []Segment {
	sel, ok := s.Selected()
	if !ok {
		return nil
	}
	item := sel.Item

	segments := []Segment{
		{Kind: SegmentTitle, Text: item.Name},
		{Kind: SegmentText, Text: item.Description},
	}

	if s.verbose >= VerboseExec {
		label := "Exec: "
		if item.Terminal {
			label = "Exec (terminal): "
		}
		segments = append(segments,
			Segment{Kind: SegmentLabel, Text: label},
			Segment{Kind: SegmentMuted, Text: item.Exec},
		)
	}

	if s.verbose >= VerboseStats {
		segments = append(segments,
			Segment{Kind: SegmentText, Text: fmt.Sprintf("Times run: %d", item.RunCount)},
			Segment{Kind: SegmentText, Text: fmt.Sprintf("Matching score: %d", sel.Score)},
		)
	}

	return segments
}
