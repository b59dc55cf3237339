package model

// ContentKind discriminates the four kinds of course content a student can
// complete. It replaces a set of mutually exclusive nullable foreign keys.
type ContentKind string

const (
	ContentMaterial ContentKind = "material"
	ContentRecorded ContentKind = "recorded"
	ContentLive     ContentKind = "live"
	ContentExam     ContentKind = "exam"
)

func (k ContentKind) Valid() bool {
	switch k {
	case ContentMaterial, ContentRecorded, ContentLive, ContentExam:
		return true
	}
	return false
}
