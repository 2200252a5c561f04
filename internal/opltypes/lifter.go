package opltypes

// Lifter is a single row of lifters.csv: the identity data shared across
// all of a person's entries.
type Lifter struct {
	ID LifterID

	Username string
	Name     string

	// CyrillicName, GreekName, JapaneseName, and KoreanName hold a
	// localized spelling of Name when the lifter's home federation
	// reports one; each is empty when not applicable. KoreanName has no
	// corresponding WritingSystem value (Hangul codepoint detection is
	// out of scope per the corpus this was ported from) and is carried
	// as a plain display field only.
	CyrillicName string
	GreekName    string
	JapaneseName string
	KoreanName   string

	Instagram  string
	Vkontakte  string
	Color      string // CSS hex color, e.g. "#ff0000"; empty if unset.
	Flair      string
}

// LocalizedName returns the name in the given writing system, falling
// back to Name when no localized spelling was recorded.
func (l *Lifter) LocalizedName(ws WritingSystem) string {
	switch ws {
	case Cyrillic:
		if l.CyrillicName != "" {
			return l.CyrillicName
		}
	case Greek:
		if l.GreekName != "" {
			return l.GreekName
		}
	case Japanese:
		if l.JapaneseName != "" {
			return l.JapaneseName
		}
	}
	return l.Name
}
