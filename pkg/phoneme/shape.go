package phoneme

import "fmt"

// Shape is a closed enumeration of the syllable templates used by the
// experiment. The first eight are monosyllable templates (open and
// closed variants of the four onset families); the last four tag
// disyllables built from them.
type Shape int

const (
	CV Shape = iota
	CVC
	CwV
	CwVC
	NCV
	NCVC
	CNV
	CNVC
	CVCVC
	CwVCVC
	NCVCVC
	CNVCVC
)

var shapeNames = [...]string{
	CV:     "CV",
	CVC:    "CVC",
	CwV:    "CwV",
	CwVC:   "CwVC",
	NCV:    "NCV",
	NCVC:   "NCVC",
	CNV:    "CNV",
	CNVC:   "CNVC",
	CVCVC:  "CVCVC",
	CwVCVC: "CwVCVC",
	NCVCVC: "NCVCVC",
	CNVCVC: "CNVCVC",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Disyllabic reports whether the shape tags a two-syllable form.
func (s Shape) Disyllabic() bool {
	switch s {
	case CVCVC, CwVCVC, NCVCVC, CNVCVC:
		return true
	}
	return false
}

// ParseShape maps a shape tag as it appears in the tables back to the
// enumeration. Unknown tags indicate a malformed table.
func ParseShape(tag string) (Shape, error) {
	for s, name := range shapeNames {
		if name == tag {
			return Shape(s), nil
		}
	}
	return 0, fmt.Errorf("unknown shape tag %q", tag)
}
