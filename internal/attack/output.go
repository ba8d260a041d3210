package attack

// Output quantifies the offense produced by one combo.
type Output struct {
	Strikes       []Shape
	GarbageBlocks int
	ComboType     ComboType
	Description   string
	TotalDamage   int // diagnostic ranking score, not causative
}

// PayloadKind discriminates the two attack unit types.
type PayloadKind string

const (
	PayloadStrike  PayloadKind = "strike"
	PayloadGarbage PayloadKind = "garbage"
)

// PayloadUnit is the atomic attack item handed across to the opponent's
// board. Garbage units always carry Count 1 and a rotator-assigned target
// column so obstruction blocks never stack in one column. Strike units carry
// their footprint; Count is the covered area.
type PayloadUnit struct {
	Kind            PayloadKind
	Count           int
	TargetColumn    int   // garbage only
	Shape           Shape // strike only
	ChainMultiplier int
}
