package stats

// Config holds the presentation settings shared by every card in a dataset.
type Config struct {
	// CombinedStates lists states reporting race and ethnicity combined.
	CombinedStates []string   `json:"combinedStates" validate:"dive,len=2,uppercase"`
	Styles         StyleTable `json:"styles"`
}

// DefaultStyles are the bar classes of the social card stylesheet.
var DefaultStyles = StyleTable{
	Black:  "barBlack",
	LatinX: "barLatinx",
	Asian:  "barAsian",
	Aian:   "barAian",
	White:  "barWhite",
	Api:    "barAPi",
	Nhpi:   "barNhpi",
}

func DefaultConfig() Config {
	return Config{Styles: DefaultStyles}
}

// Combined returns the combined reporting states as a set.
func (c Config) Combined() CombinedStates {
	return NewCombinedStates(c.CombinedStates...)
}

// Builder returns a group builder for c's styles, falling back to
// DefaultStyles for groups without one.
func (c Config) Builder() *Builder {
	styles := make(StyleTable, len(AllGroups))
	for _, k := range AllGroups {
		if s, ok := c.Styles[k]; ok {
			styles[k] = s
		} else {
			styles[k] = DefaultStyles[k]
		}
	}
	return NewBuilder(styles)
}
