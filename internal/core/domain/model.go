package domain

// Result holds the outcome of a similarity computation.
type Result struct {
	Name string
	// Score is the final similarity score between 0 and 1.
	Score float64
	// Passed indicates whether Score meets or exceeds the threshold.
	Passed bool
	// ChineseScore is the edit-distance similarity of the Chinese portions.
	ChineseScore float64
	// EnglishScore is the token-alignment similarity of the English portions.
	EnglishScore float64
	// ChineseWeight is the larger Chinese character count of the pair.
	ChineseWeight int
	// EnglishWeight is the larger English token count of the pair.
	EnglishWeight int
	// Threshold used to determine pass/fail.
	Threshold float64
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}
