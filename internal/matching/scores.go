package matching

// Match score constants for path matching.
// Higher scores indicate more specific matches.
const (
	// ScorePathExact is the score for an exact path match.
	ScorePathExact = 1000

	// ScorePathNamedParams is the base score for a match with placeholders.
	ScorePathNamedParams = 500

	// ScorePathWildcard is the base score for a trailing wildcard match.
	ScorePathWildcard = 100

	// ScoreLiteralSegment is added per literal segment of a non-exact match.
	ScoreLiteralSegment = 10
)
