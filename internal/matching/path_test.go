package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pattern    string
		path       string
		wantScore  int
		wantParams Params
	}{
		{name: "exact", pattern: "/api/radars", path: "/api/radars", wantScore: ScorePathExact, wantParams: Params{}},
		{name: "exact with trailing slash", pattern: "/api/radars", path: "/api/radars/", wantScore: ScorePathExact, wantParams: Params{}},
		{name: "colon param", pattern: "/api/radars/:id", path: "/api/radars/CAM001", wantScore: ScorePathNamedParams + 2*ScoreLiteralSegment, wantParams: Params{"id": "CAM001"}},
		{name: "brace param", pattern: "/api/users/{id}", path: "/api/users/7", wantScore: ScorePathNamedParams + 2*ScoreLiteralSegment, wantParams: Params{"id": "7"}},
		{name: "segment count differs", pattern: "/api/radars/:id", path: "/api/radars", wantScore: 0},
		{name: "too many segments", pattern: "/api/radars/:id", path: "/api/radars/CAM001/x", wantScore: 0},
		{name: "literal mismatch", pattern: "/api/radars/:id", path: "/api/users/1", wantScore: 0},
		{name: "empty segment is not captured", pattern: "/api/:a/x", path: "/api//x", wantScore: 0},
		{name: "wildcard", pattern: "/api/*", path: "/api/radars/CAM001", wantScore: ScorePathWildcard + ScoreLiteralSegment, wantParams: Params{"*": "radars/CAM001"}},
		{name: "wildcard empty rest", pattern: "/api/*", path: "/api", wantScore: ScorePathWildcard + ScoreLiteralSegment, wantParams: Params{"*": ""}},
		{name: "root", pattern: "/", path: "/", wantScore: ScorePathExact, wantParams: Params{}},
		{name: "pattern text is not a path", pattern: "/api/radars/:id", path: "/api/radars/:id", wantScore: ScorePathNamedParams + 2*ScoreLiteralSegment, wantParams: Params{"id": ":id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, params := MatchPath(tt.pattern, tt.path)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}

func TestMatchPath_LiteralBeatsPlaceholder(t *testing.T) {
	t.Parallel()

	exact, _ := MatchPath("/api/registers/export", "/api/registers/export")
	param, _ := MatchPath("/api/registers/:id", "/api/registers/export")
	assert.Greater(t, exact, param)

	moreLiteral, _ := MatchPath("/api/:kind/latest", "/api/registers/latest")
	fewerLiteral, _ := MatchPath("/api/:kind/:id", "/api/registers/latest")
	assert.Greater(t, moreLiteral, fewerLiteral)

	wild, _ := MatchPath("/api/*", "/api/registers/latest")
	assert.Greater(t, fewerLiteral, wild)
}

func TestValidatePattern(t *testing.T) {
	t.Parallel()

	valid := []string{"/", "/api/radars", "/api/radars/:id", "/api/users/{id}", "/api/*", "/a/:x/b/:y"}
	for _, p := range valid {
		assert.NoError(t, ValidatePattern(p), p)
	}

	invalid := []string{"api/radars", "/api/:", "/api/{}", "/a/:id/b/:id", "/api/*/x", "/api/ra:dar", "/api/{id"}
	for _, p := range invalid {
		assert.Error(t, ValidatePattern(p), p)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/api/radars", Join("api", "/radars"))
	assert.Equal(t, "/api/radars/:id", Join("/api/", "radars/:id"))
	assert.Equal(t, "/radars", Join("", "/radars"))
	assert.Equal(t, "/api", Join("/api", "/"))
	assert.Equal(t, "/", Join("", ""))
}
