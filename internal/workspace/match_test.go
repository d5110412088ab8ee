package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveName_Exact(t *testing.T) {
	name, _, outcome := resolveName([]string{"my-app", "my-lib"}, "my-app")
	assert.Equal(t, MatchFound, outcome)
	assert.Equal(t, "my-app", name)
}

func TestResolveName_CaseInsensitive(t *testing.T) {
	name, _, outcome := resolveName([]string{"my-app", "my-lib"}, "My-App")
	assert.Equal(t, MatchFound, outcome)
	assert.Equal(t, "my-app", name)
}

func TestResolveName_UniqueSubstring(t *testing.T) {
	name, _, outcome := resolveName([]string{"my-app", "gateway"}, "app")
	assert.Equal(t, MatchFound, outcome)
	assert.Equal(t, "my-app", name)
}

func TestResolveName_AmbiguousSubstring(t *testing.T) {
	_, candidates, outcome := resolveName([]string{"my-app", "my-lib"}, "my")
	assert.Equal(t, MatchAmbiguous, outcome)
	assert.Equal(t, []string{"my-app", "my-lib"}, candidates)
}

func TestResolveName_ExactBeatsSubstring(t *testing.T) {
	// "app" is both an exact candidate and a substring of "app-server";
	// the exact tier must short-circuit before the substring tier can
	// declare ambiguity.
	name, _, outcome := resolveName([]string{"app", "app-server"}, "app")
	assert.Equal(t, MatchFound, outcome)
	assert.Equal(t, "app", name)
}

func TestResolveName_NoMatch(t *testing.T) {
	_, _, outcome := resolveName([]string{"my-app"}, "gateway")
	assert.Equal(t, MatchNone, outcome)
}

func TestPick_NotFoundListsAvailable(t *testing.T) {
	_, err := pick("project", []string{"b-proj", "a-proj"}, "zzz")
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"a-proj", "b-proj"}, nf.Available)
	assert.Contains(t, err.Error(), "project 'zzz' not found")
	assert.Contains(t, err.Error(), "a-proj, b-proj")
}

func TestPick_AmbiguousListsCandidates(t *testing.T) {
	_, err := pick("project", []string{"my-app", "my-lib"}, "my")
	require.Error(t, err)

	var amb *AmbiguousError
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, []string{"my-app", "my-lib"}, amb.Candidates)
	assert.Contains(t, err.Error(), "Did you mean one of")
}
