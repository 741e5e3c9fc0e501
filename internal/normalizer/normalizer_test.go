package normalizer

import (
	"testing"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAnalysisDefaults(t *testing.T) {
	analysis, err := NormalizeAnalysis(`{}`)
	require.NoError(t, err)

	assert.Equal(t, []string{}, analysis.Skills)
	assert.Equal(t, "", analysis.Summary)
	assert.Equal(t, "", analysis.Experience)
	assert.Equal(t, "", analysis.Education)
	assert.Equal(t, "", analysis.Improvements)
	assert.Equal(t, 0, analysis.Score)
}

func TestNormalizeAnalysisPartialReply(t *testing.T) {
	analysis, err := NormalizeAnalysis(`{"skills":["Go","SQL"],"score":72}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "SQL"}, analysis.Skills)
	assert.Equal(t, 72, analysis.Score)
	assert.Equal(t, "", analysis.Summary)
	assert.Equal(t, "", analysis.Experience)
	assert.Equal(t, "", analysis.Education)
	assert.Equal(t, "", analysis.Improvements)
}

func TestNormalizeAnalysisWrongShapes(t *testing.T) {
	analysis, err := NormalizeAnalysis(`{"skills":"Go","score":88}`)
	require.NoError(t, err)
	assert.Equal(t, []string{}, analysis.Skills)

	analysis, err = NormalizeAnalysis(`{"skills":["Go",3,"SQL"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, analysis.Skills)
}

func TestNormalizeAnalysisFencedReply(t *testing.T) {
	raw := "```json\n{\"skills\":[\"Python\"],\"score\":85}\n```"
	analysis, err := NormalizeAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Python"}, analysis.Skills)
	assert.Equal(t, 85, analysis.Score)
}

func TestNormalizeAnalysisMalformed(t *testing.T) {
	_, err := NormalizeAnalysis("I could not produce JSON, sorry!")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.MalformedModelOutput))
}

func TestNormalizeAnalysisOutOfRangeScoreIsKept(t *testing.T) {
	analysis, err := NormalizeAnalysis(`{"score":140}`)
	require.NoError(t, err)
	assert.Equal(t, 140, analysis.Score)
}

func TestNormalizeJobMatchDefaults(t *testing.T) {
	match, err := NormalizeJobMatch(`{}`)
	require.NoError(t, err)

	assert.Equal(t, 0, match.MatchPercentage)
	assert.Equal(t, []string{}, match.MissingSkills)
	assert.Equal(t, "", match.Suggestions)
}

func TestNormalizeJobMatch(t *testing.T) {
	match, err := NormalizeJobMatch(`{"matchPercentage":77,"missingSkills":["Kubernetes"],"suggestions":"Learn Kubernetes"}`)
	require.NoError(t, err)

	assert.Equal(t, 77, match.MatchPercentage)
	assert.Equal(t, []string{"Kubernetes"}, match.MissingSkills)
	assert.Equal(t, "Learn Kubernetes", match.Suggestions)
}

func TestNormalizeJobMatchMalformed(t *testing.T) {
	_, err := NormalizeJobMatch("```json\n{broken")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.MalformedModelOutput))
}

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSON("  {\"a\":1}  "))
}
