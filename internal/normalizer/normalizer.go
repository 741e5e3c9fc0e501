package normalizer

import (
	"strings"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/apperror"
	"github.com/tidwall/gjson"
)

// Analysis is the stage-1 projection of the model's reply.
type Analysis struct {
	Skills       []string `json:"skills"`
	Summary      string   `json:"summary"`
	Experience   string   `json:"experience"`
	Education    string   `json:"education"`
	Score        int      `json:"score"`
	Improvements string   `json:"improvements"`
}

// JobMatch is the stage-2 projection of the model's reply.
type JobMatch struct {
	MatchPercentage int      `json:"matchPercentage"`
	MissingSkills   []string `json:"missingSkills"`
	Suggestions     string   `json:"suggestions"`
}

// CleanJSON strips markdown code fences some models wrap around their reply.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// NormalizeAnalysis projects the raw model reply onto the analysis schema.
// Missing or wrong-shaped fields default per field; a reply that is not JSON
// at all is a hard error.
func NormalizeAnalysis(raw string) (*Analysis, error) {
	text := CleanJSON(raw)
	if !gjson.Valid(text) {
		return nil, apperror.New(apperror.MalformedModelOutput, "model reply is not valid JSON")
	}

	return &Analysis{
		Skills:       stringSlice(gjson.Get(text, "skills")),
		Summary:      gjson.Get(text, "summary").String(),
		Experience:   gjson.Get(text, "experience").String(),
		Education:    gjson.Get(text, "education").String(),
		Score:        int(gjson.Get(text, "score").Int()),
		Improvements: gjson.Get(text, "improvements").String(),
	}, nil
}

// NormalizeJobMatch projects the raw model reply onto the job-match schema.
func NormalizeJobMatch(raw string) (*JobMatch, error) {
	text := CleanJSON(raw)
	if !gjson.Valid(text) {
		return nil, apperror.New(apperror.MalformedModelOutput, "model reply is not valid JSON")
	}

	return &JobMatch{
		MatchPercentage: int(gjson.Get(text, "matchPercentage").Int()),
		MissingSkills:   stringSlice(gjson.Get(text, "missingSkills")),
		Suggestions:     gjson.Get(text, "suggestions").String(),
	}, nil
}

// stringSlice coerces a JSON value to a string slice, skipping non-string
// members. Anything that is not an array becomes an empty slice.
func stringSlice(value gjson.Result) []string {
	out := []string{}
	if !value.IsArray() {
		return out
	}
	for _, item := range value.Array() {
		if item.Type == gjson.String {
			out = append(out, item.String())
		}
	}
	return out
}
