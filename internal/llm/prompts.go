package llm

import (
	"fmt"
	"strings"
)

const matchSystemPrompt = `You are a technical recruiter evaluating how well a candidate fits a job requirement.
Respond with a single JSON object and nothing else. The object must have exactly these fields:
{
  "overallScore": <integer 0-100>,
  "subScores": {"skills": <0-100>, "experience": <0-100>, "education": <0-100>, "keywords": <0-100>},
  "strengths": [<strings>],
  "weaknesses": [<strings>],
  "recommendations": [<strings>],
  "reasoning": [<strings>]
}
Base every judgement only on the supplied texts. Do not invent facts about the candidate.`

// BuildMatchMessages renders the chat turns for a candidate match analysis.
func BuildMatchMessages(input AnalyzeInput) []Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Job requirement: %s\n", input.RequirementTitle)
	if input.RequirementDescription != "" {
		fmt.Fprintf(&b, "Description:\n%s\n", input.RequirementDescription)
	}
	if len(input.RequiredSkills) > 0 {
		fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(input.RequiredSkills, ", "))
	}
	if input.ExperienceMin > 0 || input.ExperienceMax > 0 {
		fmt.Fprintf(&b, "Experience range: %d-%d years\n", input.ExperienceMin, input.ExperienceMax)
	}
	b.WriteString("\nCandidate:\n")
	b.WriteString(input.CandidateText)

	return []Message{
		{Role: "system", Content: matchSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// BuildFixMessages asks the model to repair output that failed JSON parsing.
// One repair round-trip is cheaper than a full re-analysis.
func BuildFixMessages(raw []byte) []Message {
	return []Message{
		{Role: "system", Content: "The following text was supposed to be a single valid JSON object but is malformed. Return the corrected JSON object and nothing else. Preserve all values."},
		{Role: "user", Content: string(raw)},
	}
}
