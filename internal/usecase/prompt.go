package usecase

import "fmt"

func analysisSystemPrompt() string {
	return `You are an expert resume analyzer. Analyze the provided resume and extract:
1. Skills (as an array of strings)
2. Professional summary (concise, 2-3 sentences)
3. Experience highlights (key achievements, 2-3 sentences)
4. Education summary (degrees and institutions, 1-2 sentences)
5. Resume score (0-100, based on completeness, clarity, and formatting)
6. Improvement suggestions (specific, actionable advice, 3-4 points)

Return your analysis as a JSON object with these exact keys: skills, summary, experience, education, score, improvements.
The improvements should be a single string with line breaks between points.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`
}

func analysisUserContent(resumeText string) string {
	return fmt.Sprintf("Analyze this resume:\n\n%s", resumeText)
}

func matchSystemPrompt() string {
	return `You are an expert at matching resumes to job descriptions. Compare the resume against the job description and provide:
1. Match percentage (0-100, how well the resume matches the job requirements)
2. Missing skills (array of skills mentioned in the job description but not in the resume)
3. Suggestions (specific recommendations to improve the match, 3-5 actionable points)

Return your analysis as a JSON object with these exact keys: matchPercentage, missingSkills, suggestions.
The suggestions should be a single string with line breaks between points.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`
}

func matchUserContent(resumeText, jobDescription string) string {
	return fmt.Sprintf("Resume:\n\n%s\n\n---\n\nJob Description:\n\n%s", resumeText, jobDescription)
}
