package insight

import "fmt"

const (
	analysisResumeLimit = 3000
	analysisJobLimit    = 2000

	questionsResumeLimit = 2000
	questionsJobLimit    = 1500
)

// truncateRunes cuts s to at most limit runes. Inputs can be arbitrary
// extracted document text, so slicing must stay rune-safe.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func analysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert AI career advisor and resume analyst. Analyze the following resume against the job description and provide a comprehensive evaluation.

**RESUME:**
%s

**JOB DESCRIPTION:**
%s

Please provide your analysis in the following JSON format (respond ONLY with valid JSON, no additional text):

{
  "fit_score": <number between 0-100>,
  "summary": "<brief 2-3 sentence overall assessment>",
  "strengths": ["<strength 1>", "<strength 2>", "<strength 3>"],
  "weaknesses": ["<weakness 1>", "<weakness 2>", "<weakness 3>"],
  "matched_skills": ["<skill 1>", "<skill 2>", "<skill 3>"],
  "missing_skills": ["<skill 1>", "<skill 2>", "<skill 3>"],
  "suggestions": ["<actionable suggestion 1>", "<actionable suggestion 2>", "<actionable suggestion 3>"],
  "improvement_areas": [
    {"area": "<area name>", "description": "<how to improve>", "priority": "<high|medium|low>"}
  ],
  "recommendation": "<apply|apply_with_preparation|upskill_first|not_recommended>"
}

Focus on:
1. Technical skills match
2. Experience level alignment
3. Industry relevance
4. Cultural fit indicators
5. Career progression alignment`,
		truncateRunes(resumeText, analysisResumeLimit),
		truncateRunes(jobDescription, analysisJobLimit),
	)
}

func questionsPrompt(resumeText, jobDescription string, numQuestions int) string {
	return fmt.Sprintf(`Based on this resume and job description, generate %d insightful interview questions.

**RESUME:**
%s

**JOB DESCRIPTION:**
%s

Generate questions that:
1. Test technical skills mentioned in the resume
2. Explore experience relevant to the job
3. Assess problem-solving abilities
4. Evaluate cultural fit

Format as JSON array:
["Question 1", "Question 2", ...]`,
		numQuestions,
		truncateRunes(resumeText, questionsResumeLimit),
		truncateRunes(jobDescription, questionsJobLimit),
	)
}
