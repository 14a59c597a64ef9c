package extractor

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Phone patterns, most specific first: international with country code,
// 5+5 split national, then a bare 10-digit run.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{1,3}[-\s]?\d{10}`),
	regexp.MustCompile(`\d{5}[-\s]\d{5}`),
	regexp.MustCompile(`\d{10}`),
}

// skillVocabulary is the fixed keyword list resumes are matched against.
// Matching is case-insensitive containment; order here fixes the order of
// the extracted skills.
var skillVocabulary = []string{
	"python", "javascript", "typescript", "java", "golang", "c++", "c#",
	"ruby", "php", "swift", "kotlin", "rust",
	"react", "angular", "vue", "nextjs", "node", "express", "nestjs",
	"django", "flask", "fastapi", "spring boot",
	"html", "css", "bootstrap", "tailwind", "redux",
	"sql", "mysql", "postgresql", "mongodb", "redis", "kafka", "spark", "hadoop",
	"tensorflow", "pytorch", "scikit-learn", "keras", "opencv", "pandas", "numpy",
	"machine learning", "deep learning", "nlp", "llm", "langchain",
	"rag", "semantic search", "hugging face", "faiss",
	"git", "github", "docker", "kubernetes", "aws", "azure", "gcp",
	"api", "rest", "graphql", "grpc",
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			match = strings.ReplaceAll(match, " ", "")
			return strings.ReplaceAll(match, "-", "")
		}
	}
	return ""
}

func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, titleCase(skill))
		}
	}
	return found
}

// extractName takes the first of the leading lines that looks like a person's
// name: short, non-empty and not an email address. Resumes almost always lead
// with the candidate's name as a heading.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") {
			continue
		}
		if len(strings.Fields(line)) <= 4 {
			return line
		}
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 && word[0] >= 'a' && word[0] <= 'z' {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
