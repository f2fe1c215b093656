package analysis

import "strings"

// Language is the programming language of a submitted snippet.
type Language string

const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Python     Language = "python"
	Java       Language = "java"
	CSharp     Language = "csharp"
	Go         Language = "go"
	Rust       Language = "rust"
	Cpp        Language = "cpp"
	Ruby       Language = "ruby"
	PHP        Language = "php"
	Other      Language = "other"
)

// Languages lists every accepted language in display order.
var Languages = []Language{JavaScript, TypeScript, Python, Java, CSharp, Go, Rust, Cpp, Ruby, PHP, Other}

// ParseLanguage validates s. An empty string means Other.
func ParseLanguage(s string) (Language, error) {
	if s == "" {
		return Other, nil
	}
	for _, l := range Languages {
		if Language(s) == l {
			return l, nil
		}
	}
	return "", &ValidationError{Message: "Invalid language. Must be one of: " + languageList()}
}

func languageList() string {
	names := make([]string, len(Languages))
	for i, l := range Languages {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
