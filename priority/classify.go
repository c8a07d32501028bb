package priority

import "strings"

// categoryKeywords maps each category to its trigger words, in reporting order.
var categoryKeywords = []struct {
	category Category
	patterns []Pattern
}{
	{CategoryFood, compileAll("food", "hungry", "meal", "eat")},
	{CategoryMedical, compileAll("medical", "sick", "medicine", "health", "doctor")},
	{CategorySafety, compileAll("safe", "danger", "threat", "attack")},
	{CategoryShelter, compileAll("shelter", "bed", "sleep", "stay")},
}

func compileAll(words ...string) []Pattern {
	out := make([]Pattern, len(words))
	for i, w := range words {
		out[i] = Compile(w)
	}

	return out
}

// Categories returns every category whose keywords occur in complaint,
// case-insensitively and in reporting order. It returns nil when none match.
func Categories(complaint string) []Category {
	lower := strings.ToLower(complaint)
	var out []Category
	for _, ck := range categoryKeywords {
		for _, p := range ck.patterns {
			if p.In(lower) {
				out = append(out, ck.category)
				break
			}
		}
	}

	return out
}

// Classify renders Categories as a ", "-joined label, or "General" when
// nothing matches. The label does not affect the score.
func Classify(complaint string) string {
	cats := Categories(complaint)
	if len(cats) == 0 {
		return string(CategoryGeneral)
	}
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}

	return strings.Join(parts, ", ")
}
