package priority

import "strings"

// rule is one additive term of the score. lower is the lowercased complaint.
type rule struct {
	name    string
	points  int
	applies func(a Attributes, lower string) bool
}

// keyword builds a rule that fires when the complaint contains word.
func keyword(word string, points int) rule {
	p := Compile(word)

	return rule{
		name:    "keyword:" + word,
		points:  points,
		applies: func(_ Attributes, lower string) bool { return p.In(lower) },
	}
}

// rules is evaluated in order; age bands are mutually exclusive.
var rules = []rule{
	{name: "age<12", points: 50, applies: func(a Attributes, _ string) bool { return a.Age < 12 }},
	{name: "age>65", points: 40, applies: func(a Attributes, _ string) bool { return a.Age > 65 }},
	{name: "age>55", points: 20, applies: func(a Attributes, _ string) bool { return a.Age > 55 && a.Age <= 65 }},
	{name: "gender:female", points: 30, applies: func(a Attributes, _ string) bool {
		return strings.EqualFold(strings.TrimSpace(a.Gender), "female")
	}},
	{name: "medical-need", points: 60, applies: func(a Attributes, _ string) bool { return a.MedicalNeed }},
	keyword("emergency", 70),
	keyword("critical", 60),
	keyword("medical", 50),
	keyword("child", 40),
	keyword("urgent", 45),
	keyword("danger", 55),
}

// Breakdown lists every rule that fires for a, in evaluation order.
func Breakdown(a Attributes) []Match {
	lower := strings.ToLower(a.Complaint)
	var out []Match
	for _, r := range rules {
		if r.applies(a, lower) {
			out = append(out, Match{Rule: r.name, Points: r.points})
		}
	}

	return out
}

// Score returns the urgency score of a: the sum of all fired rule points.
// It is pure and never negative.
func Score(a Attributes) int {
	total := 0
	for _, m := range Breakdown(a) {
		total += m.Points
	}

	return total
}
