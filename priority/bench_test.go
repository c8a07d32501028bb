package priority_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/shelternet/priority"
)

// BenchmarkContains_LongText searches a keyword near the end of a long complaint.
func BenchmarkContains_LongText(b *testing.B) {
	text := strings.Repeat("no shelter tonight ", 200) + "emergency"
	p := priority.Compile("emergency")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.In(text)
	}
}

// BenchmarkScore measures a full rule-table evaluation.
func BenchmarkScore(b *testing.B) {
	a := priority.Attributes{Age: 70, Gender: "Female", MedicalNeed: true, Complaint: "Emergency medical case, child in danger"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = priority.Score(a)
	}
}
