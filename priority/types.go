package priority

// Attributes are the request fields that feed the score.
type Attributes struct {
	Age         int
	Gender      string
	MedicalNeed bool
	Complaint   string
}

// Match is one scoring rule that fired for a request.
type Match struct {
	// Rule is a short stable name, e.g. "age<12" or "keyword:emergency".
	Rule   string
	Points int
}

// Category is a coarse complaint class used for routing and reports.
type Category string

// Complaint categories, in reporting order.
const (
	CategoryFood    Category = "Food"
	CategoryMedical Category = "Medical"
	CategorySafety  Category = "Safety"
	CategoryShelter Category = "Shelter"

	// CategoryGeneral is reported when no other category matches.
	CategoryGeneral Category = "General"
)
