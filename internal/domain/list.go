package domain

// List is a named, ordered subset of the catalog. The order of Numbers is
// the list's canonical presentation order.
type List struct {
	Name        string
	DisplayName string
	Numbers     []int
}

// ListInfo is the transport summary of a list.
type ListInfo struct {
	Name           string
	DisplayName    string
	TotalQuestions int
}

// Intersection is a configured pair of lists whose common questions are
// derived on demand. List1's order wins when presenting the result.
type Intersection struct {
	ID          string
	DisplayName string
	List1       string
	List2       string
}

// Metrics is the derived completion statistics for a list. Never persisted;
// always recomputed from current question state.
type Metrics struct {
	Total      int
	Completed  int
	Percentage float64
}
