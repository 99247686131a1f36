package courtlistener

// Court pairs a CourtListener court slug with its full name.
type Court struct {
	Slug string
	Name string
}

// PopularCourts returns the commonly-filtered courts in display order.
// The API accepts any slug; this list only backs the --list-courts table
// and the TUI court hints.
func PopularCourts() []Court {
	return []Court{
		{"scotus", "Supreme Court of the United States"},
		{"ca9", "U.S. Court of Appeals for the Ninth Circuit"},
		{"ca2", "U.S. Court of Appeals for the Second Circuit"},
		{"ca5", "U.S. Court of Appeals for the Fifth Circuit"},
		{"ca1", "U.S. Court of Appeals for the First Circuit"},
		{"dc", "U.S. District Court for the District of Columbia"},
		{"nysd", "U.S. District Court for the Southern District of New York"},
		{"nyed", "U.S. District Court for the Eastern District of New York"},
		{"cand", "U.S. District Court for the Northern District of California"},
		{"cacd", "U.S. District Court for the Central District of California"},
	}
}
