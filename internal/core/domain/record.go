package domain

// Record is a directory entry. Records are owned by the directory
// collaborator and are read-only for the lifetime of a request.
type Record struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Building   string `json:"building"`
	Office     string `json:"office"`
}

// DisplayName returns "Last, First".
func (r Record) DisplayName() string {
	return r.LastName + ", " + r.FirstName
}
