package domain

// Visibility is the outcome of authorizing one candidate for a requester.
type Visibility int

const (
	// Hidden candidates are not counted and not rendered.
	Hidden Visibility = iota
	// Visible candidates carry only the always-included fields.
	Visible
	// VisibleWithDetail candidates also carry the detail fields.
	VisibleWithDetail
)

// IsVisible returns true for Visible and VisibleWithDetail.
func (v Visibility) IsVisible() bool {
	return v != Hidden
}

// String returns a short name for logs.
func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case VisibleWithDetail:
		return "visible+detail"
	default:
		return "hidden"
	}
}

// Authorize decides whether requester may see candidate and whether the
// detail fields (phone, email, building, office) are included.
//
// A nil requester is anonymous and sees everything. Admins see everything.
// Employees and managers see their own department, with detail only for
// managers or for their own record. Contractors see only themselves.
func Authorize(requester *Identity, candidate Record) Visibility {
	if requester == nil {
		return VisibleWithDetail
	}
	self := requester.Record.ID == candidate.ID

	switch requester.Role {
	case RoleAdmin:
		return VisibleWithDetail
	case RoleEmployee, RoleManager:
		if requester.Record.Department != candidate.Department {
			return Hidden
		}
		if requester.Role == RoleManager || self {
			return VisibleWithDetail
		}
		return Visible
	case RoleContractor:
		if self {
			return VisibleWithDetail
		}
		return Hidden
	default:
		return Hidden
	}
}
