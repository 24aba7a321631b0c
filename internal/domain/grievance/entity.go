package grievance

import "time"

type Category string

const (
	CategoryHarassment      Category = "harassment"
	CategoryDiscrimination  Category = "discrimination"
	CategoryWorkplaceSafety Category = "workplace_safety"
	CategorySalary          Category = "salary"
	CategoryBenefits        Category = "benefits"
	CategoryManagement      Category = "management"
	CategoryOther           Category = "other"
)

var ValidCategories = []Category{
	CategoryHarassment, CategoryDiscrimination, CategoryWorkplaceSafety,
	CategorySalary, CategoryBenefits, CategoryManagement, CategoryOther,
}

func IsValidCategory(c string) bool {
	for _, cat := range ValidCategories {
		if string(cat) == c {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed" // terminal
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var ValidPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func IsValidPriority(p string) bool {
	for _, pr := range ValidPriorities {
		if string(pr) == p {
			return true
		}
	}
	return false
}

// Rank orders priorities for listing: urgent > high > medium > low.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type Grievance struct {
	ID          string
	UserID      string
	Category    Category
	Description string
	Status      Status
	Priority    Priority
	Response    *string
	RespondedBy *string
	RespondedAt *time.Time
	FileURL     *string
	FileBlob    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields for list views
	UserName       *string
	UserEmail      *string
	UserDepartment *string
	ResponderName  *string
}

// IsTerminal reports whether no further transition is permitted.
func (g *Grievance) IsTerminal() bool {
	return g.Status == StatusClosed
}
