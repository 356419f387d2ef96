package training

import "time"

// Required columns of a training-plan upload, checked literally against the
// sheet header before any processing.
var RequiredColumns = []string{
	"Country",
	"Company",
	"Year",
	"Division",
	"Department",
	"Job Property",
	"Status",
	"Duration in Hours",
	"Cost (€)",
	"Trainee ID",
}

// Dimension is a grouping dimension for training rollups
type Dimension string

const (
	ByCountry     Dimension = "country"
	ByCompany     Dimension = "company"
	ByYear        Dimension = "year"
	ByDivision    Dimension = "division"
	ByDepartment  Dimension = "department"
	ByJobProperty Dimension = "job_property"
	ByGender      Dimension = "gender"
	ByStatus      Dimension = "status"
)

// AllDimensions lists the grouping dimensions in display order
var AllDimensions = []Dimension{
	ByCountry, ByCompany, ByYear, ByDivision,
	ByDepartment, ByJobProperty, ByGender, ByStatus,
}

// Record is one training activity row. DurationHours and Cost are nil when
// the source cell was missing or unparsable; such rows contribute nothing
// to the sums.
type Record struct {
	Country     string
	Company     string
	Year        string
	Division    string
	Department  string
	JobProperty string
	Gender      string
	Status      string
	TraineeID   string

	DurationHours *float64
	Cost          *float64

	// CompletionDate supports the optional strictly-before-cutoff filter.
	CompletionDate *time.Time
}

// DimensionValue returns the record's value for a grouping dimension
func (r Record) DimensionValue(d Dimension) string {
	switch d {
	case ByCountry:
		return r.Country
	case ByCompany:
		return r.Company
	case ByYear:
		return r.Year
	case ByDivision:
		return r.Division
	case ByDepartment:
		return r.Department
	case ByJobProperty:
		return r.JobProperty
	case ByGender:
		return r.Gender
	case ByStatus:
		return r.Status
	}
	return ""
}
