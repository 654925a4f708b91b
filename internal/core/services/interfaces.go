package services

// TokenIssuer signs access tokens. *jwt.Service implements it.
type TokenIssuer interface {
	Issue(userID uint, role string) (string, error)
}

// Input DTOs

// CreateWellInput for creating a well
type CreateWellInput struct {
	Name     string
	Location string
}

// CreateReportInput for filing a report
type CreateReportInput struct {
	Title       string
	Content     string
	Pressure    float64
	WellStatus  string
	Temperature float64
	WellID      uint
}
