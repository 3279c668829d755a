package recruiting

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/recruitflow/backend/internal/domain/matching"
	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
)

const dateLayout = "2006-01-02"

// parseDate parses a request date value. Empty and nil values clear
// the field; malformed values are a validation error.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", *s))
	}
	return &t, nil
}

// parseDateTime parses a request timestamp, accepting RFC 3339 or a
// plain date.
func parseDateTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(dateLayout, *s); err == nil {
		return &t, nil
	}
	return nil, shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf("Invalid timestamp %q, expected ISO format", *s))
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func formatDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// checkDate guards against corrupt stored dates that cannot be
// serialized. Rows carrying one are replaced by a placeholder instead
// of failing the whole response.
func checkDate(t *time.Time) error {
	if t != nil && (t.Year() < 1 || t.Year() > 9999) {
		return shared.ErrConversion
	}
	return nil
}

// =============================================================================
// Applicant DTOs
// =============================================================================

// CreateApplicantRequest represents a request to register an applicant
type CreateApplicantRequest struct {
	Name                  string  `json:"name" binding:"required,min=1,max=100"`
	Address               string  `json:"address" binding:"max=255"`
	DesiredOccupation     string  `json:"desired_occupation" binding:"max=100"`
	DesiredLocation       string  `json:"desired_location" binding:"max=100"`
	Birthdate             *string `json:"birthdate"`
	Email                 string  `json:"email" binding:"omitempty,email,max=100"`
	PhoneNumber           string  `json:"phone_number" binding:"max=20"`
	Gender                string  `json:"gender" binding:"max=20"`
	Nationality           string  `json:"nationality" binding:"max=50"`
	EmploymentStatus      string  `json:"employment_status" binding:"max=50"`
	AvailableDate         string  `json:"available_date" binding:"max=50"`
	EmploymentPeriod      string  `json:"employment_period" binding:"max=50"`
	MedicalHistory        string  `json:"medical_history"`
	DisabilityCertificate string  `json:"disability_certificate" binding:"max=10"`
	Tattoo                string  `json:"tattoo" binding:"max=10"`
	TattooDetails         string  `json:"tattoo_details"`
	CriminalRecord        string  `json:"criminal_record" binding:"max=10"`
	ClothingSize          string  `json:"clothing_size" binding:"max=10"`
	CommuteOrDormitory    string  `json:"commute_or_dormitory" binding:"max=50"`
	CommuteMethod         string  `json:"commute_method" binding:"max=50"`
	CommuteArea           string  `json:"commute_area" binding:"max=100"`
	FactoryExperience     string  `json:"factory_experience" binding:"max=100"`
	ExperienceDetails     string  `json:"experience_details"`
	DesiredWorkingHours   string  `json:"desired_working_hours" binding:"max=100"`
	RecentApplications    string  `json:"recent_applications"`
	MostImportantPoint    string  `json:"most_important_point" binding:"max=100"`
	ImportantPointDetails string  `json:"important_point_details"`
	DesiredSalary         string  `json:"desired_salary" binding:"max=50"`
	Height                string  `json:"height" binding:"max=20"`
	Weight                string  `json:"weight" binding:"max=20"`
	ApplicationDate       *string `json:"application_date"`
	ReferralFee           *int    `json:"referral_fee"`
	AssignedEmployeeID    *uint   `json:"assigned_employee_id"`
}

// UpdateApplicantRequest represents a partial applicant update
type UpdateApplicantRequest struct {
	Name                  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Address               *string `json:"address" binding:"omitempty,max=255"`
	DesiredOccupation     *string `json:"desired_occupation" binding:"omitempty,max=100"`
	DesiredLocation       *string `json:"desired_location" binding:"omitempty,max=100"`
	Birthdate             *string `json:"birthdate"`
	Email                 *string `json:"email" binding:"omitempty,email,max=100"`
	PhoneNumber           *string `json:"phone_number" binding:"omitempty,max=20"`
	Gender                *string `json:"gender" binding:"omitempty,max=20"`
	Nationality           *string `json:"nationality" binding:"omitempty,max=50"`
	EmploymentStatus      *string `json:"employment_status" binding:"omitempty,max=50"`
	AvailableDate         *string `json:"available_date" binding:"omitempty,max=50"`
	EmploymentPeriod      *string `json:"employment_period" binding:"omitempty,max=50"`
	MedicalHistory        *string `json:"medical_history"`
	DisabilityCertificate *string `json:"disability_certificate" binding:"omitempty,max=10"`
	Tattoo                *string `json:"tattoo" binding:"omitempty,max=10"`
	TattooDetails         *string `json:"tattoo_details"`
	CriminalRecord        *string `json:"criminal_record" binding:"omitempty,max=10"`
	ClothingSize          *string `json:"clothing_size" binding:"omitempty,max=10"`
	CommuteOrDormitory    *string `json:"commute_or_dormitory" binding:"omitempty,max=50"`
	CommuteMethod         *string `json:"commute_method" binding:"omitempty,max=50"`
	CommuteArea           *string `json:"commute_area" binding:"omitempty,max=100"`
	FactoryExperience     *string `json:"factory_experience" binding:"omitempty,max=100"`
	ExperienceDetails     *string `json:"experience_details"`
	DesiredWorkingHours   *string `json:"desired_working_hours" binding:"omitempty,max=100"`
	RecentApplications    *string `json:"recent_applications"`
	MostImportantPoint    *string `json:"most_important_point" binding:"omitempty,max=100"`
	ImportantPointDetails *string `json:"important_point_details"`
	DesiredSalary         *string `json:"desired_salary" binding:"omitempty,max=50"`
	Height                *string `json:"height" binding:"omitempty,max=20"`
	Weight                *string `json:"weight" binding:"omitempty,max=20"`
	ReferralFee           *int    `json:"referral_fee"`
	AssignedEmployeeID    *uint   `json:"assigned_employee_id"`
}

// UpdateProgressRequest sets or clears one pipeline stage date
type UpdateProgressRequest struct {
	Stage string  `json:"stage" binding:"required"`
	Date  *string `json:"date"`
}

// UpdateReferralFeeRequest sets or clears the applicant's referral fee
type UpdateReferralFeeRequest struct {
	ReferralFee *int `json:"referral_fee"`
}

// AssignEmployeeRequest sets or clears the responsible employee
type AssignEmployeeRequest struct {
	EmployeeID *uint `json:"employee_id"`
}

// ApplicantResponse represents an applicant in API responses
type ApplicantResponse struct {
	ID                    uint    `json:"id"`
	Name                  string  `json:"name"`
	Address               string  `json:"address"`
	DesiredOccupation     string  `json:"desired_occupation"`
	DesiredLocation       string  `json:"desired_location"`
	Birthdate             *string `json:"birthdate"`
	Age                   *int    `json:"age,omitempty"`
	Email                 string  `json:"email"`
	PhoneNumber           string  `json:"phone_number"`
	Gender                string  `json:"gender"`
	Nationality           string  `json:"nationality"`
	EmploymentStatus      string  `json:"employment_status"`
	AvailableDate         string  `json:"available_date"`
	EmploymentPeriod      string  `json:"employment_period"`
	MedicalHistory        string  `json:"medical_history"`
	DisabilityCertificate string  `json:"disability_certificate"`
	Tattoo                string  `json:"tattoo"`
	TattooDetails         string  `json:"tattoo_details"`
	CriminalRecord        string  `json:"criminal_record"`
	ClothingSize          string  `json:"clothing_size"`
	CommuteOrDormitory    string  `json:"commute_or_dormitory"`
	CommuteMethod         string  `json:"commute_method"`
	CommuteArea           string  `json:"commute_area"`
	FactoryExperience     string  `json:"factory_experience"`
	ExperienceDetails     string  `json:"experience_details"`
	DesiredWorkingHours   string  `json:"desired_working_hours"`
	RecentApplications    string  `json:"recent_applications"`
	MostImportantPoint    string  `json:"most_important_point"`
	ImportantPointDetails string  `json:"important_point_details"`
	DesiredSalary         string  `json:"desired_salary"`
	Height                string  `json:"height"`
	Weight                string  `json:"weight"`
	ApplicationDate       *string `json:"application_date"`
	CallDate              *string `json:"call_date"`
	ConnectionDate        *string `json:"connection_date"`
	ProposalDate          *string `json:"proposal_date"`
	DocumentSentDate      *string `json:"document_sent_date"`
	DocumentPassedDate    *string `json:"document_passed_date"`
	InterviewDate         *string `json:"interview_date"`
	OfferDate             *string `json:"offer_date"`
	HireDate              *string `json:"hire_date"`
	PaymentDate           *string `json:"payment_date"`
	ReferralFee           *int    `json:"referral_fee"`
	AssignedEmployeeID    *uint   `json:"assigned_employee_id"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

// Placeholder stands in for a record whose conversion failed. The
// aggregate payload stays returnable; only the broken row degrades.
type Placeholder struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ApplicantItem is the tagged conversion result for one applicant:
// exactly one of Record or Placeholder is set.
type ApplicantItem struct {
	Record      *ApplicantResponse
	Placeholder *Placeholder
}

// MarshalJSON emits whichever side of the tagged result is set.
func (i ApplicantItem) MarshalJSON() ([]byte, error) {
	if i.Placeholder != nil {
		return json.Marshal(i.Placeholder)
	}
	return json.Marshal(i.Record)
}

// ToApplicantResponse converts a domain applicant, reporting a
// conversion error when a stored date cannot be serialized.
func ToApplicantResponse(a *recruiting.Applicant, now time.Time) (*ApplicantResponse, error) {
	for _, d := range []*time.Time{
		a.Birthdate, a.ApplicationDate, a.CallDate, a.ConnectionDate, a.ProposalDate,
		a.DocumentSentDate, a.DocumentPassedDate, a.InterviewDate, a.OfferDate,
		a.HireDate, a.PaymentDate,
	} {
		if err := checkDate(d); err != nil {
			return nil, err
		}
	}

	resp := &ApplicantResponse{
		ID:                    a.ID,
		Name:                  a.Name,
		Address:               a.Address,
		DesiredOccupation:     a.DesiredOccupation,
		DesiredLocation:       a.DesiredLocation,
		Birthdate:             formatDate(a.Birthdate),
		Email:                 a.Email,
		PhoneNumber:           a.PhoneNumber,
		Gender:                a.Gender,
		Nationality:           a.Nationality,
		EmploymentStatus:      a.EmploymentStatus,
		AvailableDate:         a.AvailableDate,
		EmploymentPeriod:      a.EmploymentPeriod,
		MedicalHistory:        a.MedicalHistory,
		DisabilityCertificate: a.DisabilityCertificate,
		Tattoo:                a.Tattoo,
		TattooDetails:         a.TattooDetails,
		CriminalRecord:        a.CriminalRecord,
		ClothingSize:          a.ClothingSize,
		CommuteOrDormitory:    a.CommuteOrDormitory,
		CommuteMethod:         a.CommuteMethod,
		CommuteArea:           a.CommuteArea,
		FactoryExperience:     a.FactoryExperience,
		ExperienceDetails:     a.ExperienceDetails,
		DesiredWorkingHours:   a.DesiredWorkingHours,
		RecentApplications:    a.RecentApplications,
		MostImportantPoint:    a.MostImportantPoint,
		ImportantPointDetails: a.ImportantPointDetails,
		DesiredSalary:         a.DesiredSalary,
		Height:                a.Height,
		Weight:                a.Weight,
		ApplicationDate:       formatDate(a.ApplicationDate),
		CallDate:              formatDate(a.CallDate),
		ConnectionDate:        formatDate(a.ConnectionDate),
		ProposalDate:          formatDate(a.ProposalDate),
		DocumentSentDate:      formatDate(a.DocumentSentDate),
		DocumentPassedDate:    formatDate(a.DocumentPassedDate),
		InterviewDate:         formatDate(a.InterviewDate),
		OfferDate:             formatDate(a.OfferDate),
		HireDate:              formatDate(a.HireDate),
		PaymentDate:           formatDate(a.PaymentDate),
		ReferralFee:           a.ReferralFee,
		AssignedEmployeeID:    a.AssignedEmployeeID,
		CreatedAt:             a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             a.UpdatedAt.Format(time.RFC3339),
	}
	if a.Birthdate != nil {
		age := matching.Age(*a.Birthdate, now)
		resp.Age = &age
	}
	return resp, nil
}

// ToApplicantItem converts a domain applicant, degrading to a
// placeholder when conversion fails.
func ToApplicantItem(a *recruiting.Applicant, now time.Time) ApplicantItem {
	resp, err := ToApplicantResponse(a, now)
	if err != nil {
		name := a.Name
		if name == "" {
			name = "不明"
		}
		return ApplicantItem{Placeholder: &Placeholder{ID: a.ID, Name: name, Error: "データ変換エラー: " + err.Error()}}
	}
	return ApplicantItem{Record: resp}
}

// =============================================================================
// Employee DTOs
// =============================================================================

// CreateEmployeeRequest represents a request to register an employee
type CreateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Department  string  `json:"department" binding:"max=50"`
	Position    string  `json:"position" binding:"max=50"`
	Email       string  `json:"email" binding:"omitempty,email,max=100"`
	PhoneNumber string  `json:"phone_number" binding:"max=20"`
	HireDate    *string `json:"hire_date"`
}

// UpdateEmployeeRequest represents a partial employee update
type UpdateEmployeeRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Department  *string `json:"department" binding:"omitempty,max=50"`
	Position    *string `json:"position" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	HireDate    *string `json:"hire_date"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Position    string  `json:"position"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	HireDate    *string `json:"hire_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToEmployeeResponse converts a domain employee.
func ToEmployeeResponse(e *recruiting.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Department:  e.Department,
		Position:    e.Position,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		HireDate:    formatDate(e.HireDate),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

// =============================================================================
// Job DTOs
// =============================================================================

// CreateJobRequest represents a request to register a job posting
type CreateJobRequest struct {
	JobURL                  string `json:"job_url" binding:"max=255"`
	JobNumber               string `json:"job_number" binding:"max=50"`
	CfFc                    string `json:"cf_fc" binding:"max=50"`
	Company                 string `json:"company" binding:"required,min=1,max=100"`
	Prefecture              string `json:"prefecture" binding:"max=50"`
	City                    string `json:"city" binding:"max=100"`
	Title                   string `json:"title" binding:"required,min=1,max=100"`
	Salary                  string `json:"salary" binding:"max=50"`
	Fee                     string `json:"fee" binding:"max=50"`
	AgeLimit                *int   `json:"age_limit"`
	Description             string `json:"description"`
	Requirements            string `json:"requirements"`
	Benefits                string `json:"benefits"`
	WorkingHours            string `json:"working_hours" binding:"max=100"`
	EmploymentType          string `json:"employment_type" binding:"max=50"`
	Holidays                string `json:"holidays" binding:"max=100"`
	Dormitory               bool   `json:"dormitory"`
	HousingCost             string `json:"housing_cost" binding:"max=50"`
	HousingAllowance        string `json:"housing_allowance" binding:"max=50"`
	WorkStyle               string `json:"work_style" binding:"max=50"`
	AnnualHolidays          string `json:"annual_holidays" binding:"max=50"`
	Gender                  string `json:"gender" binding:"max=20"`
	MinAge                  *int   `json:"min_age"`
	WorkExperience          string `json:"work_experience"`
	OccupationExperience    string `json:"occupation_experience"`
	JapaneseRequired        bool   `json:"japanese_required"`
	CommuteMethod           string `json:"commute_method" binding:"max=100"`
	NearestStation          string `json:"nearest_station" binding:"max=100"`
	SalaryType              string `json:"salary_type" binding:"max=50"`
	HourlyWage              *int   `json:"hourly_wage"`
	Shift                   string `json:"shift" binding:"max=50"`
	Products                string `json:"products" binding:"max=100"`
	OccupationMajorCategory string `json:"occupation_major_category" binding:"max=50"`
	OccupationMinorCategory string `json:"occupation_minor_category" binding:"max=50"`
	Advantages              string `json:"advantages"`
	SmokingMeasures         string `json:"smoking_measures"`
}

// UpdateJobRequest represents a partial job update
type UpdateJobRequest struct {
	JobURL                  *string `json:"job_url" binding:"omitempty,max=255"`
	JobNumber               *string `json:"job_number" binding:"omitempty,max=50"`
	CfFc                    *string `json:"cf_fc" binding:"omitempty,max=50"`
	Company                 *string `json:"company" binding:"omitempty,min=1,max=100"`
	Prefecture              *string `json:"prefecture" binding:"omitempty,max=50"`
	City                    *string `json:"city" binding:"omitempty,max=100"`
	Title                   *string `json:"title" binding:"omitempty,min=1,max=100"`
	Salary                  *string `json:"salary" binding:"omitempty,max=50"`
	Fee                     *string `json:"fee" binding:"omitempty,max=50"`
	AgeLimit                *int    `json:"age_limit"`
	Description             *string `json:"description"`
	Requirements            *string `json:"requirements"`
	Benefits                *string `json:"benefits"`
	WorkingHours            *string `json:"working_hours" binding:"omitempty,max=100"`
	EmploymentType          *string `json:"employment_type" binding:"omitempty,max=50"`
	Holidays                *string `json:"holidays" binding:"omitempty,max=100"`
	Dormitory               *bool   `json:"dormitory"`
	HousingCost             *string `json:"housing_cost" binding:"omitempty,max=50"`
	HousingAllowance        *string `json:"housing_allowance" binding:"omitempty,max=50"`
	WorkStyle               *string `json:"work_style" binding:"omitempty,max=50"`
	AnnualHolidays          *string `json:"annual_holidays" binding:"omitempty,max=50"`
	Gender                  *string `json:"gender" binding:"omitempty,max=20"`
	MinAge                  *int    `json:"min_age"`
	WorkExperience          *string `json:"work_experience"`
	OccupationExperience    *string `json:"occupation_experience"`
	JapaneseRequired        *bool   `json:"japanese_required"`
	CommuteMethod           *string `json:"commute_method" binding:"omitempty,max=100"`
	NearestStation          *string `json:"nearest_station" binding:"omitempty,max=100"`
	SalaryType              *string `json:"salary_type" binding:"omitempty,max=50"`
	HourlyWage              *int    `json:"hourly_wage"`
	Shift                   *string `json:"shift" binding:"omitempty,max=50"`
	Products                *string `json:"products" binding:"omitempty,max=100"`
	OccupationMajorCategory *string `json:"occupation_major_category" binding:"omitempty,max=50"`
	OccupationMinorCategory *string `json:"occupation_minor_category" binding:"omitempty,max=50"`
	Advantages              *string `json:"advantages"`
	SmokingMeasures         *string `json:"smoking_measures"`
}

// JobResponse represents a job posting in API responses
type JobResponse struct {
	ID                      uint   `json:"id"`
	JobURL                  string `json:"job_url"`
	JobNumber               string `json:"job_number"`
	CfFc                    string `json:"cf_fc"`
	Company                 string `json:"company"`
	Prefecture              string `json:"prefecture"`
	City                    string `json:"city"`
	Title                   string `json:"title"`
	Salary                  string `json:"salary"`
	Fee                     string `json:"fee"`
	AgeLimit                *int   `json:"age_limit"`
	Description             string `json:"description"`
	Requirements            string `json:"requirements"`
	Benefits                string `json:"benefits"`
	WorkingHours            string `json:"working_hours"`
	EmploymentType          string `json:"employment_type"`
	Holidays                string `json:"holidays"`
	Dormitory               bool   `json:"dormitory"`
	HousingCost             string `json:"housing_cost"`
	HousingAllowance        string `json:"housing_allowance"`
	WorkStyle               string `json:"work_style"`
	AnnualHolidays          string `json:"annual_holidays"`
	Gender                  string `json:"gender"`
	MinAge                  *int   `json:"min_age"`
	WorkExperience          string `json:"work_experience"`
	OccupationExperience    string `json:"occupation_experience"`
	JapaneseRequired        bool   `json:"japanese_required"`
	CommuteMethod           string `json:"commute_method"`
	NearestStation          string `json:"nearest_station"`
	SalaryType              string `json:"salary_type"`
	HourlyWage              *int   `json:"hourly_wage"`
	Shift                   string `json:"shift"`
	Products                string `json:"products"`
	OccupationMajorCategory string `json:"occupation_major_category"`
	OccupationMinorCategory string `json:"occupation_minor_category"`
	Advantages              string `json:"advantages"`
	SmokingMeasures         string `json:"smoking_measures"`
	CreatedAt               string `json:"created_at"`
	UpdatedAt               string `json:"updated_at"`
}

// ToJobResponse converts a domain job posting.
func ToJobResponse(j *recruiting.Job) JobResponse {
	return JobResponse{
		ID:                      j.ID,
		JobURL:                  j.JobURL,
		JobNumber:               j.JobNumber,
		CfFc:                    j.CfFc,
		Company:                 j.Company,
		Prefecture:              j.Prefecture,
		City:                    j.City,
		Title:                   j.Title,
		Salary:                  j.Salary,
		Fee:                     j.Fee,
		AgeLimit:                j.AgeLimit,
		Description:             j.Description,
		Requirements:            j.Requirements,
		Benefits:                j.Benefits,
		WorkingHours:            j.WorkingHours,
		EmploymentType:          j.EmploymentType,
		Holidays:                j.Holidays,
		Dormitory:               j.Dormitory,
		HousingCost:             j.HousingCost,
		HousingAllowance:        j.HousingAllowance,
		WorkStyle:               j.WorkStyle,
		AnnualHolidays:          j.AnnualHolidays,
		Gender:                  j.Gender,
		MinAge:                  j.MinAge,
		WorkExperience:          j.WorkExperience,
		OccupationExperience:    j.OccupationExperience,
		JapaneseRequired:        j.JapaneseRequired,
		CommuteMethod:           j.CommuteMethod,
		NearestStation:          j.NearestStation,
		SalaryType:              j.SalaryType,
		HourlyWage:              j.HourlyWage,
		Shift:                   j.Shift,
		Products:                j.Products,
		OccupationMajorCategory: j.OccupationMajorCategory,
		OccupationMinorCategory: j.OccupationMinorCategory,
		Advantages:              j.Advantages,
		SmokingMeasures:         j.SmokingMeasures,
		CreatedAt:               j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               j.UpdatedAt.Format(time.RFC3339),
	}
}

// =============================================================================
// Interview DTOs
// =============================================================================

// CreateInterviewRequest represents a request to schedule an interview
type CreateInterviewRequest struct {
	ApplicantID     uint    `json:"applicant_id" binding:"required"`
	JobID           *uint   `json:"job_id"`
	Date            *string `json:"date"`
	Status          string  `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Result          string  `json:"result" binding:"omitempty,oneof=passed failed pending"`
	Notes           string  `json:"notes"`
	PreparationInfo string  `json:"preparation_info"`
}

// UpdateInterviewRequest represents a partial interview update
type UpdateInterviewRequest struct {
	JobID           *uint   `json:"job_id"`
	Date            *string `json:"date"`
	Status          *string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Result          *string `json:"result" binding:"omitempty,oneof=passed failed pending"`
	Notes           *string `json:"notes"`
	PreparationInfo *string `json:"preparation_info"`
}

// InterviewResponse represents an interview in API responses
type InterviewResponse struct {
	ID              uint    `json:"id"`
	ApplicantID     uint    `json:"applicant_id"`
	JobID           *uint   `json:"job_id"`
	Date            *string `json:"date"`
	Status          string  `json:"status"`
	Result          string  `json:"result"`
	Notes           string  `json:"notes"`
	PreparationInfo string  `json:"preparation_info"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// InterviewStatisticsResponse summarizes interview outcomes
type InterviewStatisticsResponse struct {
	TotalInterviews int64   `json:"total_interviews"`
	Passed          int64   `json:"passed"`
	Failed          int64   `json:"failed"`
	PassRate        float64 `json:"pass_rate"`
}

// ToInterviewResponse converts a domain interview.
func ToInterviewResponse(i *recruiting.Interview) InterviewResponse {
	return InterviewResponse{
		ID:              i.ID,
		ApplicantID:     i.ApplicantID,
		JobID:           i.JobID,
		Date:            formatDateTime(i.Date),
		Status:          string(i.Status),
		Result:          string(i.Result),
		Notes:           i.Notes,
		PreparationInfo: i.PreparationInfo,
		CreatedAt:       i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       i.UpdatedAt.Format(time.RFC3339),
	}
}

// =============================================================================
// Phone call DTOs
// =============================================================================

// CreatePhoneCallRequest represents a request to record a phone call
type CreatePhoneCallRequest struct {
	ApplicantID  uint    `json:"applicant_id" binding:"required"`
	EmployeeID   *uint   `json:"employee_id"`
	CallDate     string  `json:"call_date" binding:"required"`
	Status       string  `json:"status" binding:"omitempty,oneof=scheduled completed no_answer cancelled"`
	Notes        string  `json:"notes"`
	FollowUpDate *string `json:"follow_up_date"`
}

// UpdatePhoneCallRequest represents a partial phone call update
type UpdatePhoneCallRequest struct {
	EmployeeID   *uint   `json:"employee_id"`
	CallDate     *string `json:"call_date"`
	Status       *string `json:"status" binding:"omitempty,oneof=scheduled completed no_answer cancelled"`
	Notes        *string `json:"notes"`
	FollowUpDate *string `json:"follow_up_date"`
}

// PhoneCallResponse represents a phone call record in API responses
type PhoneCallResponse struct {
	ID           uint    `json:"id"`
	ApplicantID  uint    `json:"applicant_id"`
	EmployeeID   *uint   `json:"employee_id"`
	CallDate     string  `json:"call_date"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
	FollowUpDate *string `json:"follow_up_date"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ToPhoneCallResponse converts a domain phone call record.
func ToPhoneCallResponse(p *recruiting.PhoneCall) PhoneCallResponse {
	return PhoneCallResponse{
		ID:           p.ID,
		ApplicantID:  p.ApplicantID,
		EmployeeID:   p.EmployeeID,
		CallDate:     p.CallDate.Format(time.RFC3339),
		Status:       string(p.Status),
		Notes:        p.Notes,
		FollowUpDate: formatDateTime(p.FollowUpDate),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}
