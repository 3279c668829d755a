package models

import (
	"time"

	"github.com/recruitflow/backend/internal/domain/recruiting"
)

// ApplicantModel is the persistence model for the Applicant domain entity.
type ApplicantModel struct {
	BaseModel
	Name                  string `gorm:"type:varchar(100);not null"`
	Address               string `gorm:"type:varchar(200)"`
	DesiredOccupation     string `gorm:"type:varchar(100)"`
	DesiredLocation       string `gorm:"type:varchar(100)"`
	Birthdate             *time.Time
	Email                 string `gorm:"type:varchar(100);index"`
	PhoneNumber           string `gorm:"type:varchar(20)"`
	Gender                string `gorm:"type:varchar(10)"`
	Nationality           string `gorm:"type:varchar(50)"`
	EmploymentStatus      string `gorm:"type:varchar(50)"`
	AvailableDate         string `gorm:"type:varchar(50)"`
	EmploymentPeriod      string `gorm:"type:varchar(50)"`
	MedicalHistory        string `gorm:"type:varchar(200)"`
	DisabilityCertificate string `gorm:"type:varchar(50)"`
	Tattoo                string `gorm:"type:varchar(50)"`
	TattooDetails         string `gorm:"type:varchar(200)"`
	CriminalRecord        string `gorm:"type:varchar(50)"`
	ClothingSize          string `gorm:"type:varchar(10)"`
	CommuteOrDormitory    string `gorm:"type:varchar(50)"`
	CommuteMethod         string `gorm:"type:varchar(50)"`
	CommuteArea           string `gorm:"type:varchar(100)"`
	FactoryExperience     string `gorm:"type:varchar(200)"`
	ExperienceDetails     string `gorm:"type:text"`
	DesiredWorkingHours   string `gorm:"type:varchar(100)"`
	RecentApplications    string `gorm:"type:varchar(200)"`
	MostImportantPoint    string `gorm:"type:varchar(100)"`
	ImportantPointDetails string `gorm:"type:text"`
	DesiredSalary         string `gorm:"type:varchar(50)"`
	Height                string `gorm:"type:varchar(10)"`
	Weight                string `gorm:"type:varchar(10)"`

	ApplicationDate    *time.Time `gorm:"index"`
	CallDate           *time.Time
	ConnectionDate     *time.Time
	ProposalDate       *time.Time
	DocumentSentDate   *time.Time
	DocumentPassedDate *time.Time
	InterviewDate      *time.Time
	OfferDate          *time.Time
	HireDate           *time.Time `gorm:"index"`
	PaymentDate        *time.Time

	ReferralFee        *int
	AssignedEmployeeID *uint `gorm:"index"`
}

// TableName returns the table name for GORM
func (ApplicantModel) TableName() string {
	return "applicants"
}

// ToDomain converts the persistence model to a domain Applicant entity.
func (m *ApplicantModel) ToDomain() *recruiting.Applicant {
	return &recruiting.Applicant{
		BaseEntity:            m.BaseModel.ToDomain(),
		Name:                  m.Name,
		Address:               m.Address,
		DesiredOccupation:     m.DesiredOccupation,
		DesiredLocation:       m.DesiredLocation,
		Birthdate:             m.Birthdate,
		Email:                 m.Email,
		PhoneNumber:           m.PhoneNumber,
		Gender:                m.Gender,
		Nationality:           m.Nationality,
		EmploymentStatus:      m.EmploymentStatus,
		AvailableDate:         m.AvailableDate,
		EmploymentPeriod:      m.EmploymentPeriod,
		MedicalHistory:        m.MedicalHistory,
		DisabilityCertificate: m.DisabilityCertificate,
		Tattoo:                m.Tattoo,
		TattooDetails:         m.TattooDetails,
		CriminalRecord:        m.CriminalRecord,
		ClothingSize:          m.ClothingSize,
		CommuteOrDormitory:    m.CommuteOrDormitory,
		CommuteMethod:         m.CommuteMethod,
		CommuteArea:           m.CommuteArea,
		FactoryExperience:     m.FactoryExperience,
		ExperienceDetails:     m.ExperienceDetails,
		DesiredWorkingHours:   m.DesiredWorkingHours,
		RecentApplications:    m.RecentApplications,
		MostImportantPoint:    m.MostImportantPoint,
		ImportantPointDetails: m.ImportantPointDetails,
		DesiredSalary:         m.DesiredSalary,
		Height:                m.Height,
		Weight:                m.Weight,
		ApplicationDate:       m.ApplicationDate,
		CallDate:              m.CallDate,
		ConnectionDate:        m.ConnectionDate,
		ProposalDate:          m.ProposalDate,
		DocumentSentDate:      m.DocumentSentDate,
		DocumentPassedDate:    m.DocumentPassedDate,
		InterviewDate:         m.InterviewDate,
		OfferDate:             m.OfferDate,
		HireDate:              m.HireDate,
		PaymentDate:           m.PaymentDate,
		ReferralFee:           m.ReferralFee,
		AssignedEmployeeID:    m.AssignedEmployeeID,
	}
}

// FromDomain populates the persistence model from a domain Applicant entity.
func (m *ApplicantModel) FromDomain(a *recruiting.Applicant) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Name = a.Name
	m.Address = a.Address
	m.DesiredOccupation = a.DesiredOccupation
	m.DesiredLocation = a.DesiredLocation
	m.Birthdate = a.Birthdate
	m.Email = a.Email
	m.PhoneNumber = a.PhoneNumber
	m.Gender = a.Gender
	m.Nationality = a.Nationality
	m.EmploymentStatus = a.EmploymentStatus
	m.AvailableDate = a.AvailableDate
	m.EmploymentPeriod = a.EmploymentPeriod
	m.MedicalHistory = a.MedicalHistory
	m.DisabilityCertificate = a.DisabilityCertificate
	m.Tattoo = a.Tattoo
	m.TattooDetails = a.TattooDetails
	m.CriminalRecord = a.CriminalRecord
	m.ClothingSize = a.ClothingSize
	m.CommuteOrDormitory = a.CommuteOrDormitory
	m.CommuteMethod = a.CommuteMethod
	m.CommuteArea = a.CommuteArea
	m.FactoryExperience = a.FactoryExperience
	m.ExperienceDetails = a.ExperienceDetails
	m.DesiredWorkingHours = a.DesiredWorkingHours
	m.RecentApplications = a.RecentApplications
	m.MostImportantPoint = a.MostImportantPoint
	m.ImportantPointDetails = a.ImportantPointDetails
	m.DesiredSalary = a.DesiredSalary
	m.Height = a.Height
	m.Weight = a.Weight
	m.ApplicationDate = a.ApplicationDate
	m.CallDate = a.CallDate
	m.ConnectionDate = a.ConnectionDate
	m.ProposalDate = a.ProposalDate
	m.DocumentSentDate = a.DocumentSentDate
	m.DocumentPassedDate = a.DocumentPassedDate
	m.InterviewDate = a.InterviewDate
	m.OfferDate = a.OfferDate
	m.HireDate = a.HireDate
	m.PaymentDate = a.PaymentDate
	m.ReferralFee = a.ReferralFee
	m.AssignedEmployeeID = a.AssignedEmployeeID
}

// ApplicantModelFromDomain creates a new persistence model from a domain Applicant entity.
func ApplicantModelFromDomain(a *recruiting.Applicant) *ApplicantModel {
	m := &ApplicantModel{}
	m.FromDomain(a)
	return m
}

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null"`
	Department  string `gorm:"type:varchar(100);index"`
	Position    string `gorm:"type:varchar(100)"`
	Email       string `gorm:"type:varchar(100);index"`
	PhoneNumber string `gorm:"type:varchar(20)"`
	HireDate    *time.Time
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *recruiting.Employee {
	return &recruiting.Employee{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Department:  m.Department,
		Position:    m.Position,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		HireDate:    m.HireDate,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *recruiting.Employee) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Name = e.Name
	m.Department = e.Department
	m.Position = e.Position
	m.Email = e.Email
	m.PhoneNumber = e.PhoneNumber
	m.HireDate = e.HireDate
}

// EmployeeModelFromDomain creates a new persistence model from a domain Employee entity.
func EmployeeModelFromDomain(e *recruiting.Employee) *EmployeeModel {
	m := &EmployeeModel{}
	m.FromDomain(e)
	return m
}

// JobModel is the persistence model for the Job domain entity.
type JobModel struct {
	BaseModel
	JobURL                  string `gorm:"type:varchar(500)"`
	JobNumber               string `gorm:"type:varchar(50);index"`
	CfFc                    string `gorm:"type:varchar(50)"`
	Company                 string `gorm:"type:varchar(200);not null"`
	Prefecture              string `gorm:"type:varchar(50);index"`
	City                    string `gorm:"type:varchar(100)"`
	Title                   string `gorm:"type:varchar(200);not null"`
	Salary                  string `gorm:"type:varchar(100)"`
	Fee                     string `gorm:"type:varchar(100)"`
	AgeLimit                *int
	Description             string `gorm:"type:text"`
	Requirements            string `gorm:"type:text"`
	Benefits                string `gorm:"type:text"`
	WorkingHours            string `gorm:"type:varchar(200)"`
	EmploymentType          string `gorm:"type:varchar(50)"`
	Holidays                string `gorm:"type:varchar(200)"`
	Dormitory               bool   `gorm:"not null;default:false"`
	HousingCost             string `gorm:"type:varchar(100)"`
	HousingAllowance        string `gorm:"type:varchar(100)"`
	WorkStyle               string `gorm:"type:varchar(100)"`
	AnnualHolidays          string `gorm:"type:varchar(50)"`
	Gender                  string `gorm:"type:varchar(10)"`
	MinAge                  *int
	WorkExperience          string `gorm:"type:varchar(200)"`
	OccupationExperience    string `gorm:"type:varchar(200)"`
	JapaneseRequired        bool   `gorm:"not null;default:false"`
	CommuteMethod           string `gorm:"type:varchar(100)"`
	NearestStation          string `gorm:"type:varchar(100)"`
	SalaryType              string `gorm:"type:varchar(50)"`
	HourlyWage              *int
	Shift                   string `gorm:"type:varchar(100)"`
	Products                string `gorm:"type:varchar(200)"`
	OccupationMajorCategory string `gorm:"type:varchar(100)"`
	OccupationMinorCategory string `gorm:"type:varchar(100)"`
	Advantages              string `gorm:"type:text"`
	SmokingMeasures         string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (JobModel) TableName() string {
	return "jobs"
}

// ToDomain converts the persistence model to a domain Job entity.
func (m *JobModel) ToDomain() *recruiting.Job {
	return &recruiting.Job{
		BaseEntity:              m.BaseModel.ToDomain(),
		JobURL:                  m.JobURL,
		JobNumber:               m.JobNumber,
		CfFc:                    m.CfFc,
		Company:                 m.Company,
		Prefecture:              m.Prefecture,
		City:                    m.City,
		Title:                   m.Title,
		Salary:                  m.Salary,
		Fee:                     m.Fee,
		AgeLimit:                m.AgeLimit,
		Description:             m.Description,
		Requirements:            m.Requirements,
		Benefits:                m.Benefits,
		WorkingHours:            m.WorkingHours,
		EmploymentType:          m.EmploymentType,
		Holidays:                m.Holidays,
		Dormitory:               m.Dormitory,
		HousingCost:             m.HousingCost,
		HousingAllowance:        m.HousingAllowance,
		WorkStyle:               m.WorkStyle,
		AnnualHolidays:          m.AnnualHolidays,
		Gender:                  m.Gender,
		MinAge:                  m.MinAge,
		WorkExperience:          m.WorkExperience,
		OccupationExperience:    m.OccupationExperience,
		JapaneseRequired:        m.JapaneseRequired,
		CommuteMethod:           m.CommuteMethod,
		NearestStation:          m.NearestStation,
		SalaryType:              m.SalaryType,
		HourlyWage:              m.HourlyWage,
		Shift:                   m.Shift,
		Products:                m.Products,
		OccupationMajorCategory: m.OccupationMajorCategory,
		OccupationMinorCategory: m.OccupationMinorCategory,
		Advantages:              m.Advantages,
		SmokingMeasures:         m.SmokingMeasures,
	}
}

// FromDomain populates the persistence model from a domain Job entity.
func (m *JobModel) FromDomain(j *recruiting.Job) {
	m.FromDomainBaseEntity(j.BaseEntity)
	m.JobURL = j.JobURL
	m.JobNumber = j.JobNumber
	m.CfFc = j.CfFc
	m.Company = j.Company
	m.Prefecture = j.Prefecture
	m.City = j.City
	m.Title = j.Title
	m.Salary = j.Salary
	m.Fee = j.Fee
	m.AgeLimit = j.AgeLimit
	m.Description = j.Description
	m.Requirements = j.Requirements
	m.Benefits = j.Benefits
	m.WorkingHours = j.WorkingHours
	m.EmploymentType = j.EmploymentType
	m.Holidays = j.Holidays
	m.Dormitory = j.Dormitory
	m.HousingCost = j.HousingCost
	m.HousingAllowance = j.HousingAllowance
	m.WorkStyle = j.WorkStyle
	m.AnnualHolidays = j.AnnualHolidays
	m.Gender = j.Gender
	m.MinAge = j.MinAge
	m.WorkExperience = j.WorkExperience
	m.OccupationExperience = j.OccupationExperience
	m.JapaneseRequired = j.JapaneseRequired
	m.CommuteMethod = j.CommuteMethod
	m.NearestStation = j.NearestStation
	m.SalaryType = j.SalaryType
	m.HourlyWage = j.HourlyWage
	m.Shift = j.Shift
	m.Products = j.Products
	m.OccupationMajorCategory = j.OccupationMajorCategory
	m.OccupationMinorCategory = j.OccupationMinorCategory
	m.Advantages = j.Advantages
	m.SmokingMeasures = j.SmokingMeasures
}

// JobModelFromDomain creates a new persistence model from a domain Job entity.
func JobModelFromDomain(j *recruiting.Job) *JobModel {
	m := &JobModel{}
	m.FromDomain(j)
	return m
}

// InterviewModel is the persistence model for the Interview domain entity.
type InterviewModel struct {
	BaseModel
	ApplicantID     uint  `gorm:"not null;index"`
	JobID           *uint `gorm:"index"`
	Date            *time.Time
	Status          recruiting.InterviewStatus `gorm:"type:varchar(20);not null;default:'scheduled'"`
	Result          recruiting.InterviewResult `gorm:"type:varchar(20);index"`
	Notes           string                     `gorm:"type:text"`
	PreparationInfo string                     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InterviewModel) TableName() string {
	return "interviews"
}

// ToDomain converts the persistence model to a domain Interview entity.
func (m *InterviewModel) ToDomain() *recruiting.Interview {
	return &recruiting.Interview{
		BaseEntity:      m.BaseModel.ToDomain(),
		ApplicantID:     m.ApplicantID,
		JobID:           m.JobID,
		Date:            m.Date,
		Status:          m.Status,
		Result:          m.Result,
		Notes:           m.Notes,
		PreparationInfo: m.PreparationInfo,
	}
}

// FromDomain populates the persistence model from a domain Interview entity.
func (m *InterviewModel) FromDomain(i *recruiting.Interview) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.ApplicantID = i.ApplicantID
	m.JobID = i.JobID
	m.Date = i.Date
	m.Status = i.Status
	m.Result = i.Result
	m.Notes = i.Notes
	m.PreparationInfo = i.PreparationInfo
}

// InterviewModelFromDomain creates a new persistence model from a domain Interview entity.
func InterviewModelFromDomain(i *recruiting.Interview) *InterviewModel {
	m := &InterviewModel{}
	m.FromDomain(i)
	return m
}

// PhoneCallModel is the persistence model for the PhoneCall domain entity.
type PhoneCallModel struct {
	BaseModel
	ApplicantID  uint                  `gorm:"not null;index"`
	EmployeeID   *uint                 `gorm:"index"`
	CallDate     time.Time             `gorm:"not null;index"`
	Status       recruiting.CallStatus `gorm:"type:varchar(20);not null;default:'scheduled'"`
	Notes        string                `gorm:"type:text"`
	FollowUpDate *time.Time
}

// TableName returns the table name for GORM
func (PhoneCallModel) TableName() string {
	return "phone_calls"
}

// ToDomain converts the persistence model to a domain PhoneCall entity.
func (m *PhoneCallModel) ToDomain() *recruiting.PhoneCall {
	return &recruiting.PhoneCall{
		BaseEntity:   m.BaseModel.ToDomain(),
		ApplicantID:  m.ApplicantID,
		EmployeeID:   m.EmployeeID,
		CallDate:     m.CallDate,
		Status:       m.Status,
		Notes:        m.Notes,
		FollowUpDate: m.FollowUpDate,
	}
}

// FromDomain populates the persistence model from a domain PhoneCall entity.
func (m *PhoneCallModel) FromDomain(p *recruiting.PhoneCall) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.ApplicantID = p.ApplicantID
	m.EmployeeID = p.EmployeeID
	m.CallDate = p.CallDate
	m.Status = p.Status
	m.Notes = p.Notes
	m.FollowUpDate = p.FollowUpDate
}

// PhoneCallModelFromDomain creates a new persistence model from a domain PhoneCall entity.
func PhoneCallModelFromDomain(p *recruiting.PhoneCall) *PhoneCallModel {
	m := &PhoneCallModel{}
	m.FromDomain(p)
	return m
}
