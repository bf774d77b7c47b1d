package hrmock

// Fixture data, as if it came from an external HR database.

type leaveRecord struct {
	EmployeeName          string
	TotalVacationDays     int
	UsedVacationDays      int
	RemainingVacationDays int
	CarriedOverDays       int
	SickDaysTotal         int
	SickDaysUsed          int
	SickDaysRemaining     int
	UpcomingLeave         []leaveEntry
	Year                  int
}

type leaveEntry struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

var leaveData = map[string]leaveRecord{
	"EMP001": {
		EmployeeName:          "Om Doshi",
		TotalVacationDays:     25,
		UsedVacationDays:      13,
		RemainingVacationDays: 12,
		CarriedOverDays:       3,
		SickDaysTotal:         30,
		SickDaysUsed:          4,
		SickDaysRemaining:     26,
		UpcomingLeave: []leaveEntry{
			{Start: "2026-03-15", End: "2026-03-19", Type: "vacation", Status: "approved"},
			{Start: "2026-04-10", End: "2026-04-10", Type: "personal", Status: "pending"},
		},
		Year: 2026,
	},
	"EMP002": {
		EmployeeName:          "Klahm Sebestian",
		TotalVacationDays:     25,
		UsedVacationDays:      8,
		RemainingVacationDays: 17,
		CarriedOverDays:       5,
		SickDaysTotal:         30,
		SickDaysUsed:          2,
		SickDaysRemaining:     28,
		UpcomingLeave:         []leaveEntry{},
		Year:                  2026,
	},
}

var employees = map[string]map[string]string{
	"EMP001": {
		"employee_id":     "EMP001",
		"name":            "Om Doshi",
		"email":           "omdoshi2@trenkwalder.com",
		"department":      "Engineering",
		"position":        "Senior Full-Stack Developer",
		"manager":         "Thomas Berger",
		"location":        "Remote (Ireland)",
		"start_date":      "2025-06-01",
		"employment_type": "Full-time",
		"team":            "Platform Engineering",
	},
	"EMP002": {
		"employee_id":     "EMP002",
		"name":            "Klahm Sebestian",
		"email":           "klahm.sebestian@trenkwalder.com",
		"department":      "Engineering",
		"position":        "Backend Developer",
		"manager":         "Thomas Berger",
		"location":        "Munich, DE",
		"start_date":      "2024-01-15",
		"employment_type": "Full-time",
		"team":            "Platform Engineering",
	},
}

type payslipRecord struct {
	EmployeeName string
	GrossSalary  float64
	NetSalary    float64
	Currency     string
	PayFrequency string
	LastPayDate  string
	NextPayDate  string
	Deductions   map[string]float64
}

var payslipData = map[string]payslipRecord{
	"EMP001": {
		EmployeeName: "Om Doshi",
		GrossSalary:  6500.00,
		NetSalary:    4200.00,
		Currency:     "EUR",
		PayFrequency: "monthly",
		LastPayDate:  "2026-01-31",
		NextPayDate:  "2026-02-28",
		Deductions: map[string]float64{
			"income_tax":           1450.00,
			"social_security":      650.00,
			"pension_contribution": 195.00,
			"health_insurance":     5.00,
		},
	},
	"EMP002": {
		EmployeeName: "Klahm Sebestian",
		GrossSalary:  5500.00,
		NetSalary:    3600.00,
		Currency:     "EUR",
		PayFrequency: "monthly",
		LastPayDate:  "2026-01-31",
		NextPayDate:  "2026-02-28",
		Deductions: map[string]float64{
			"income_tax":           1200.00,
			"social_security":      550.00,
			"pension_contribution": 165.00,
			"health_insurance":     5.00,
		},
	},
}
