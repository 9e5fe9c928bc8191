package main

import (
	"context"
	"time"

	"github.com/edupathpro/edupath/core/catalog"
)

// seed loads the bundled catalog fixtures. Seeding is additive; pass wipe to
// start from empty collections.
func (cli *commandLine) seed(wipe bool) error {
	ctx := context.Background()

	if wipe {
		if err := cli.wipe(); err != nil {
			return err
		}
	}

	if err := cli.catRepo.CreateColleges(ctx, seedColleges...); err != nil {
		return err
	}
	if err := cli.catRepo.CreateCourses(ctx, seedCourses...); err != nil {
		return err
	}
	if err := cli.catRepo.CreateScholarships(ctx, seedScholarships...); err != nil {
		return err
	}
	if err := cli.catRepo.CreateCareers(ctx, seedCareers...); err != nil {
		return err
	}
	if err := cli.catRepo.CreateResources(ctx, seedResources...); err != nil {
		return err
	}

	logger.Printf("seeded %d colleges, %d courses, %d scholarships, %d careers, %d resources",
		len(seedColleges), len(seedCourses), len(seedScholarships), len(seedCareers), len(seedResources))
	return nil
}

var seedColleges = []catalog.College{
	{
		ID:   "clg-gdc-srinagar",
		Name: "Government Degree College Srinagar",
		Location: catalog.Location{
			District: "Srinagar",
			State:    "Jammu and Kashmir",
			Pincode:  "190001",
		},
		Courses: []catalog.CourseOffering{
			{ID: "crs-bsc-cs", Name: "B.Sc Computer Science", Duration: "3 years", Degree: "B.Sc"},
			{ID: "crs-ba-eng", Name: "B.A English", Duration: "3 years", Degree: "B.A"},
			{ID: "crs-bcom", Name: "B.Com", Duration: "3 years", Degree: "B.Com"},
		},
		Fees: map[string]int{
			"crs-bsc-cs": 6500,
			"crs-ba-eng": 4200,
			"crs-bcom":   4800,
		},
		Cutoffs: map[string]map[string]float64{
			"crs-bsc-cs": {"general": 82.5, "obc": 78, "sc": 72, "st": 70, "ews": 80},
			"crs-ba-eng": {"general": 70, "obc": 66, "sc": 60, "st": 58, "ews": 68},
		},
		Facilities:   []string{"Library", "Hostel", "Computer Lab", "Sports Ground"},
		IsGovernment: true,
	},
	{
		ID:   "clg-nit-srinagar",
		Name: "National Institute of Technology Srinagar",
		Location: catalog.Location{
			District: "Srinagar",
			State:    "Jammu and Kashmir",
			Pincode:  "190006",
		},
		Courses: []catalog.CourseOffering{
			{ID: "crs-btech-cse", Name: "B.Tech Computer Science and Engineering", Duration: "4 years", Degree: "B.Tech"},
			{ID: "crs-btech-civil", Name: "B.Tech Civil Engineering", Duration: "4 years", Degree: "B.Tech"},
		},
		Fees: map[string]int{
			"crs-btech-cse":   125000,
			"crs-btech-civil": 125000,
		},
		Cutoffs: map[string]map[string]float64{
			"crs-btech-cse":   {"general": 96, "obc": 93, "sc": 88, "st": 86, "ews": 94},
			"crs-btech-civil": {"general": 91, "obc": 88, "sc": 83, "st": 81, "ews": 89},
		},
		Facilities:   []string{"Central Library", "Hostels", "Research Labs", "Incubation Centre"},
		IsGovernment: true,
	},
	{
		ID:   "clg-womens-college-jammu",
		Name: "Government College for Women Jammu",
		Location: catalog.Location{
			District: "Jammu",
			State:    "Jammu and Kashmir",
			Pincode:  "180001",
		},
		Courses: []catalog.CourseOffering{
			{ID: "crs-bsc-nursing", Name: "B.Sc Nursing", Duration: "4 years", Degree: "B.Sc"},
			{ID: "crs-ba-eng", Name: "B.A English", Duration: "3 years", Degree: "B.A"},
		},
		Fees: map[string]int{
			"crs-bsc-nursing": 18000,
			"crs-ba-eng":      4000,
		},
		Cutoffs: map[string]map[string]float64{
			"crs-bsc-nursing": {"general": 85, "obc": 81, "sc": 75, "st": 73, "ews": 83},
		},
		Facilities:   []string{"Library", "Hostel", "Science Labs"},
		IsGovernment: true,
	},
}

var seedCourses = []catalog.Course{
	{
		ID:          "crs-btech-cse",
		Name:        "B.Tech Computer Science and Engineering",
		ShortName:   "B.Tech CSE",
		Field:       "Engineering",
		Duration:    "4 years",
		Eligibility: "10+2 with PCM, JEE Main qualified",
		Streams:     []string{"science"},
		Fee:         125000,
		Rating:      4.6,
		Provider:    "AICTE approved institutes",
		CareerPaths: []catalog.Pathway{
			{Title: "Software Engineer", Description: "Product and services companies"},
			{Title: "Data Scientist"},
		},
	},
	{
		ID:          "crs-bsc-cs",
		Name:        "B.Sc Computer Science",
		ShortName:   "B.Sc CS",
		Field:       "Science",
		Duration:    "3 years",
		Eligibility: "10+2 with Mathematics",
		Streams:     []string{"science"},
		Fee:         6500,
		Rating:      4.1,
		Provider:    "State universities",
		CareerPaths: []catalog.Pathway{
			{Title: "Software Developer"},
			{Title: "MCA / M.Sc postgraduate study"},
		},
	},
	{
		ID:          "crs-bcom",
		Name:        "Bachelor of Commerce",
		ShortName:   "B.Com",
		Field:       "Commerce",
		Duration:    "3 years",
		Eligibility: "10+2 any stream, commerce preferred",
		Streams:     []string{"commerce"},
		Fee:         4800,
		Rating:      3.9,
		Provider:    "State universities",
		CareerPaths: []catalog.Pathway{
			{Title: "Chartered Accountant", Description: "via CA articleship"},
			{Title: "Banking and Finance"},
		},
	},
	{
		ID:          "crs-bsc-nursing",
		Name:        "B.Sc Nursing",
		ShortName:   "B.Sc Nursing",
		Field:       "Medical",
		Duration:    "4 years",
		Eligibility: "10+2 with PCB, NEET qualified",
		Streams:     []string{"science"},
		Fee:         18000,
		Rating:      4.3,
		Provider:    "INC recognised colleges",
		CareerPaths: []catalog.Pathway{
			{Title: "Staff Nurse"},
			{Title: "Public Health Worker"},
		},
	},
	{
		ID:          "crs-ba-eng",
		Name:        "B.A English",
		ShortName:   "B.A English",
		Field:       "Arts",
		Duration:    "3 years",
		Eligibility: "10+2 any stream",
		Streams:     []string{"arts"},
		Fee:         4200,
		Rating:      3.8,
		Provider:    "State universities",
		CareerPaths: []catalog.Pathway{
			{Title: "Content Writer"},
			{Title: "Civil Services preparation"},
		},
	},
}

var seedScholarships = []catalog.Scholarship{
	{
		ID:          "sch-pmsss",
		Name:        "Prime Minister's Special Scholarship Scheme",
		Description: "Tuition and maintenance support for students of Jammu, Kashmir and Ladakh pursuing undergraduate studies outside the union territories.",
		Amount:      "Up to ₹1,25,000 per year",
		Eligibility: catalog.ScholarshipEligibility{
			Categories:    []string{"general", "obc", "sc", "st", "ews"},
			Classes:       []string{"12", "ug"},
			IncomeCeiling: 800000,
		},
		ApplicationDeadline: time.Date(2026, time.October, 15, 23, 59, 59, 0, time.UTC),
		ApplicationLink:     "https://www.aicte-jk-scholarship-gov.in",
		Provider:            "AICTE",
	},
	{
		ID:          "sch-nsp-postmatric",
		Name:        "Post Matric Scholarship for Minorities",
		Description: "Central sector scholarship for minority community students from class 11 through PhD.",
		Amount:      "₹7,000 admission + tuition fee",
		Eligibility: catalog.ScholarshipEligibility{
			Categories:    []string{"general", "obc"},
			Classes:       []string{"11", "12", "ug", "pg"},
			IncomeCeiling: 200000,
		},
		ApplicationDeadline: time.Date(2026, time.September, 30, 23, 59, 59, 0, time.UTC),
		ApplicationLink:     "https://scholarships.gov.in",
		Provider:            "Ministry of Minority Affairs",
	},
	{
		ID:          "sch-inspire",
		Name:        "INSPIRE Scholarship for Higher Education",
		Description: "For students in the top 1% of class 12 boards pursuing basic and natural sciences at UG level.",
		Amount:      "₹80,000 per year",
		Eligibility: catalog.ScholarshipEligibility{
			Categories: []string{"general", "obc", "sc", "st", "ews"},
			Classes:    []string{"12", "ug"},
		},
		ApplicationDeadline: time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC),
		ApplicationLink:     "https://online-inspire.gov.in",
		Provider:            "Department of Science and Technology",
	},
}

var seedCareers = []catalog.CareerPath{
	{
		ID:          "car-software-engineer",
		Title:       "Software Engineer",
		Field:       "Engineering",
		Description: "Design, build and maintain software systems for product companies, services firms and startups.",
		Salary:      catalog.SalaryRange{Min: 400000, Max: 2500000},
		JobRoles: []catalog.JobRole{
			{
				Title:     "Backend Developer",
				Salary:    catalog.SalaryRange{Min: 500000, Max: 2000000},
				Skills:    []string{"Go", "Python", "SQL", "Distributed Systems"},
				Employers: []string{"TCS", "Infosys", "Flipkart", "Zomato"},
			},
			{
				Title:     "Mobile Developer",
				Salary:    catalog.SalaryRange{Min: 450000, Max: 1800000},
				Skills:    []string{"Kotlin", "Swift", "Flutter"},
				Employers: []string{"Paytm", "PhonePe", "Swiggy"},
			},
		},
		HigherEducation: []string{"M.Tech", "MS abroad"},
		GovernmentExams: []string{"GATE", "ISRO Scientist/Engineer"},
	},
	{
		ID:          "car-doctor",
		Title:       "Doctor",
		Field:       "Medical",
		Description: "Diagnose and treat patients in hospitals, clinics and public health programmes.",
		Salary:      catalog.SalaryRange{Min: 600000, Max: 3000000},
		JobRoles: []catalog.JobRole{
			{
				Title:     "General Physician",
				Salary:    catalog.SalaryRange{Min: 700000, Max: 2000000},
				Skills:    []string{"Clinical Diagnosis", "Patient Care"},
				Employers: []string{"AIIMS", "State Health Services", "Apollo Hospitals"},
			},
		},
		HigherEducation: []string{"MD", "MS"},
		GovernmentExams: []string{"NEET PG", "UPSC CMS"},
	},
	{
		ID:          "car-chartered-accountant",
		Title:       "Chartered Accountant",
		Field:       "Commerce",
		Description: "Audit, taxation and financial advisory for firms and corporations.",
		Salary:      catalog.SalaryRange{Min: 700000, Max: 2500000},
		JobRoles: []catalog.JobRole{
			{
				Title:     "Audit Associate",
				Salary:    catalog.SalaryRange{Min: 700000, Max: 1500000},
				Skills:    []string{"Accounting Standards", "Taxation", "Excel"},
				Employers: []string{"Deloitte", "KPMG", "EY", "PwC"},
			},
		},
		HigherEducation: []string{"CFA", "MBA Finance"},
		GovernmentExams: []string{"UPSC Indian Audit and Accounts Service"},
	},
	{
		ID:          "car-civil-services",
		Title:       "Civil Services Officer",
		Field:       "Arts",
		Description: "Administrative leadership roles in the IAS, IPS, IFS and allied services.",
		Salary:      catalog.SalaryRange{Min: 700000, Max: 1500000},
		JobRoles: []catalog.JobRole{
			{
				Title:     "IAS Officer",
				Salary:    catalog.SalaryRange{Min: 700000, Max: 1500000},
				Skills:    []string{"Public Administration", "Policy Analysis"},
				Employers: []string{"Government of India"},
			},
		},
		HigherEducation: []string{"MA Public Administration"},
		GovernmentExams: []string{"UPSC CSE", "JKPSC KAS"},
	},
}

var seedResources = []catalog.Resource{
	{
		ID:          "res-ncert-ebooks",
		Title:       "NCERT Textbooks Online",
		Description: "Free official NCERT textbooks for classes 1 to 12 in PDF format.",
		Type:        catalog.ResourceEbook,
		Category:    "School",
		Subjects:    []string{"Mathematics", "Science", "Social Science", "English"},
		URL:         "https://ncert.nic.in/textbook.php",
		Verified:    true,
	},
	{
		ID:          "res-swayam",
		Title:       "SWAYAM Online Courses",
		Description: "Free MOOCs from IITs, IIMs and central universities with certification.",
		Type:        catalog.ResourceCourse,
		Category:    "Higher Education",
		Subjects:    []string{"Engineering", "Management", "Humanities"},
		URL:         "https://swayam.gov.in",
		Verified:    true,
	},
	{
		ID:          "res-khan-academy",
		Title:       "Khan Academy",
		Description: "Video lessons and practice exercises for school mathematics and science.",
		Type:        catalog.ResourceVideo,
		Category:    "School",
		Subjects:    []string{"Mathematics", "Physics", "Chemistry", "Biology"},
		URL:         "https://www.khanacademy.org",
		Verified:    true,
	},
	{
		ID:          "res-nta-website",
		Title:       "National Testing Agency",
		Description: "Official notifications, syllabi and admit cards for JEE, NEET, CUET and UGC NET.",
		Type:        catalog.ResourceWebsite,
		Category:    "Entrance Exams",
		Subjects:    []string{"JEE", "NEET", "CUET"},
		URL:         "https://nta.ac.in",
		Verified:    true,
	},
}
