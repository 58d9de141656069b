package service

// Qualification catalogues offered per subject. "General" is the fallback
// bucket for tutors without a declared subject.
var subjectQualifications = map[string][]string{
	"Law": {
		"Bar Certified",
		"JD",
		"LLM",
		"Legal Writing Specialist",
		"LLB",
		"Paralegal Certified",
	},
	"Biology": {
		"Lab Certified",
		"Pre-Med Mentor",
		"PhD Biology",
		"AP Bio Certified",
		"BSc Biology",
		"MSc Biology",
	},
	"Math": {
		"IMO Participant",
		"Calculus Specialist",
		"Statistics Pro",
		"PhD Mathematics",
		"MSc Mathematics",
		"AP Calculus Certified",
	},
	"Physics": {
		"PhD Physics",
		"MSc Physics",
		"BSc Physics",
		"AP Physics Certified",
		"Lab Experience",
	},
	"Chemistry": {
		"PhD Chemistry",
		"MSc Chemistry",
		"Lab Certified",
		"AP Chemistry Certified",
		"Organic Chemistry Specialist",
	},
	"Computer Science": {
		"BSc Computer Science",
		"MSc Computer Science",
		"PhD Computer Science",
		"Software Engineer",
		"Full Stack Developer",
		"Data Scientist",
	},
	"Medicine": {
		"MD",
		"MBBS",
		"Pre-Med Specialist",
		"UCAT Coach",
		"MCAT Coach",
		"Clinical Experience",
	},
	"Economics": {
		"MBA",
		"MA Economics",
		"PhD Economics",
		"CFA",
		"Financial Analyst",
	},
	"English": {
		"MA English Literature",
		"PhD English",
		"Creative Writing MFA",
		"IELTS Certified",
		"Essay Specialist",
	},
	"General": {
		"Teaching Certification",
		"IB Examiner",
		"Cambridge Certified",
		"NCEA Specialist",
		"Curriculum Developer",
	},
}

const generalSubject = "General"

var subjectOrder = []string{
	"Law", "Biology", "Math", "Physics", "Chemistry",
	"Computer Science", "Medicine", "Economics", "English", generalSubject,
}

// QualificationsForSubject lists the standard qualifications a tutor can
// claim for a subject. Unknown or empty subjects fall back to the General
// catalogue.
func QualificationsForSubject(subject string) []string {
	quals, ok := subjectQualifications[subject]
	if !ok {
		quals = subjectQualifications[generalSubject]
	}
	out := make([]string, len(quals))
	copy(out, quals)
	return out
}

// Subjects lists the subjects with a dedicated qualification catalogue.
func Subjects() []string {
	out := make([]string, len(subjectOrder))
	copy(out, subjectOrder)
	return out
}

func isKnownQualification(subject, qualification string) bool {
	for _, q := range QualificationsForSubject(subject) {
		if q == qualification {
			return true
		}
	}
	return false
}
