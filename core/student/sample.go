package student

// SampleStudents are written to a new data file so that a first run has something to show.
func SampleStudents() []Student {
	return []Student{
		{Code: 1345, Name: "John Curry", Coursework1: 8, Coursework2: 15, Coursework3: 7, Exam: 45},
		{Code: 2345, Name: "Sam Sturtivant", Coursework1: 14, Coursework2: 15, Coursework3: 14, Exam: 77},
		{Code: 9876, Name: "Lee Scott", Coursework1: 17, Coursework2: 11, Coursework3: 16, Exam: 99},
		{Code: 3724, Name: "Matt Thompson", Coursework1: 19, Coursework2: 11, Coursework3: 15, Exam: 81},
		{Code: 1212, Name: "Ron Herrema", Coursework1: 14, Coursework2: 17, Coursework3: 18, Exam: 66},
		{Code: 8439, Name: "Jake Hobbs", Coursework1: 10, Coursework2: 11, Coursework3: 10, Exam: 43},
		{Code: 2344, Name: "Jo Hyde", Coursework1: 15, Coursework2: 12, Coursework3: 15, Exam: 67},
		{Code: 9384, Name: "Gareth Southgate", Coursework1: 5, Coursework2: 6, Coursework3: 8, Exam: 33},
		{Code: 8327, Name: "Alan Shearer", Coursework1: 20, Coursework2: 20, Coursework3: 20, Exam: 100},
		{Code: 2983, Name: "Les Ferdinand", Coursework1: 15, Coursework2: 17, Coursework3: 18, Exam: 92},
	}
}
