package models

// TranscriptEntry is one joined row of a student's transcript: the course,
// its credit hours, and the grade with its weight. Built per request, never
// persisted.
type TranscriptEntry struct {
	CourseName  string  `gorm:"column:nama_mk"     json:"nama_mk"`
	Credits     int     `gorm:"column:sks"         json:"sks"`
	LetterGrade string  `gorm:"column:nilai_huruf" json:"nilai_huruf"`
	GradeWeight float64 `gorm:"column:nilai_angka" json:"nilai_angka"`
}

// GradeIndex is the computed term grade index (IPS) for one student.
type GradeIndex struct {
	NIM          string            `json:"nim"`
	TotalCredits int               `json:"total_sks"`
	IPS          float64           `json:"ips"`
	Transcript   []TranscriptEntry `json:"detail_transkrip"`
}
