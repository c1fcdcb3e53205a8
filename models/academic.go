package models

// Enrollment is one (student, course) registration for the term, carrying the
// letter grade received. Table: krs.
type Enrollment struct {
	ID         uint   `gorm:"primaryKey"                     json:"id"`
	NIM        string `gorm:"column:nim;size:20;not null;index" json:"nim"`
	CourseCode string `gorm:"column:kode_mk;size:20;not null" json:"kode_mk"`
	Grade      string `gorm:"column:nilai;size:2;not null"   json:"nilai"`
}

func (Enrollment) TableName() string { return "krs" }

// Course is the course catalog entry. Table: mata_kuliah.
type Course struct {
	Code    string `gorm:"column:kode_mk;size:20;primaryKey" json:"kode_mk"`
	Name    string `gorm:"column:nama_mk;size:100;not null"  json:"nama_mk"`
	Credits int    `gorm:"column:sks;not null"               json:"sks"`
}

func (Course) TableName() string { return "mata_kuliah" }

// GradeWeight maps a letter grade to its numeric point value. Table: bobot_nilai.
type GradeWeight struct {
	Grade  string  `gorm:"column:nilai;size:2;primaryKey" json:"nilai"`
	Weight float64 `gorm:"column:bobot;not null"          json:"bobot"`
}

func (GradeWeight) TableName() string { return "bobot_nilai" }
