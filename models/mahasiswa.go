package models

// Mahasiswa is one registered student.
type Mahasiswa struct {
	NIM      string `gorm:"column:nim;size:20;primaryKey" json:"nim"`
	Nama     string `gorm:"column:nama;size:100;not null" json:"nama"`
	Jurusan  string `gorm:"column:jurusan;size:100;not null" json:"jurusan"`
	Angkatan int    `gorm:"column:angkatan;not null"      json:"angkatan"`
}

func (Mahasiswa) TableName() string { return "mahasiswa" }
