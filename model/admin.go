package model

type Admin struct {
	DTO
	Name     string `json:"name"`
	Email    string `gorm:"unique;size:120" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"default:admin" json:"role"`
}
