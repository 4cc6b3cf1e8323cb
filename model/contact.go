package model

type Contact struct {
	DTO
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `gorm:"default:General Inquiry" json:"subject"`
	Message   string `json:"message"`
	IsRead    bool   `gorm:"default:false" json:"isRead"`
	IsReplied bool   `gorm:"default:false" json:"isReplied"`
	ReplyNote string `json:"replyNote"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UpdateContactInput struct {
	IsRead    *bool   `json:"isRead"`
	IsReplied *bool   `json:"isReplied"`
	ReplyNote *string `json:"replyNote"`
}
