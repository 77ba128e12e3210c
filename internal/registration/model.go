package registration

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Registration struct {
	ID           string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SchoolName   string        `json:"school_name" gorm:"type:text;not null"`
	Participants []Participant `json:"participants" gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE"`
	Bank         BankDetails   `json:"bank" gorm:"embedded"`
	Contact      ContactPerson `json:"contact" gorm:"embedded"`
	CreatedAt    time.Time     `json:"created_at" gorm:"autoCreateTime"`
	EditedAt     *time.Time    `json:"edited_at" gorm:"column:edited_at"`
}

func (Registration) TableName() string {
	return "registrations"
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type Participant struct {
	ID             uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	RegistrationID string `json:"-" gorm:"type:varchar(36);not null;index"`
	Position       int    `json:"position" gorm:"not null"`
	Name           string `json:"name" gorm:"type:text;not null"`
	IDCardURL      string `json:"id_card_url" gorm:"column:id_card_url;type:text"`
	IDCardPublicID string `json:"id_card_public_id" gorm:"column:id_card_public_id;type:text"`
}

func (Participant) TableName() string {
	return "registration_participants"
}

type BankDetails struct {
	HolderName    string `json:"holder_name" gorm:"column:bank_holder_name;type:text"`
	BankName      string `json:"bank_name" gorm:"column:bank_name;type:text"`
	AccountNumber string `json:"account_number" gorm:"column:bank_account_number;type:varchar(40)"`
	IFSC          string `json:"ifsc" gorm:"column:bank_ifsc;type:varchar(11)"`
	UPIID         string `json:"upi_id" gorm:"column:bank_upi_id;type:text"`
}

type ContactPerson struct {
	Name        string `json:"name" gorm:"column:contact_name;type:text"`
	Designation string `json:"designation" gorm:"column:contact_designation;type:text"`
	Mobile      string `json:"mobile" gorm:"column:contact_mobile;type:varchar(20)"`
	Email       string `json:"email" gorm:"column:contact_email;type:text"`
}

// Submission is the registration form as sent by a school.
type Submission struct {
	SchoolName   string             `json:"school_name" validate:"required"`
	Participants []ParticipantInput `json:"participants" validate:"dive"`
	Bank         BankInput          `json:"bank"`
	Contact      ContactInput       `json:"contact"`
}

type ParticipantInput struct {
	Name           string `json:"name" validate:"required"`
	IDCardURL      string `json:"id_card_url"`
	IDCardPublicID string `json:"id_card_public_id"`
}

type BankInput struct {
	HolderName           string `json:"holder_name" validate:"required"`
	BankName             string `json:"bank_name" validate:"required"`
	AccountNumber        string `json:"account_number" validate:"required"`
	ConfirmAccountNumber string `json:"confirm_account_number" validate:"required"`
	IFSC                 string `json:"ifsc" validate:"required,ifsc"`
	UPIID                string `json:"upi_id"`
}

type ContactInput struct {
	Name        string `json:"name" validate:"required"`
	Designation string `json:"designation" validate:"required"`
	Mobile      string `json:"mobile" validate:"required,mobile"`
	Email       string `json:"email" validate:"omitempty,email"`
}
