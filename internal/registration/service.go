package registration

import (
	"context"
	"errors"
	"time"

	"culturefest-api/internal/apperr"

	"gorm.io/gorm"
)

var nowFunc = time.Now

type RegistrationService struct {
	DB    *gorm.DB
	Files FileDiscarder
}

// Create stores a new registration. The returned id is the only handle the
// school gets for viewing or editing it later.
func (s *RegistrationService) Create(sub Submission) (*Registration, error) {
	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	reg := fromSubmission(sub)
	if err := s.DB.Create(&reg).Error; err != nil {
		return nil, apperr.Persistence("create registration", err)
	}
	return &reg, nil
}

// Update replaces every field and participant of an existing registration.
// Concurrent edits are not guarded; the last write wins.
func (s *RegistrationService) Update(ctx context.Context, id string, sub Submission) (*Registration, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	next := fromSubmission(sub)
	edited := nowFunc()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Registration{}).Where("id = ?", id).Updates(map[string]interface{}{
			"school_name":         next.SchoolName,
			"bank_holder_name":    next.Bank.HolderName,
			"bank_name":           next.Bank.BankName,
			"bank_account_number": next.Bank.AccountNumber,
			"bank_ifsc":           next.Bank.IFSC,
			"bank_upi_id":         next.Bank.UPIID,
			"contact_name":        next.Contact.Name,
			"contact_designation": next.Contact.Designation,
			"contact_mobile":      next.Contact.Mobile,
			"contact_email":       next.Contact.Email,
			"edited_at":           edited,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("registration", id)
		}

		if err := tx.Where("registration_id = ?", id).Delete(&Participant{}).Error; err != nil {
			return err
		}
		for i := range next.Participants {
			next.Participants[i].RegistrationID = id
		}
		if len(next.Participants) > 0 {
			if err := tx.Create(&next.Participants).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Persistence("update registration", err)
	}

	if s.Files != nil {
		s.Files.Discard(ctx, orphanedCards(current.Participants, next.Participants)...)
	}
	return s.Get(id)
}

func (s *RegistrationService) Get(id string) (*Registration, error) {
	var reg Registration
	err := s.DB.Preload("Participants", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).Where("id = ?", id).First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("registration", id)
		}
		return nil, apperr.Persistence("read registration", err)
	}
	return &reg, nil
}

func (s *RegistrationService) List() ([]Registration, error) {
	var out []Registration
	err := s.DB.Preload("Participants", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).Order("created_at desc, id asc").Find(&out).Error
	if err != nil {
		return nil, apperr.Persistence("list registrations", err)
	}
	return out, nil
}

func fromSubmission(sub Submission) Registration {
	reg := Registration{
		SchoolName: sub.SchoolName,
		Bank: BankDetails{
			HolderName:    sub.Bank.HolderName,
			BankName:      sub.Bank.BankName,
			AccountNumber: sub.Bank.AccountNumber,
			IFSC:          sub.Bank.IFSC,
			UPIID:         sub.Bank.UPIID,
		},
		Contact: ContactPerson(sub.Contact),
	}
	for i, p := range sub.Participants {
		reg.Participants = append(reg.Participants, Participant{
			Position:       i + 1,
			Name:           p.Name,
			IDCardURL:      p.IDCardURL,
			IDCardPublicID: p.IDCardPublicID,
		})
	}
	return reg
}

// orphanedCards lists id-card objects referenced before an edit but not after.
func orphanedCards(before, after []Participant) []string {
	kept := map[string]bool{}
	for _, p := range after {
		kept[p.IDCardPublicID] = true
	}
	var out []string
	for _, p := range before {
		if p.IDCardPublicID != "" && !kept[p.IDCardPublicID] {
			out = append(out, p.IDCardPublicID)
		}
	}
	return out
}
