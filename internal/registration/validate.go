package registration

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"culturefest-api/internal/apperr"

	"github.com/go-playground/validator/v10"
)

const (
	CodeRequired              = "required"
	CodeAccountNumberMismatch = "accountNumberMismatch"
	CodeMobile                = "mobile"
	CodeIFSC                  = "ifsc"
	CodeEmail                 = "email"
	CodeParticipantsRequired  = "participantsRequired"
)

var (
	mobilePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	ifscPattern   = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	mobileStrip   = strings.NewReplacer(" ", "", "-", "")
)

var validate = newValidator()

var messages = map[string]string{
	CodeRequired: "is required",
	CodeMobile:   "must be 10 to 15 digits, optionally starting with +",
	CodeIFSC:     "must be an 11 character IFSC code such as SBIN0001234",
	CodeEmail:    "must be a valid email address",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation(CodeMobile, func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(mobileStrip.Replace(fl.Field().String()))
	})
	_ = v.RegisterValidation(CodeIFSC, func(fl validator.FieldLevel) bool {
		return ifscPattern.MatchString(fl.Field().String())
	})
	return v
}

// Normalize trims every string, uppercases the IFSC code, strips spaces and
// dashes from the mobile number and drops participant rows that are entirely
// blank.
func (s Submission) Normalize() Submission {
	out := Submission{
		SchoolName: collapse(s.SchoolName),
		Bank: BankInput{
			HolderName:           collapse(s.Bank.HolderName),
			BankName:             collapse(s.Bank.BankName),
			AccountNumber:        strings.TrimSpace(s.Bank.AccountNumber),
			ConfirmAccountNumber: strings.TrimSpace(s.Bank.ConfirmAccountNumber),
			IFSC:                 strings.ToUpper(strings.TrimSpace(s.Bank.IFSC)),
			UPIID:                strings.TrimSpace(s.Bank.UPIID),
		},
		Contact: ContactInput{
			Name:        collapse(s.Contact.Name),
			Designation: collapse(s.Contact.Designation),
			Mobile:      mobileStrip.Replace(strings.TrimSpace(s.Contact.Mobile)),
			Email:       strings.TrimSpace(s.Contact.Email),
		},
	}
	for _, p := range s.Participants {
		p = ParticipantInput{
			Name:           collapse(p.Name),
			IDCardURL:      strings.TrimSpace(p.IDCardURL),
			IDCardPublicID: strings.TrimSpace(p.IDCardPublicID),
		}
		if p.Name == "" && p.IDCardURL == "" && p.IDCardPublicID == "" {
			continue
		}
		out.Participants = append(out.Participants, p)
	}
	return out
}

// Validate reports every failing field of a normalized submission at once.
func (s Submission) Validate() error {
	verr := &apperr.ValidationError{}

	if err := validate.Struct(s); err != nil {
		var fields validator.ValidationErrors
		if !errors.As(err, &fields) {
			return err
		}
		for _, fe := range fields {
			path := fieldPath(fe.Namespace())
			verr.Add(path, fe.Tag(), path+" "+messages[fe.Tag()])
		}
	}

	if len(s.Participants) == 0 {
		verr.Add("participants", CodeParticipantsRequired, "at least one participant is required")
	}
	if s.Bank.AccountNumber != "" && s.Bank.ConfirmAccountNumber != "" &&
		s.Bank.AccountNumber != s.Bank.ConfirmAccountNumber {
		verr.Add("bank.confirm_account_number", CodeAccountNumberMismatch, "account numbers do not match")
	}
	return verr.OrNil()
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
