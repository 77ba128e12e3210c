package registration

import (
	"errors"
	"testing"

	"culturefest-api/internal/apperr"
)

func validSubmission() Submission {
	return Submission{
		SchoolName:   "St. Mary's HSS",
		Participants: []ParticipantInput{{Name: "Alice"}},
		Bank: BankInput{
			HolderName:           "PTA St. Mary's",
			BankName:             "State Bank",
			AccountNumber:        "123",
			ConfirmAccountNumber: "123",
			IFSC:                 "SBIN0001234",
		},
		Contact: ContactInput{Name: "R. Menon", Designation: "Teacher", Mobile: "+91 98470-12345"},
	}
}

func codes(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err=%v want ValidationError", err)
	}
	out := map[string]string{}
	for _, f := range ve.Fields {
		out[f.Field] = f.Code
	}
	return out
}

func TestSubmission_ValidAfterNormalize(t *testing.T) {
	sub := validSubmission()
	sub.Bank.IFSC = " sbin0001234 "
	sub.Participants = append(sub.Participants, ParticipantInput{Name: "  "}, ParticipantInput{Name: "  Bob  Roy "})

	n := sub.Normalize()
	if n.Bank.IFSC != "SBIN0001234" {
		t.Fatalf("ifsc=%q", n.Bank.IFSC)
	}
	if len(n.Participants) != 2 || n.Participants[1].Name != "Bob Roy" {
		t.Fatalf("participants=%+v", n.Participants)
	}
	if err := n.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSubmission_AccountNumberMismatch(t *testing.T) {
	sub := validSubmission()
	sub.Bank.ConfirmAccountNumber = "124"

	got := codes(t, sub.Normalize().Validate())
	if got["bank.confirm_account_number"] != CodeAccountNumberMismatch || len(got) != 1 {
		t.Fatalf("codes=%v", got)
	}
}

func TestSubmission_ListsEveryFailure(t *testing.T) {
	sub := Submission{
		Participants: []ParticipantInput{{Name: "", IDCardURL: "https://cdn/x.png"}},
		Bank:         BankInput{AccountNumber: "1", ConfirmAccountNumber: "1", IFSC: "BAD"},
		Contact:      ContactInput{Mobile: "12345", Email: "not-an-email"},
	}
	got := codes(t, sub.Normalize().Validate())

	want := map[string]string{
		"school_name":          CodeRequired,
		"participants[0].name": CodeRequired,
		"bank.holder_name":     CodeRequired,
		"bank.bank_name":       CodeRequired,
		"bank.ifsc":            CodeIFSC,
		"contact.name":         CodeRequired,
		"contact.designation":  CodeRequired,
		"contact.mobile":       CodeMobile,
		"contact.email":        CodeEmail,
	}
	for field, code := range want {
		if got[field] != code {
			t.Fatalf("%s=%q want %q (all=%v)", field, got[field], code, got)
		}
	}
	if _, ok := got["bank.upi_id"]; ok {
		t.Fatalf("upi id is optional")
	}
}

func TestSubmission_ParticipantsRequired(t *testing.T) {
	sub := validSubmission()
	sub.Participants = []ParticipantInput{{Name: " "}, {}}

	got := codes(t, sub.Normalize().Validate())
	if got["participants"] != CodeParticipantsRequired {
		t.Fatalf("codes=%v", got)
	}
}

func TestNormalize_StoresStrippedMobile(t *testing.T) {
	sub := validSubmission()
	sub.Contact.Mobile = " +91 - 98765 - 43210 - 12 "
	got := sub.Normalize().Contact.Mobile
	if got != "+91987654321012" {
		t.Fatalf("mobile=%q", got)
	}
	if len(got) > 20 {
		t.Fatalf("mobile %q does not fit the contact_mobile column", got)
	}
}

func TestMobileRule(t *testing.T) {
	cases := map[string]bool{
		"9847012345":       true,
		"+919847012345":    true,
		"98470 12345":      true,
		"984-701-2345":     true,
		"98470":            false,
		"+91 abc 12345678": false,
		"1234567890123456": false,
		"+91 - 98765 - 43210 - 12": true,
	}
	for mobile, ok := range cases {
		sub := validSubmission()
		sub.Contact.Mobile = mobile
		err := sub.Normalize().Validate()
		if (err == nil) != ok {
			t.Fatalf("mobile %q: err=%v want ok=%v", mobile, err, ok)
		}
	}
}
