package school

import (
	"errors"
	"testing"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/testdb"

	"gorm.io/gorm"
)

// scoreForTest stands in for the score model so deletes can cascade.
type scoreForTest struct {
	JudgeID    string `gorm:"primaryKey"`
	SchoolID   string `gorm:"primaryKey"`
	CategoryID string `gorm:"primaryKey"`
	Score      int
}

func (scoreForTest) TableName() string { return scoresTable }

func newService(t *testing.T) (*SchoolService, *gorm.DB) {
	t.Helper()
	db := testdb.New(t, &School{}, &scoreForTest{})
	return &SchoolService{DB: db}, db
}

func intPtr(n int) *int { return &n }

func TestParseTier(t *testing.T) {
	cases := map[string]Tier{
		"senior":     TierSenior,
		" JUNIOR ":   TierJunior,
		"Sub-Junior": TierSubJunior,
		"sub junior": TierSubJunior,
		"sub_junior": TierSubJunior,
	}
	for in, want := range cases {
		got, err := ParseTier(in)
		if err != nil || got != want {
			t.Fatalf("ParseTier(%q)=%q,%v want %q", in, got, err, want)
		}
	}
	if _, err := ParseTier("middle"); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(Tiers()) != 3 || Tiers()[0] != TierSenior || !TierJunior.Valid() || Tier("x").Valid() {
		t.Fatalf("tier helpers mismatch")
	}
}

func TestSchoolService_CreateAndList(t *testing.T) {
	svc, _ := newService(t)

	for _, in := range []SchoolInput{
		{Name: "  zeta   Public School ", Tier: "senior"},
		{Name: "Alpha Academy", Tier: "Senior"},
		{Name: "Beta School", Tier: "junior"},
	} {
		if _, err := svc.Create(in); err != nil {
			t.Fatalf("Create(%+v): %v", in, err)
		}
	}

	all, err := svc.List(nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("List: %v len=%d", err, len(all))
	}
	if all[0].Name != "Alpha Academy" || all[2].Name != "zeta Public School" {
		t.Fatalf("order=%v", []string{all[0].Name, all[1].Name, all[2].Name})
	}
	if all[0].ID == "" {
		t.Fatalf("expected generated id")
	}

	senior := TierSenior
	onlySenior, _ := svc.List(&senior)
	if len(onlySenior) != 2 {
		t.Fatalf("senior=%d want 2", len(onlySenior))
	}
}

func TestSchoolService_Create_Validation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(SchoolInput{Name: "  ", Tier: "college"})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || len(ve.Fields) != 2 {
		t.Fatalf("err=%v want two field errors", err)
	}
}

func TestSchoolService_Update_TierChangeClearsSerial(t *testing.T) {
	svc, db := newService(t)

	s, _ := svc.Create(SchoolInput{Name: "Alpha", Tier: "Senior"})
	db.Model(&School{}).Where("id = ?", s.ID).Update("serial_no", 3)

	same, err := svc.Update(s.ID, SchoolInput{Name: "Alpha Renamed", Tier: "Senior"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if same.SerialNo == nil || *same.SerialNo != 3 || same.Name != "Alpha Renamed" {
		t.Fatalf("same tier should keep serial: %+v", same)
	}

	moved, err := svc.Update(s.ID, SchoolInput{Name: "Alpha Renamed", Tier: "Junior"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if moved.SerialNo != nil || moved.Tier != TierJunior {
		t.Fatalf("tier change should clear serial: %+v", moved)
	}

	if _, err := svc.Update("missing", SchoolInput{Name: "x", Tier: "Senior"}); !apperr.IsNotFound(err) {
		t.Fatalf("err=%v want NotFound", err)
	}
}

func TestSchoolService_Delete_CascadesScores(t *testing.T) {
	svc, db := newService(t)

	keep, _ := svc.Create(SchoolInput{Name: "Keep", Tier: "Senior"})
	gone, _ := svc.Create(SchoolInput{Name: "Gone", Tier: "Senior"})
	db.Create(&[]scoreForTest{
		{JudgeID: "j1", SchoolID: keep.ID, CategoryID: "c1", Score: 5},
		{JudgeID: "j1", SchoolID: gone.ID, CategoryID: "c1", Score: 7},
	})

	deleted, err := svc.Delete(gone.ID)
	if err != nil || deleted.Name != "Gone" {
		t.Fatalf("Delete: %v", err)
	}

	var scores []scoreForTest
	db.Find(&scores)
	if len(scores) != 1 || scores[0].SchoolID != keep.ID {
		t.Fatalf("scores=%+v", scores)
	}

	if _, err := svc.Delete(gone.ID); !apperr.IsNotFound(err) {
		t.Fatalf("second delete err=%v want NotFound", err)
	}
}

func TestSchoolService_PerformanceOrder(t *testing.T) {
	svc, db := newService(t)

	names := []string{"Delta", "Charlie", "Bravo", "Alpha"}
	serials := []*int{intPtr(2), nil, intPtr(1), nil}
	for i, n := range names {
		s, _ := svc.Create(SchoolInput{Name: n, Tier: "Sub-Junior"})
		if serials[i] != nil {
			db.Model(&School{}).Where("id = ?", s.ID).Update("serial_no", *serials[i])
		}
	}
	_, _ = svc.Create(SchoolInput{Name: "Other Tier", Tier: "Senior"})

	got, err := svc.PerformanceOrder(TierSubJunior)
	if err != nil {
		t.Fatalf("PerformanceOrder: %v", err)
	}
	want := []string{"Bravo", "Delta", "Alpha", "Charlie"}
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("pos %d=%q want %q", i, got[i].Name, want[i])
		}
	}
}

func TestSchoolService_DBError(t *testing.T) {
	svc, db := newService(t)
	testdb.Break(t, db)

	_, err := svc.List(nil)
	var pe *apperr.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err=%v want PersistenceError", err)
	}
}
