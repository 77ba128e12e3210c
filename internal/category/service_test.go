package category

import (
	"errors"
	"testing"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/testdb"
)

type scoreForTest struct {
	JudgeID    string `gorm:"primaryKey"`
	SchoolID   string `gorm:"primaryKey"`
	CategoryID string `gorm:"primaryKey"`
	Score      int
}

func (scoreForTest) TableName() string { return scoresTable }

func intPtr(n int) *int { return &n }

func TestCategoryService_CreateAppendsPosition(t *testing.T) {
	svc := &CategoryService{DB: testdb.New(t, &Category{})}

	dance, err := svc.Create(CategoryInput{Name: "Dance"})
	if err != nil || dance.Position != 0 {
		t.Fatalf("first=%+v,%v", dance, err)
	}
	costume, _ := svc.Create(CategoryInput{Name: "Costume"})
	if costume.Position != 1 {
		t.Fatalf("second position=%d want 1", costume.Position)
	}
	theme, _ := svc.Create(CategoryInput{Name: "Theme", Position: intPtr(0)})

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := []string{list[0].Name, list[1].Name, list[2].Name}
	want := []string{dance.Name, theme.Name, costume.Name}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order=%v want %v", got, want)
		}
	}
}

func TestCategoryService_DuplicateName(t *testing.T) {
	svc := &CategoryService{DB: testdb.New(t, &Category{})}
	dance, _ := svc.Create(CategoryInput{Name: "Dance"})
	theme, _ := svc.Create(CategoryInput{Name: "Theme"})

	_, err := svc.Create(CategoryInput{Name: "  dance "})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || !ve.Has("duplicate") {
		t.Fatalf("err=%v want duplicate", err)
	}

	if _, err := svc.Update(theme.ID, CategoryInput{Name: "DANCE"}); !apperr.IsValidation(err) {
		t.Fatalf("rename onto existing err=%v", err)
	}
	renamed, err := svc.Update(dance.ID, CategoryInput{Name: "Dance Performance", Position: intPtr(5)})
	if err != nil || renamed.Name != "Dance Performance" || renamed.Position != 5 {
		t.Fatalf("Update=%+v,%v", renamed, err)
	}
}

func TestCategoryService_DeleteCascades(t *testing.T) {
	db := testdb.New(t, &Category{}, &scoreForTest{})
	svc := &CategoryService{DB: db}
	cat, _ := svc.Create(CategoryInput{Name: "Theme"})
	db.Create(&scoreForTest{JudgeID: "j", SchoolID: "s", CategoryID: cat.ID, Score: 3})

	if _, err := svc.Delete(cat.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var n int64
	db.Model(&scoreForTest{}).Count(&n)
	if n != 0 {
		t.Fatalf("scores left=%d", n)
	}
	if _, err := svc.Delete(cat.ID); !apperr.IsNotFound(err) {
		t.Fatalf("err=%v want NotFound", err)
	}
}
