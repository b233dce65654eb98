package services

import (
	"fmt"
	"testing"

	"hms/errors"
	"hms/models"

	"gorm.io/gorm"
)

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Nguyễn Văn A  ", "nguyen van a"},
		{"ÉLODIE", "elodie"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := normalizeInput(c.in); got != c.want {
			t.Errorf("normalizeInput(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if sim := calculateSimilarity("hello", "hello"); sim != 1.0 {
		t.Errorf("identical strings similarity = %f, want 1.0", sim)
	}
	if sim := calculateSimilarity("", ""); sim != 1.0 {
		t.Errorf("empty strings similarity = %f, want 1.0", sim)
	}
	if sim := calculateSimilarity("abc", "xyz"); sim != 0.0 {
		t.Errorf("disjoint strings similarity = %f, want 0.0", sim)
	}
	if sim := calculateSimilarity("maria", "marla"); sim <= 0.7 {
		t.Errorf("one-letter difference similarity = %f, want > 0.7", sim)
	}
	// Kết quả luôn nằm trong [0, 1] kể cả khi hai chuỗi khác hẳn nhau
	for _, pair := range [][2]string{{"abc", "xyz"}, {"a", "xyz"}, {"an", "entirely different"}} {
		if sim := calculateSimilarity(pair[0], pair[1]); sim < 0 || sim > 1 {
			t.Errorf("similarity(%q, %q) = %f, outside [0, 1]", pair[0], pair[1], sim)
		}
	}
}

func TestScoreGuestPrefersExactSubstring(t *testing.T) {
	guests := []models.Guest{
		{ID: 1, Name: "Maria Santos", Email: "maria@example.com"},
		{ID: 2, Name: "John Smith", Email: "john@example.com"},
	}

	names := make([]string, 0, len(guests))
	for _, g := range guests {
		names = append(names, normalizeInput(g.Name))
	}
	matcher := createMatcher(names)

	mariaScore := scoreGuest("maria", guests[0], matcher)
	johnScore := scoreGuest("maria", guests[1], matcher)

	if mariaScore <= johnScore {
		t.Errorf("maria scored %d, john scored %d; substring match should win", mariaScore, johnScore)
	}
	if mariaScore < 20 {
		t.Errorf("substring match score = %d, want at least 20", mariaScore)
	}
}

// Trùng email khi ghi đồng thời chỉ bị chặn bởi unique index, nên lỗi
// duplicate key từ DB phải trả về client là CONFLICT chứ không phải lỗi hệ thống.
func TestTranslateGuestWriteErr(t *testing.T) {
	if err := translateGuestWriteErr(gorm.ErrDuplicatedKey); !errors.HasCode(err, errors.ErrCodeConflict) {
		t.Errorf("duplicate key error = %v, want conflict", err)
	}
	wrapped := fmt.Errorf("insert guest: %w", gorm.ErrDuplicatedKey)
	if err := translateGuestWriteErr(wrapped); !errors.HasCode(err, errors.ErrCodeConflict) {
		t.Errorf("wrapped duplicate key error = %v, want conflict", err)
	}
	other := fmt.Errorf("connection reset")
	if err := translateGuestWriteErr(other); !errors.HasCode(err, errors.ErrCodeInternal) {
		t.Errorf("unrelated error = %v, want internal", err)
	}
}

func TestScoreGuestMatchesAccentedName(t *testing.T) {
	guest := models.Guest{ID: 1, Name: "Nguyễn Văn Bình", Email: "binh@example.com"}
	matcher := createMatcher([]string{normalizeInput(guest.Name)})

	// Query không dấu vẫn phải khớp tên có dấu
	score := scoreGuest(normalizeInput("nguyen van binh"), guest, matcher)
	if score < 20 {
		t.Errorf("unaccented query score = %d, want at least 20", score)
	}
}
