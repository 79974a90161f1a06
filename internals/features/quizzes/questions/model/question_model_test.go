package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestQuestionValidate(t *testing.T) {
	valid := QuestionModel{
		QuestionTitle:         "Soal",
		QuestionOptions:       []string{"A", "B", "C"},
		QuestionCorrect:       1,
		QuestionCorrectScore:  10,
		QuestionNegativeScore: 5,
	}

	cases := []struct {
		name    string
		mutate  func(q *QuestionModel)
		wantErr bool
	}{
		{"valid", func(q *QuestionModel) {}, false},
		{"opsi kurang dari dua", func(q *QuestionModel) { q.QuestionOptions = []string{"A"} }, true},
		{"opsi kosong", func(q *QuestionModel) { q.QuestionOptions = nil }, true},
		{"index jawaban negatif", func(q *QuestionModel) { q.QuestionCorrect = -1 }, true},
		{"index jawaban di luar opsi", func(q *QuestionModel) { q.QuestionCorrect = 3 }, true},
		{"correct_score negatif", func(q *QuestionModel) { q.QuestionCorrectScore = -1 }, true},
		{"negative_score negatif", func(q *QuestionModel) { q.QuestionNegativeScore = -1 }, true},
		{"index terakhir masih sah", func(q *QuestionModel) { q.QuestionCorrect = 2 }, false},
		{"skor nol sah", func(q *QuestionModel) {
			q.QuestionCorrectScore = 0
			q.QuestionNegativeScore = 0
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := valid
			q.QuestionOptions = append([]string(nil), valid.QuestionOptions...)
			tc.mutate(&q)
			err := q.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

// Penyajian kuis dan penilaian submit memakai FilterValid yang sama —
// soal korup hilang dari keduanya dengan posisi sisa yang selaras.
func TestFilterValid(t *testing.T) {
	good1 := QuestionModel{
		QuestionID:      uuid.New(),
		QuestionTitle:   "Soal 1",
		QuestionOptions: []string{"A", "B"},
		QuestionCorrect: 0,
	}
	broken := QuestionModel{
		QuestionID:      uuid.New(),
		QuestionTitle:   "Soal korup",
		QuestionOptions: []string{"A", "B"},
		QuestionCorrect: 5, // index di luar opsi
	}
	good2 := QuestionModel{
		QuestionID:      uuid.New(),
		QuestionTitle:   "Soal 2",
		QuestionOptions: []string{"A", "B", "C"},
		QuestionCorrect: 2,
	}

	got := FilterValid([]QuestionModel{good1, broken, good2})
	if len(got) != 2 {
		t.Fatalf("jumlah soal valid = %d, want 2", len(got))
	}
	if got[0].QuestionID != good1.QuestionID || got[1].QuestionID != good2.QuestionID {
		t.Error("urutan soal valid harus dipertahankan")
	}

	if got := FilterValid(nil); len(got) != 0 {
		t.Errorf("daftar kosong harus tetap kosong, dapat %d", len(got))
	}
}
