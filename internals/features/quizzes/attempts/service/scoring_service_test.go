package service

import (
	"testing"

	"github.com/google/uuid"

	questionModel "quizku_backend/internals/features/quizzes/questions/model"
)

func makeQuestions() []questionModel.QuestionModel {
	return []questionModel.QuestionModel{
		{
			QuestionID:            uuid.New(),
			QuestionTitle:         "Soal 1",
			QuestionOptions:       []string{"A", "B", "C", "D"},
			QuestionCorrect:       2,
			QuestionCorrectScore:  10,
			QuestionNegativeScore: 5,
		},
		{
			QuestionID:            uuid.New(),
			QuestionTitle:         "Soal 2",
			QuestionOptions:       []string{"A", "B", "C"},
			QuestionCorrect:       0,
			QuestionCorrectScore:  5,
			QuestionNegativeScore: 2,
		},
	}
}

func TestScore(t *testing.T) {
	questions := makeQuestions()

	cases := []struct {
		name       string
		selections map[int]int
		wantFinal  float64
		wantTotal  float64
	}{
		{
			name:       "benar satu salah satu",
			selections: map[int]int{0: 2, 1: 1},
			wantFinal:  8, // 10 - 2
			wantTotal:  15,
		},
		{
			name:       "tidak menjawab sama sekali",
			selections: map[int]int{},
			wantFinal:  0,
			wantTotal:  15,
		},
		{
			name:       "semua benar",
			selections: map[int]int{0: 2, 1: 0},
			wantFinal:  15,
			wantTotal:  15,
		},
		{
			name:       "semua salah skor bisa negatif",
			selections: map[int]int{0: 0, 1: 1},
			wantFinal:  -7,
			wantTotal:  15,
		},
		{
			name:       "sebagian dilewati kontribusi nol",
			selections: map[int]int{1: 0},
			wantFinal:  5,
			wantTotal:  15,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			final, total := Score(questions, tc.selections)
			if final != tc.wantFinal || total != tc.wantTotal {
				t.Errorf("Score() = (%v, %v), want (%v, %v)", final, total, tc.wantFinal, tc.wantTotal)
			}
		})
	}
}

func TestScoreEmptyQuestions(t *testing.T) {
	final, total := Score(nil, map[int]int{})
	if final != 0 || total != 0 {
		t.Errorf("Score(nil) = (%v, %v), want (0, 0)", final, total)
	}
}

func TestScoreIsPure(t *testing.T) {
	questions := makeQuestions()
	selections := map[int]int{0: 2, 1: 1}

	f1, t1 := Score(questions, selections)
	f2, t2 := Score(questions, selections)
	if f1 != f2 || t1 != t2 {
		t.Errorf("dua kali panggil hasilnya beda: (%v,%v) vs (%v,%v)", f1, t1, f2, t2)
	}
}

func TestValidateSelections(t *testing.T) {
	questions := makeQuestions()

	cases := []struct {
		name       string
		selections map[int]int
		wantErr    bool
	}{
		{"valid", map[int]int{0: 3, 1: 2}, false},
		{"kosong valid", map[int]int{}, false},
		{"posisi negatif", map[int]int{-1: 0}, true},
		{"posisi di luar daftar", map[int]int{2: 0}, true},
		{"opsi negatif", map[int]int{0: -1}, true},
		{"opsi di luar jangkauan", map[int]int{1: 3}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSelections(questions, tc.selections)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateSelections() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestBuildAnswerRows(t *testing.T) {
	questions := makeQuestions()
	attemptID := uuid.New()

	rows := BuildAnswerRows(attemptID, questions, map[int]int{1: 2})
	if len(rows) != 1 {
		t.Fatalf("jumlah baris = %d, want 1 (soal dilewati tidak menghasilkan baris)", len(rows))
	}
	if rows[0].AnswerAttemptID != attemptID {
		t.Errorf("AnswerAttemptID = %s, want %s", rows[0].AnswerAttemptID, attemptID)
	}
	if rows[0].AnswerQuestionID != questions[1].QuestionID {
		t.Errorf("AnswerQuestionID = %s, want %s", rows[0].AnswerQuestionID, questions[1].QuestionID)
	}
	if rows[0].AnswerSelectedOption != 2 {
		t.Errorf("AnswerSelectedOption = %d, want 2", rows[0].AnswerSelectedOption)
	}

	if got := BuildAnswerRows(attemptID, questions, map[int]int{}); len(got) != 0 {
		t.Errorf("tanpa jawaban harusnya tanpa baris, dapat %d", len(got))
	}
}
