package service

import (
	"fmt"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/attempts/model"
	questionModel "quizku_backend/internals/features/quizzes/questions/model"
)

// Score menghitung skor akhir dan skor maksimum sebuah pengerjaan kuis.
//
// selections memetakan posisi soal (0-based, urutan questions) ke index opsi
// yang dipilih. Aturan per soal:
//   - total selalu bertambah correct_score (maksimum tidak tergantung dijawab/tidak)
//   - tidak dijawab  → kontribusi 0
//   - jawaban benar  → final += correct_score
//   - jawaban salah  → final -= negative_score
//
// final boleh negatif dan tidak pernah di-clamp. Fungsi ini pure: input sama
// selalu menghasilkan output sama.
func Score(questions []questionModel.QuestionModel, selections map[int]int) (final, total float64) {
	for i, q := range questions {
		total += q.QuestionCorrectScore

		sel, answered := selections[i]
		if !answered {
			continue
		}
		if sel == q.QuestionCorrect {
			final += q.QuestionCorrectScore
		} else {
			final -= q.QuestionNegativeScore
		}
	}
	return final, total
}

// ValidateSelections menolak selection yang tidak mungkin dihasilkan UI yang
// benar: posisi soal di luar daftar, atau index opsi di luar jangkauan opsi
// soal tersebut. Baris dari luar boundary tidak boleh sampai ke penilaian.
func ValidateSelections(questions []questionModel.QuestionModel, selections map[int]int) error {
	for pos, sel := range selections {
		if pos < 0 || pos >= len(questions) {
			return fmt.Errorf("posisi soal %d di luar jangkauan (0-%d)", pos, len(questions)-1)
		}
		if sel < 0 || sel >= len(questions[pos].QuestionOptions) {
			return fmt.Errorf("pilihan %d untuk soal posisi %d di luar jangkauan opsi", sel, pos)
		}
	}
	return nil
}

// BuildAnswerRows menyusun baris answers untuk attempt yang sudah dibuat.
// Soal yang dilewati tidak menghasilkan baris.
func BuildAnswerRows(attemptID uuid.UUID, questions []questionModel.QuestionModel, selections map[int]int) []model.AnswerModel {
	rows := make([]model.AnswerModel, 0, len(selections))
	for i, q := range questions {
		sel, answered := selections[i]
		if !answered {
			continue
		}
		rows = append(rows, model.AnswerModel{
			AnswerAttemptID:      attemptID,
			AnswerQuestionID:     q.QuestionID,
			AnswerSelectedOption: sel,
		})
	}
	return rows
}
