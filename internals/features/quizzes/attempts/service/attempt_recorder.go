package service

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/attempts/model"
	questionModel "quizku_backend/internals/features/quizzes/questions/model"
)

// AttemptStore adalah akses tulis/baca minimal yang dibutuhkan perekaman
// attempt. Implementasi produksi ada di repository (GORM).
type AttemptStore interface {
	// (nil, nil) kalau belum ada attempt untuk pasangan ini
	FindByUserAndQuiz(userID, quizID uuid.UUID) (*model.AttemptModel, error)
	CreateAttempt(attempt *model.AttemptModel) error
	CreateAnswers(rows []model.AnswerModel) error
}

type SubmitResult struct {
	Final float64
	Total float64

	Recorded         bool
	AlreadyCompleted bool
	Attempt          *model.AttemptModel
}

// SubmitAttempt menjalankan alur nilai-lalu-catat:
//
//  1. Skor dihitung sekali, lokal, dan selalu dikembalikan — juga untuk
//     anonim dan saat persistensi gagal. Kegagalan tulis tidak pernah
//     menjadi error untuk pemanggil.
//  2. Anonim (userID nil): tidak ada yang dicatat.
//  3. User login: satu baris attempt dulu. Kalau insert gagal, berhenti —
//     answers tidak boleh ada tanpa attempt yang berhasil dibuat.
//  4. Sesudah attempt ada, answers di-insert sekali sebagai batch.
//     Kegagalan batch hanya dicatat di log; attempt tidak di-rollback.
//
// Submit ulang untuk (user, quiz) yang sama tidak membuat baris baru:
// attempt yang sudah ada dikembalikan apa adanya (guard double-submit).
func SubmitAttempt(
	store AttemptStore,
	userID uuid.UUID,
	quizID uuid.UUID,
	questions []questionModel.QuestionModel,
	selections map[int]int,
) SubmitResult {
	final, total := Score(questions, selections)
	res := SubmitResult{Final: final, Total: total}

	if userID == uuid.Nil {
		log.Println("[INFO] Submit anonim: skor dihitung, attempt tidak dicatat")
		return res
	}

	// Guard double-submit: attempt lama menang
	if existing, err := store.FindByUserAndQuiz(userID, quizID); err != nil {
		log.Printf("[WARN] Gagal cek attempt existing: %v", err)
	} else if existing != nil {
		res.Final = existing.AttemptScore
		res.Recorded = true
		res.AlreadyCompleted = true
		res.Attempt = existing
		return res
	}

	attempt := &model.AttemptModel{
		AttemptUserID: userID,
		AttemptQuizID: quizID,
		AttemptScore:  final,
	}
	if err := store.CreateAttempt(attempt); err != nil {
		// Race dengan submit kembar: unique index yang menang, ambil yang tercatat
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			if existing, ferr := store.FindByUserAndQuiz(userID, quizID); ferr == nil && existing != nil {
				res.Final = existing.AttemptScore
				res.Recorded = true
				res.AlreadyCompleted = true
				res.Attempt = existing
				return res
			}
		}
		log.Printf("[ERROR] Gagal simpan attempt (user=%s quiz=%s): %v", userID, quizID, err)
		return res
	}

	res.Recorded = true
	res.Attempt = attempt

	rows := BuildAnswerRows(attempt.AttemptID, questions, selections)
	if len(rows) == 0 {
		return res
	}
	if err := store.CreateAnswers(rows); err != nil {
		// Attempt tanpa answers adalah state akhir yang sah (degraded)
		log.Printf("[ERROR] Gagal simpan answers (attempt=%s): %v", attempt.AttemptID, err)
	}
	return res
}
