package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/attempts/model"
)

// fakeStore merekam panggilan dan bisa dipaksa gagal per operasi.
type fakeStore struct {
	existing *model.AttemptModel

	findErr    error
	createErr  error
	answersErr error

	createdAttempt *model.AttemptModel
	createdAnswers []model.AnswerModel
}

func (f *fakeStore) FindByUserAndQuiz(userID, quizID uuid.UUID) (*model.AttemptModel, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.existing, nil
}

func (f *fakeStore) CreateAttempt(attempt *model.AttemptModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	attempt.AttemptID = uuid.New()
	f.createdAttempt = attempt
	return nil
}

func (f *fakeStore) CreateAnswers(rows []model.AnswerModel) error {
	if f.answersErr != nil {
		return f.answersErr
	}
	f.createdAnswers = rows
	return nil
}

func TestSubmitAttemptAnonymous(t *testing.T) {
	store := &fakeStore{}
	questions := makeQuestions()

	res := SubmitAttempt(store, uuid.Nil, uuid.New(), questions, map[int]int{0: 2})

	if res.Final != 10 || res.Total != 15 {
		t.Errorf("skor anonim = (%v, %v), want (10, 15)", res.Final, res.Total)
	}
	if res.Recorded {
		t.Error("submit anonim tidak boleh tercatat")
	}
	if store.createdAttempt != nil || store.createdAnswers != nil {
		t.Error("submit anonim tidak boleh menyentuh store")
	}
}

func TestSubmitAttemptRecords(t *testing.T) {
	store := &fakeStore{}
	questions := makeQuestions()
	userID, quizID := uuid.New(), uuid.New()

	res := SubmitAttempt(store, userID, quizID, questions, map[int]int{0: 2, 1: 1})

	if res.Final != 8 || res.Total != 15 {
		t.Errorf("skor = (%v, %v), want (8, 15)", res.Final, res.Total)
	}
	if !res.Recorded || res.AlreadyCompleted {
		t.Errorf("Recorded=%v AlreadyCompleted=%v, want true/false", res.Recorded, res.AlreadyCompleted)
	}
	if store.createdAttempt == nil {
		t.Fatal("attempt tidak pernah dibuat")
	}
	if store.createdAttempt.AttemptScore != 8 {
		t.Errorf("AttemptScore = %v, want 8", store.createdAttempt.AttemptScore)
	}
	if len(store.createdAnswers) != 2 {
		t.Errorf("jumlah answers = %d, want 2", len(store.createdAnswers))
	}
	for _, row := range store.createdAnswers {
		if row.AnswerAttemptID != store.createdAttempt.AttemptID {
			t.Errorf("answer menunjuk attempt %s, want %s", row.AnswerAttemptID, store.createdAttempt.AttemptID)
		}
	}
}

func TestSubmitAttemptExistingWins(t *testing.T) {
	existing := &model.AttemptModel{
		AttemptID:    uuid.New(),
		AttemptScore: 3,
	}
	store := &fakeStore{existing: existing}

	res := SubmitAttempt(store, uuid.New(), uuid.New(), makeQuestions(), map[int]int{0: 2, 1: 0})

	if !res.AlreadyCompleted {
		t.Error("submit ulang harus AlreadyCompleted")
	}
	// Skor yang dikembalikan adalah yang tercatat, bukan hasil hitung ulang
	if res.Final != 3 {
		t.Errorf("Final = %v, want skor tersimpan 3", res.Final)
	}
	if store.createdAttempt != nil {
		t.Error("submit ulang tidak boleh membuat attempt baru")
	}
}

func TestSubmitAttemptCreateFailsNoAnswers(t *testing.T) {
	store := &fakeStore{createErr: errors.New("connection reset")}
	questions := makeQuestions()

	res := SubmitAttempt(store, uuid.New(), uuid.New(), questions, map[int]int{0: 2})

	// Skor tetap dikembalikan meski persistensi gagal
	if res.Final != 10 || res.Total != 15 {
		t.Errorf("skor = (%v, %v), want (10, 15)", res.Final, res.Total)
	}
	if res.Recorded {
		t.Error("gagal insert attempt tidak boleh mengaku tercatat")
	}
	if store.createdAnswers != nil {
		t.Error("answers tidak boleh di-insert tanpa attempt yang berhasil")
	}
}

func TestSubmitAttemptDuplicateKeyRace(t *testing.T) {
	existing := &model.AttemptModel{
		AttemptID:    uuid.New(),
		AttemptScore: 12,
	}
	store := &fakeStore{createErr: errors.New(`duplicate key value violates unique constraint "uq_attempts_user_quiz"`)}

	// FindByUserAndQuiz pertama belum melihat baris kembar, yang kedua sudah
	calls := 0
	wrapped := &raceStore{inner: store, onFind: func() {
		calls++
		if calls > 1 {
			store.existing = existing
		}
	}}

	res := SubmitAttempt(wrapped, uuid.New(), uuid.New(), makeQuestions(), map[int]int{0: 2})

	if !res.AlreadyCompleted || res.Final != 12 {
		t.Errorf("AlreadyCompleted=%v Final=%v, want true/12", res.AlreadyCompleted, res.Final)
	}
}

func TestSubmitAttemptAnswersFailAttemptStands(t *testing.T) {
	store := &fakeStore{answersErr: errors.New("timeout")}

	res := SubmitAttempt(store, uuid.New(), uuid.New(), makeQuestions(), map[int]int{0: 2})

	if !res.Recorded {
		t.Error("attempt yang berhasil dibuat harus tetap dianggap tercatat")
	}
	if res.Final != 10 {
		t.Errorf("Final = %v, want 10", res.Final)
	}
	if store.createdAttempt == nil {
		t.Error("attempt harus tetap ada meski answers gagal")
	}
}

// raceStore membungkus fakeStore dan memanggil hook tiap FindByUserAndQuiz.
type raceStore struct {
	inner  *fakeStore
	onFind func()
}

func (r *raceStore) FindByUserAndQuiz(userID, quizID uuid.UUID) (*model.AttemptModel, error) {
	r.onFind()
	return r.inner.FindByUserAndQuiz(userID, quizID)
}

func (r *raceStore) CreateAttempt(attempt *model.AttemptModel) error {
	return r.inner.CreateAttempt(attempt)
}

func (r *raceStore) CreateAnswers(rows []model.AnswerModel) error {
	return r.inner.CreateAnswers(rows)
}
