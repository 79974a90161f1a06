package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/attempts/dto"
	"quizku_backend/internals/features/quizzes/attempts/repository"
	"quizku_backend/internals/features/quizzes/attempts/service"
	questionModel "quizku_backend/internals/features/quizzes/questions/model"
	helper "quizku_backend/internals/helpers"
)

var validateAttempt = validator.New()

type AttemptController struct {
	DB    *gorm.DB
	Store service.AttemptStore
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{
		DB:    db,
		Store: repository.NewStore(db),
	}
}

// =============================
// ➕ Submit Attempt (skor + catat)
// =============================
// Anonim tetap dapat skor; pencatatan hanya untuk user login.
func (ctrl *AttemptController) SubmitAttempt(c *fiber.Ctx) error {
	start := time.Now()

	var body dto.SubmitAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttempt.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Soal diambil dengan urutan stabil — posisi di selections mengacu ke
	// urutan yang sama dengan yang dilihat user saat mengerjakan.
	var questions []questionModel.QuestionModel
	if err := ctrl.DB.
		Where("question_quiz_id = ?", body.QuizID).
		Order("question_created_at ASC, question_id ASC").
		Find(&questions).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil soal untuk submit: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal kuis")
	}
	// Soal korup dibuang dengan filter yang sama dengan jalur penyajian:
	// posisi di selections mengacu ke daftar hasil filter yang dilihat user.
	questions = questionModel.FilterValid(questions)
	if len(questions) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kuis tidak punya soal")
	}

	// Selection mustahil ditolak sebelum menyentuh penilaian
	if err := service.ValidateSelections(questions, body.Selections); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	userID := helper.GetOptionalUserIDFromToken(c)

	result := service.SubmitAttempt(ctrl.Store, userID, body.QuizID, questions, body.Selections)

	resp := dto.SubmitAttemptResponse{
		Score:            result.Final,
		TotalScore:       result.Total,
		Recorded:         result.Recorded,
		AlreadyCompleted: result.AlreadyCompleted,
	}
	if result.Attempt != nil {
		resp.AttemptID = &result.Attempt.AttemptID
	}

	log.Printf("[INFO] Submit kuis %s selesai dalam %s (recorded=%t)", body.QuizID, time.Since(start), result.Recorded)
	return helper.JsonOK(c, "Berhasil menilai kuis", resp)
}

// =============================
// 📄 Get My Attempts (dengan judul kuis)
// =============================
func (ctrl *AttemptController) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var results []dto.AttemptDTO
	if err := ctrl.DB.
		Table("attempts AS a").
		Select(`
			a.attempt_id,
			a.attempt_user_id,
			a.attempt_quiz_id,
			a.attempt_score,
			a.attempt_created_at,
			q.quiz_title`).
		Joins("LEFT JOIN quizzes AS q ON q.quiz_id = a.attempt_quiz_id").
		Where("a.attempt_user_id = ?", userID).
		Order("a.attempt_created_at DESC").
		Scan(&results).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil attempts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat attempt")
	}

	return helper.JsonList(c, "Berhasil ambil riwayat attempt", results)
}

// =============================
// 🔍 Get Answers by Attempt ID (hanya milik sendiri)
// =============================
func (ctrl *AttemptController) GetAttemptAnswers(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Attempt ID tidak valid")
	}

	// Ownership check: attempt orang lain tidak boleh dibaca
	attempt, err := repository.FindAttemptByID(ctrl.DB, attemptID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil attempt")
	}
	if attempt == nil || attempt.AttemptUserID != userID {
		return helper.JsonError(c, fiber.StatusNotFound, "Attempt tidak ditemukan")
	}

	answers, err := repository.FindAnswersByAttempt(ctrl.DB, attemptID)
	if err != nil {
		log.Printf("[ERROR] Gagal ambil answers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}

	var response []dto.AnswerDTO
	for _, a := range answers {
		response = append(response, dto.ToAnswerDTO(a))
	}

	return helper.JsonList(c, "Berhasil ambil jawaban attempt", response)
}
