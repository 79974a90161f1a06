package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/questions/dto"
	"quizku_backend/internals/features/quizzes/questions/model"
	helper "quizku_backend/internals/helpers"
)

var validateQuestion = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// =============================
// ➕ Create Question
// =============================
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	question := model.QuestionModel{
		QuestionQuizID:        body.QuestionQuizID,
		QuestionTitle:         body.QuestionTitle,
		QuestionOptions:       body.QuestionOptions,
		QuestionCorrect:       body.QuestionCorrect,
		QuestionCorrectScore:  body.QuestionCorrectScore,
		QuestionNegativeScore: body.QuestionNegativeScore,
	}
	// Invariant model (index jawaban valid, skor non-negatif) dicek di boundary
	if err := question.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat soal")
	}

	return helper.JsonCreated(c, "Soal berhasil dibuat", dto.ToQuestionDTO(question))
}

// =============================
// 📄 Get Questions by Quiz ID (admin, kunci jawaban ikut)
// =============================
func (ctrl *QuestionController) GetQuestionsByQuizID(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.
		Where("question_quiz_id = ?", quizID).
		Order("question_created_at ASC, question_id ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	var response []dto.QuestionDTO
	for _, q := range questions {
		response = append(response, dto.ToQuestionDTO(q))
	}

	return helper.JsonList(c, "Berhasil ambil soal", response)
}

// =============================
// ✏️ Update Question
// =============================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question ID tidak valid")
	}

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
	}

	if body.QuestionTitle != nil {
		question.QuestionTitle = *body.QuestionTitle
	}
	if body.QuestionOptions != nil {
		question.QuestionOptions = body.QuestionOptions
	}
	if body.QuestionCorrect != nil {
		question.QuestionCorrect = *body.QuestionCorrect
	}
	if body.QuestionCorrectScore != nil {
		question.QuestionCorrectScore = *body.QuestionCorrectScore
	}
	if body.QuestionNegativeScore != nil {
		question.QuestionNegativeScore = *body.QuestionNegativeScore
	}

	// Hasil gabungan tetap harus memenuhi invariant soal
	if err := question.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Save(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update soal")
	}

	return helper.JsonUpdated(c, "Soal berhasil diupdate", dto.ToQuestionDTO(question))
}

// =============================
// ❌ Delete Question by ID
// =============================
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question ID tidak valid")
	}

	if err := ctrl.DB.Delete(&model.QuestionModel{}, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus soal")
	}

	return helper.JsonDeleted(c, "Soal berhasil dihapus", nil)
}
