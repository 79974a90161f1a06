package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/quiz/dto"
	"quizku_backend/internals/features/quizzes/quiz/model"
	questionModel "quizku_backend/internals/features/quizzes/questions/model"
	helper "quizku_backend/internals/helpers"
)

var validateQuiz = validator.New()

type QuizAdminController struct {
	DB *gorm.DB
}

func NewQuizAdminController(db *gorm.DB) *QuizAdminController {
	return &QuizAdminController{DB: db}
}

// =============================
// ➕ Create Quiz
// =============================
func (ctrl *QuizAdminController) CreateQuiz(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	quiz := model.QuizModel{
		QuizTitle:       body.QuizTitle,
		QuizDescription: body.QuizDescription,
	}

	if err := ctrl.DB.Create(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kuis")
	}

	return helper.JsonCreated(c, "Kuis berhasil dibuat", dto.ToQuizDTO(quiz))
}

// =============================
// ✏️ Update Quiz
// =============================
func (ctrl *QuizAdminController) UpdateQuiz(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var quiz model.QuizModel
	if err := ctrl.DB.First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kuis tidak ditemukan")
	}

	if body.QuizTitle != nil {
		quiz.QuizTitle = *body.QuizTitle
	}
	if body.QuizDescription != nil {
		quiz.QuizDescription = body.QuizDescription
	}

	if err := ctrl.DB.Save(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update kuis")
	}

	return helper.JsonUpdated(c, "Kuis berhasil diupdate", dto.ToQuizDTO(quiz))
}

// =============================
// ❌ Delete Quiz (soal ikut terhapus)
// =============================
func (ctrl *QuizAdminController) DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&questionModel.QuestionModel{}, "question_quiz_id = ?", quizID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizModel{}, "quiz_id = ?", quizID).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus kuis")
	}

	return helper.JsonDeleted(c, "Kuis berhasil dihapus", nil)
}
