package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/quiz/dto"
	"quizku_backend/internals/features/quizzes/quiz/model"
	questionDto "quizku_backend/internals/features/quizzes/questions/dto"
	questionModel "quizku_backend/internals/features/quizzes/questions/model"
	helper "quizku_backend/internals/helpers"
)

type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

// =============================
// 📄 Get All Quizzes (dengan jumlah soal)
// =============================
func (ctrl *QuizController) GetAllQuizzes(c *fiber.Ctx) error {
	var results []dto.QuizListItemDTO

	if err := ctrl.DB.
		Table("quizzes AS q").
		Select(`
			q.quiz_id,
			q.quiz_title,
			q.quiz_description,
			COUNT(s.question_id) AS question_count`).
		Joins("LEFT JOIN questions AS s ON s.question_quiz_id = q.quiz_id").
		Group("q.quiz_id, q.quiz_title, q.quiz_description, q.quiz_created_at").
		Order("q.quiz_created_at ASC").
		Scan(&results).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil daftar kuis: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kuis")
	}

	return helper.JsonList(c, "Berhasil ambil daftar kuis", results)
}

// =============================
// 🔍 Get Quiz by ID (judul + soal untuk dikerjakan)
// =============================
// Dua query independen: metadata kuis dan daftar soal. Kegagalan salah satu
// tidak membatalkan yang lain — judul kosong / daftar soal kosong adalah
// degradasi yang sah, bukan error fatal.
func (ctrl *QuizController) GetQuizByID(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	quizTitle := ""
	var quiz model.QuizModel
	if err := ctrl.DB.First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kuis tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal ambil metadata kuis %s: %v", quizID, err)
	} else {
		quizTitle = quiz.QuizTitle
	}

	var questions []questionModel.QuestionModel
	if err := ctrl.DB.
		Where("question_quiz_id = ?", quizID).
		Order("question_created_at ASC, question_id ASC").
		Find(&questions).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil soal kuis %s: %v", quizID, err)
		questions = nil
	}

	// Soal korup dibuang dengan filter yang sama dengan jalur submit,
	// supaya posisi yang dilihat user selaras dengan yang dinilai.
	questions = questionModel.FilterValid(questions)

	// Kunci jawaban tidak ikut dikirim ke pengerjaan kuis
	publicQuestions := make([]questionDto.PublicQuestionDTO, 0, len(questions))
	for _, q := range questions {
		publicQuestions = append(publicQuestions, questionDto.ToPublicQuestionDTO(q))
	}

	return helper.JsonOK(c, "Berhasil ambil kuis", fiber.Map{
		"quiz_id":       quizID,
		"quiz_title":    quizTitle,
		"questions":     publicQuestions,
		"has_questions": len(publicQuestions) > 0,
	})
}
