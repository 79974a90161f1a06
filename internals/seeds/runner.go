package seeds

import (
	questions "quizku_backend/internals/seeds/quizzes/questions"
	quizzes "quizku_backend/internals/seeds/quizzes/quizzes"
	users "quizku_backend/internals/seeds/users/auth"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* User
	users.SeedUsersFromJSON(db, "internals/seeds/users/auth/data_users.json")

	//* Quizzes — quiz dulu, baru soal (soal mencari quiz lewat judul)
	quizzes.SeedQuizzesFromJSON(db, "internals/seeds/quizzes/quizzes/data_quizzes.json")
	questions.SeedQuestionsFromJSON(db, "internals/seeds/quizzes/questions/data_questions.json")
}
