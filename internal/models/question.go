package models

import "github.com/uptrace/bun"

// db
type Question struct {
	bun.BaseModel `bun:"table:questions"`
	ID            int64  `bun:"id,pk,autoincrement" json:"id"`
	Question      string `bun:"question" json:"question"`
	Answer        string `bun:"answer" json:"answer"`
	Category      int64  `bun:"category" json:"category"`
	Difficulty    int    `bun:"difficulty" json:"difficulty"`
	Rating        int    `bun:"rating" json:"rating"`
}

// QuestionInput carries the five caller supplied fields of a new question.
type QuestionInput struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int
	Rating     int
}

func (in QuestionInput) ToQuestion() *Question {
	return &Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
		Rating:     in.Rating,
	}
}
