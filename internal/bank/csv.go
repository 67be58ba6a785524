// Package bank reads and writes question banks as CSV files.
package bank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trivia/internal/models"
)

var questionHeader = []string{"question", "answer", "category", "difficulty", "rating"}

// Skipped describes a CSV row that was not imported.
type Skipped struct {
	Line   int
	Reason string
}

// ReadQuestions parses rows of question,answer,category,difficulty,rating after a header line.
// Question and answer text is kept verbatim, empty text included, so a Writer dump loads back unchanged.
// Rows with missing fields or non-numeric numbers are reported in skipped and do not stop the read.
func ReadQuestions(in io.Reader) ([]models.QuestionInput, []Skipped, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < len(questionHeader) {
		return nil, nil, fmt.Errorf("header must be %s", strings.Join(questionHeader, ","))
	}

	questions := []models.QuestionInput{}
	skipped := []Skipped{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		line, _ := r.FieldPos(0)

		if len(record) < len(questionHeader) {
			skipped = append(skipped, Skipped{line, "invalid record length"})
			continue
		}

		numbers := make([]int64, 3)
		bad := ""
		for i, field := range record[2:5] {
			n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil {
				bad = questionHeader[2+i]
				break
			}
			numbers[i] = n
		}
		if bad != "" {
			skipped = append(skipped, Skipped{line, "invalid " + bad})
			continue
		}

		questions = append(questions, models.QuestionInput{
			Question:   record[0],
			Answer:     record[1],
			Category:   numbers[0],
			Difficulty: int(numbers[1]),
			Rating:     int(numbers[2]),
		})
	}

	return questions, skipped, nil
}

// ReadCategories reads one category label per line, the first line being a header.
func ReadCategories(in io.Reader) ([]string, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	types := []string{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		types = append(types, strings.TrimSpace(record[0]))
	}
	return types, nil
}

// Writer writes questions in the format ReadQuestions accepts.
type Writer struct {
	w      *csv.Writer
	header bool
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(out)}
}

// Write appends questions, emitting the header before the first batch.
func (w *Writer) Write(questions []*models.Question) error {
	if !w.header {
		if err := w.w.Write(questionHeader); err != nil {
			return err
		}
		w.header = true
	}

	for _, q := range questions {
		record := []string{
			q.Question,
			q.Answer,
			strconv.FormatInt(q.Category, 10),
			strconv.Itoa(q.Difficulty),
			strconv.Itoa(q.Rating),
		}
		if err := w.w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
