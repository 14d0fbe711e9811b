package db

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gorm.io/gorm"

	"trivia-titans/internal/trivia"
)

// LoadStats counts what happened to each CSV row during a library load.
type LoadStats struct {
	Inserted  int
	Duplicate int
	Invalid   int
}

// LoadQuestionLibrary reads questions from a CSV and inserts them into the
// question_library table. Rows that already exist are skipped.
func LoadQuestionLibrary(conn *gorm.DB, path, locale string) (LoadStats, error) {
	var stats LoadStats
	if conn == nil {
		return stats, ErrNoDatabase
	}
	file, err := os.Open(path)
	if err != nil {
		return stats, err
	}
	defer file.Close()

	questions, invalid, err := ReadQuestions(file)
	if err != nil {
		return stats, err
	}
	stats.Invalid = invalid
	if locale == "" {
		locale = trivia.DefaultLocale
	}
	for _, q := range questions {
		entry := QuestionLibrary{
			Locale:     locale,
			Category:   q.Category,
			Question:   q.Question,
			Answer:     q.Answer,
			Difficulty: string(q.Difficulty),
		}
		if err := conn.Create(&entry).Error; err != nil {
			if IsUniqueViolation(err) {
				stats.Duplicate++
				continue
			}
			return stats, err
		}
		stats.Inserted++
	}
	return stats, nil
}

// ErrLibraryHeader is returned when a library CSV does not start with the
// expected header row.
var ErrLibraryHeader = errors.New("questions csv header must be category,question,answer[,difficulty]")

var libraryColumns = []string{"category", "question", "answer", "difficulty"}

// ReadQuestions parses category,question,answer,difficulty rows. The first
// row is a header. Rows that fail validation are counted and dropped.
func ReadQuestions(r io.Reader) ([]trivia.Question, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, 0, err
	}

	var (
		out     []trivia.Question
		invalid int
	)
	if len(rows) == 0 {
		return nil, 0, nil
	}
	if err := checkLibraryHeader(rows[0]); err != nil {
		return nil, 0, err
	}
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if len(row) < 3 {
			invalid++
			continue
		}
		q := trivia.Question{
			Category:   strings.TrimSpace(row[0]),
			Question:   strings.TrimSpace(row[1]),
			Answer:     strings.TrimSpace(row[2]),
			Difficulty: trivia.DifficultyMedium,
		}
		if len(row) >= 4 && strings.TrimSpace(row[3]) != "" {
			difficulty, err := trivia.ParseDifficulty(row[3])
			if err != nil {
				invalid++
				continue
			}
			q.Difficulty = difficulty
		}
		if err := q.Validate(); err != nil {
			invalid++
			continue
		}
		out = append(out, q)
	}
	return out, invalid, nil
}

func checkLibraryHeader(header []string) error {
	if len(header) < 3 || len(header) > len(libraryColumns) {
		return fmt.Errorf("%w: got %q", ErrLibraryHeader, strings.Join(header, ","))
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")), libraryColumns[i]) {
			return fmt.Errorf("%w: got %q", ErrLibraryHeader, strings.Join(header, ","))
		}
	}
	return nil
}

// LibraryQuestions returns the stored catalog for locale, oldest first.
func LibraryQuestions(conn *gorm.DB, locale string) ([]trivia.Question, error) {
	if conn == nil {
		return nil, ErrNoDatabase
	}
	var rows []QuestionLibrary
	if err := conn.Where("locale = ?", locale).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load question library: %w", err)
	}
	out := make([]trivia.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, trivia.Question{
			Question:   row.Question,
			Answer:     row.Answer,
			Category:   row.Category,
			Difficulty: trivia.Difficulty(row.Difficulty),
		})
	}
	return out, nil
}
