package seeder

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// Source CSV columns. The header row is required and matched
// case-insensitively; extra columns are ignored.
const (
	columnNumber  = "question number"
	columnProblem = "problem"
)

// ParseCSV reads one list source file. It returns the questions in file
// order, which becomes the list's display order.
func ParseCSV(r io.Reader) ([]domain.Question, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	numberIdx, problemIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case columnNumber:
			numberIdx = i
		case columnProblem:
			problemIdx = i
		}
	}
	if numberIdx < 0 || problemIdx < 0 {
		return nil, fmt.Errorf("header must contain %q and %q columns", columnNumber, columnProblem)
	}

	var questions []domain.Question
	seen := make(map[int]bool)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		number, err := strconv.Atoi(strings.TrimSpace(record[numberIdx]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid question number %q", line, record[numberIdx])
		}
		if number <= 0 {
			return nil, fmt.Errorf("line %d: question number must be positive, got %d", line, number)
		}
		if seen[number] {
			return nil, fmt.Errorf("line %d: duplicate question number %d", line, number)
		}
		seen[number] = true

		problem := strings.TrimSpace(record[problemIdx])
		if problem == "" {
			return nil, fmt.Errorf("line %d: question %d has an empty problem title", line, number)
		}

		questions = append(questions, domain.Question{Number: number, Problem: problem})
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions in file")
	}
	return questions, nil
}
