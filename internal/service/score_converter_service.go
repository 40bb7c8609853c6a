package service

import (
	"fmt"
	"math"
)

type ScoreConverterService interface {
	ConvertToPercentage(score, questionCount int) (float64, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// ConvertToPercentage turns a raw score into a percentage rounded to one
// decimal place. A test without questions converts to 0.
func (s *scoreConverterServiceImpl) ConvertToPercentage(score, questionCount int) (float64, error) {
	if questionCount < 0 {
		return 0, fmt.Errorf("question count %d is negative", questionCount)
	}
	if score < 0 || score > questionCount {
		return 0, fmt.Errorf("raw score %d is out of valid range (0-%d)", score, questionCount)
	}
	if questionCount == 0 {
		return 0, nil
	}

	pct := float64(score) / float64(questionCount) * 100
	return math.Round(pct*10) / 10, nil
}
