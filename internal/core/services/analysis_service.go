package services

import (
	"context"
	"strings"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

// NutritionAnalyzer is the AI/vision collaborator: image reference or
// free text in, structured nutrition estimate out.
type NutritionAnalyzer interface {
	AnalyzeImage(ctx context.Context, imageURL string) (*domain.NutritionEstimate, error)
	AnalyzeText(ctx context.Context, description string) (*domain.NutritionEstimate, error)
}

type AnalysisService struct {
	analyzer NutritionAnalyzer
}

func NewAnalysisService(analyzer NutritionAnalyzer) *AnalysisService {
	return &AnalysisService{analyzer: analyzer}
}

// Analyze routes to image or text analysis and normalizes the estimate
// before it enters the core: an unusable grade falls back to the worst
// one, an empty name means the model did not recognize food at all.
func (s *AnalysisService) Analyze(ctx context.Context, imageURL, description string) (*domain.NutritionEstimate, error) {
	var (
		estimate *domain.NutritionEstimate
		err      error
	)

	if imageURL != "" {
		estimate, err = s.analyzer.AnalyzeImage(ctx, imageURL)
	} else {
		estimate, err = s.analyzer.AnalyzeText(ctx, description)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(estimate.Name) == "" {
		return nil, domain.ErrUnrecognizedFood
	}
	if !domain.ValidGrade(estimate.Grade) {
		estimate.Grade = "D"
	}

	return estimate, nil
}
