package services

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type MarathonService struct {
	marathonRepo domain.MarathonRepository
	userRepo     domain.UserRepository
}

func NewMarathonService(marathonRepo domain.MarathonRepository, userRepo domain.UserRepository) *MarathonService {
	return &MarathonService{
		marathonRepo: marathonRepo,
		userRepo:     userRepo,
	}
}

// Join matches the access code against active marathons (only bcrypt
// hashes are stored, so each candidate is compared) and enrolls the user
// with their current weight as the starting point.
func (s *MarathonService) Join(ctx context.Context, userID int64, accessCode string) (*domain.Marathon, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, userID)
	if err != nil {
		return nil, err
	}

	marathons, err := s.marathonRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	for _, m := range marathons {
		if bcrypt.CompareHashAndPassword([]byte(m.AccessCodeHash), []byte(accessCode)) == nil {
			p := &domain.MarathonParticipant{
				MarathonID:    m.ID,
				UserID:        userID,
				StartWeightKG: user.WeightKG,
				JoinedAt:      time.Now().UTC(),
			}
			if err := s.marathonRepo.AddParticipant(ctx, p); err != nil {
				return nil, err
			}
			return m, nil
		}
	}

	return nil, domain.ErrInvalidAccessCode
}

type AssessmentInput struct {
	UserID     int64
	MarathonID int64
	Type       string
	Answers    json.RawMessage
}

// SaveAssessment stores a participant questionnaire. The caller must
// already be enrolled in the marathon.
func (s *MarathonService) SaveAssessment(ctx context.Context, input AssessmentInput) error {
	if _, err := s.marathonRepo.GetByID(ctx, input.MarathonID); err != nil {
		return err
	}

	enrolled, err := s.marathonRepo.HasParticipant(ctx, input.MarathonID, input.UserID)
	if err != nil {
		return err
	}
	if !enrolled {
		return domain.ErrNotParticipant
	}

	return s.marathonRepo.SaveAssessment(ctx, &domain.MarathonAssessment{
		MarathonID: input.MarathonID,
		UserID:     input.UserID,
		Type:       input.Type,
		Answers:    input.Answers,
		CreatedAt:  time.Now().UTC(),
	})
}

// Ladder ranks participants by progress toward their target weight.
func (s *MarathonService) Ladder(ctx context.Context, marathonID int64) ([]domain.LadderEntry, error) {
	if _, err := s.marathonRepo.GetByID(ctx, marathonID); err != nil {
		return nil, err
	}

	rows, err := s.marathonRepo.ListLadderRows(ctx, marathonID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LadderEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.LadderEntry{
			User: domain.LadderUser{
				FirstName:    r.FirstName,
				AvatarURL:    r.AvatarURL,
				Weight:       r.WeightKG,
				TargetWeight: r.TargetWeightKG,
			},
			Progress: marathonProgress(r.StartWeightKG, r.WeightKG, r.TargetWeightKG),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Progress > entries[j].Progress
	})

	return entries, nil
}

// marathonProgress is distance-covered over distance-to-target, clamped
// to [0, 1]. The direction follows the participant's goal: losers count
// kilos shed, gainers count kilos added. A target equal to the starting
// weight yields zero rather than a division blowup.
func marathonProgress(start, current, target float64) float64 {
	var progress float64
	switch {
	case start > target:
		progress = (start - current) / (start - target)
	case start < target:
		progress = (current - start) / (target - start)
	default:
		return 0
	}

	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
