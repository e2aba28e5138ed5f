package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"giftfinder/internal/models/request_models"
	"giftfinder/internal/repositories"
	"giftfinder/pkg/utils"
)

// SurveyProgress is the wizard position exposed to the view.
type SurveyProgress struct {
	Question request_models.SurveyQuestion
	Index    int
	Total    int
	Answered bool
	Selected any
}

// SurveyServiceInterface steps through the fixed question list one answer at
// a time. Next is gated on the current question being answered, so by the
// time Submit is reachable every question has a recorded response.
type SurveyServiceInterface interface {
	Current() SurveyProgress
	SelectOption(optionIndex int) error
	Next() error
	Previous()
	Submit(ctx context.Context) error
}

type SurveyService struct {
	backendRepo repositories.BackendRepository
	session     SessionServiceInterface
	catalog     CatalogServiceInterface
	logger      *zap.Logger

	mu        sync.Mutex
	questions []request_models.SurveyQuestion
	current   int
	responses map[string]any
}

func NewSurveyService(
	backendRepo repositories.BackendRepository,
	session SessionServiceInterface,
	catalog CatalogServiceInterface,
	logger *zap.Logger,
) SurveyServiceInterface {
	return &SurveyService{
		backendRepo: backendRepo,
		session:     session,
		catalog:     catalog,
		logger:      logger,
		questions:   SurveyQuestions,
		responses:   make(map[string]any),
	}
}

func (s *SurveyService) Current() SurveyProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.questions[s.current]
	selected, answered := s.responses[q.ID]
	return SurveyProgress{
		Question: q,
		Index:    s.current,
		Total:    len(s.questions),
		Answered: answered,
		Selected: selected,
	}
}

// SelectOption records the chosen option for the current question. Numeric
// questions record the option's dollar amount, others the option value. It
// never advances the wizard.
func (s *SurveyService) SelectOption(optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.questions[s.current]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return utils.ErrInvalidOption
	}

	opt := q.Options[optionIndex]
	if q.IsNumeric {
		s.responses[q.ID] = opt.Amount
	} else {
		s.responses[q.ID] = opt.Value
	}
	return nil
}

func (s *SurveyService) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.responses[s.questions[s.current].ID]; !ok {
		return utils.ErrQuestionUnanswered
	}
	if s.current < len(s.questions)-1 {
		s.current++
	}
	return nil
}

// Previous moves back without clearing the answer already recorded for the
// question it lands on.
func (s *SurveyService) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current > 0 {
		s.current--
	}
}

// Submit sends the complete response map as one request. On success the
// resulting gifts seed the catalog; on failure every answer and the wizard
// position stay intact for a manual retry.
func (s *SurveyService) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.current != len(s.questions)-1 {
		s.mu.Unlock()
		return utils.ErrSurveyIncomplete
	}
	if _, ok := s.responses[s.questions[s.current].ID]; !ok {
		s.mu.Unlock()
		return utils.ErrQuestionUnanswered
	}
	responses := make(map[string]any, len(s.responses))
	for k, v := range s.responses {
		responses[k] = v
	}
	s.mu.Unlock()

	token := s.session.Token()
	if token == "" {
		return utils.ErrNotAuthenticated
	}

	gifts, err := s.backendRepo.SubmitSurvey(ctx, token, responses)
	if err != nil {
		s.logger.Warn("survey submission failed", zap.Error(err))
		return err
	}

	s.logger.Info("survey submitted", zap.Int("recommendations", len(gifts)))
	s.catalog.SetInitial(gifts)
	return nil
}
