package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"giftfinder/internal/models/request_models"
	"giftfinder/internal/services"
)

const surveySubmitError = "There was an error submitting your responses. Please try again."

type SurveyController struct {
	survey services.SurveyServiceInterface
	logger *zap.Logger
}

func NewSurveyController(survey services.SurveyServiceInterface, logger *zap.Logger) *SurveyController {
	return &SurveyController{
		survey: survey,
		logger: logger,
	}
}

func (s *SurveyController) Show(c *gin.Context) {
	s.render(c, "")
}

func (s *SurveyController) Answer(c *gin.Context) {
	var req request_models.AnswerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err := s.survey.SelectOption(req.Option); err != nil {
		s.logger.Warn("rejected survey answer", zap.Int("option", req.Option), zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/")
}

// Next is a no-op while the current question is unanswered; the page simply
// re-renders in place.
func (s *SurveyController) Next(c *gin.Context) {
	_ = s.survey.Next()
	c.Redirect(http.StatusFound, "/")
}

func (s *SurveyController) Previous(c *gin.Context) {
	s.survey.Previous()
	c.Redirect(http.StatusFound, "/")
}

// Submit sends the full response set once. On failure the wizard state is
// untouched and the page shows a retryable error.
func (s *SurveyController) Submit(c *gin.Context) {
	if err := s.survey.Submit(c.Request.Context()); err != nil {
		s.render(c, surveySubmitError)
		return
	}
	c.Redirect(http.StatusFound, "/recommendations")
}

func (s *SurveyController) render(c *gin.Context, errorMsg string) {
	progress := s.survey.Current()
	c.HTML(http.StatusOK, "survey.html", gin.H{
		"Authenticated": true,
		"Question":      progress.Question,
		"Number":        progress.Index + 1,
		"Total":         progress.Total,
		"Percent":       (progress.Index + 1) * 100 / progress.Total,
		"Answered":      progress.Answered,
		"SelectedIndex": selectedIndex(progress),
		"IsLast":        progress.Index == progress.Total-1,
		"IsFirst":       progress.Index == 0,
		"Error":         errorMsg,
	})
}

// selectedIndex maps the recorded response back onto its option position
// for highlighting; -1 when the question is unanswered.
func selectedIndex(progress services.SurveyProgress) int {
	if !progress.Answered {
		return -1
	}
	for i, opt := range progress.Question.Options {
		if progress.Question.IsNumeric {
			if amount, ok := progress.Selected.(float64); ok && amount == opt.Amount {
				return i
			}
		} else if value, ok := progress.Selected.(string); ok && value == opt.Value {
			return i
		}
	}
	return -1
}
