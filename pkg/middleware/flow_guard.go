package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giftfinder/internal/models/response_models"
)

// SessionReader is the read side of the session used by the guards.
type SessionReader interface {
	IsAuthenticated() bool
	CurrentUser() (response_models.SessionUser, bool)
}

// FlowReader exposes the transient flow state the step guards check.
type FlowReader interface {
	SelectedGift() (response_models.Gift, bool)
	OrderDetails() (response_models.OrderDetails, bool)
}

// The flow is forward-only: Survey -> Recommendations -> Shipping ->
// Confirmation. Each guard re-evaluates current state on every request, so
// navigating back and re-forward against stale state simply bounces the
// user to the step that is still satisfied.

// RequireAuth redirects unauthenticated access to the login page.
func RequireAuth(session SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SurveyGate sends users who already completed the survey straight from the
// root view to their recommendations.
func SurveyGate(session SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := session.CurrentUser(); ok && user.HasCompletedSurvey {
			c.Redirect(http.StatusFound, "/recommendations")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSelectedGift gates the shipping view on a gift having been picked.
func RequireSelectedGift(flow FlowReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := flow.SelectedGift(); !ok {
			c.Redirect(http.StatusFound, "/recommendations")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireOrder gates the confirmation view on order details existing.
func RequireOrder(flow FlowReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := flow.OrderDetails(); !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
