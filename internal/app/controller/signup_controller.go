package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/service"
	"github.com/ikkim/bohoja-backend/internal/middleware"
)

// SignupController 4단계 회원가입 컨트롤러
type SignupController struct {
	signupService service.SignupService
}

func NewSignupController(signupService service.SignupService) *SignupController {
	return &SignupController{
		signupService: signupService,
	}
}

// Start opens a new signup draft at the credentials stage
// POST /api/v1/signup
func (ctrl *SignupController) Start(c *gin.Context) {
	draft := ctrl.signupService.StartSignup()

	middleware.GetLoggerFromContext(c).Info("Signup started", map[string]interface{}{
		"draft_id": draft.ID,
	})

	c.JSON(http.StatusCreated, draft)
}

// Get GET /api/v1/signup/:id
func (ctrl *SignupController) Get(c *gin.Context) {
	draft, err := ctrl.signupService.GetDraft(c.Param("id"))
	if err != nil {
		respondError(c, err, "get signup draft")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SubmitCredentials PUT /api/v1/signup/:id/credentials
func (ctrl *SignupController) SubmitCredentials(c *gin.Context) {
	var form service.CredentialsForm
	if !bindJSON(c, &form) {
		return
	}

	draft, err := ctrl.signupService.SubmitCredentials(c.Param("id"), form)
	if err != nil {
		respondError(c, err, "submit credentials")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SubmitGuardian PUT /api/v1/signup/:id/guardian
func (ctrl *SignupController) SubmitGuardian(c *gin.Context) {
	var form service.GuardianForm
	if !bindJSON(c, &form) {
		return
	}

	draft, err := ctrl.signupService.SubmitGuardian(c.Param("id"), form)
	if err != nil {
		respondError(c, err, "submit guardian")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SubmitPatient PUT /api/v1/signup/:id/patient
func (ctrl *SignupController) SubmitPatient(c *gin.Context) {
	var form service.PatientForm
	if !bindJSON(c, &form) {
		return
	}

	draft, err := ctrl.signupService.SubmitPatient(c.Param("id"), form)
	if err != nil {
		respondError(c, err, "submit patient")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Complete commits the whole signup in one store write
// POST /api/v1/signup/:id/complete
func (ctrl *SignupController) Complete(c *gin.Context) {
	var form service.CompletionForm
	if !bindJSON(c, &form) {
		return
	}

	if err := ctrl.signupService.CompleteSignup(c.Param("id"), form); err != nil {
		respondError(c, err, "complete signup")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Signup completed", map[string]interface{}{
		"draft_id": c.Param("id"),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "회원가입이 완료되었습니다",
	})
}

// Back POST /api/v1/signup/:id/back
func (ctrl *SignupController) Back(c *gin.Context) {
	draft, err := ctrl.signupService.Back(c.Param("id"))
	if err != nil {
		respondError(c, err, "signup back")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Options returns the relationship and region choices
// GET /api/v1/signup/options
func (ctrl *SignupController) Options(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.signupService.Options())
}
