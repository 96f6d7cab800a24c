package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/service"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	apperrors "github.com/ikkim/bohoja-backend/internal/errors"
	"github.com/ikkim/bohoja-backend/internal/middleware"
)

// respondError maps service errors to the API error body.
// Validation problems are user mistakes and are logged at warn only.
func respondError(c *gin.Context, err error, operation string) {
	log := middleware.GetLoggerFromContext(c)

	if ve, ok := service.AsValidationError(err); ok {
		log.Warn("Validation failed", map[string]interface{}{
			"operation": operation,
			"field":     ve.Field,
			"code":      ve.Code,
		})
		apperrors.RespondWithFieldError(c, ve.Code, ve.Field, ve.Message)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "전화번호 또는 비밀번호가 올바르지 않습니다.")
	case errors.Is(err, service.ErrNotLoggedIn):
		apperrors.Unauthorized(c, "")
	case errors.Is(err, service.ErrStageOutOfOrder):
		apperrors.Conflict(c, apperrors.SignupStageOutOfOrder, "이전 단계를 먼저 완료해주세요")
	case errors.Is(err, store.ErrAlreadyRegistered):
		apperrors.Conflict(c, apperrors.SignupAlreadyRegistered, "이미 가입된 보호자가 있습니다")
	case errors.Is(err, service.ErrDraftNotFound):
		apperrors.NotFound(c, apperrors.SignupDraftNotFound, "회원가입 진행 정보를 찾을 수 없습니다. 처음부터 다시 시작해주세요")
	case errors.Is(err, service.ErrBenefitNotFound):
		apperrors.NotFound(c, apperrors.BenefitNotFound, "혜택을 찾을 수 없습니다")
	case errors.Is(err, store.ErrBenefitAlreadyApplied):
		apperrors.Conflict(c, apperrors.BenefitAlreadyApplied, "이미 신청한 혜택입니다")
	case errors.Is(err, service.ErrFacilityNotFound):
		apperrors.NotFound(c, apperrors.FacilityNotFound, "기관을 찾을 수 없습니다")
	case errors.Is(err, service.ErrNoPatient):
		apperrors.NotFound(c, apperrors.PatientNotRegistered, "등록된 환자 정보가 없습니다")
	default:
		log.Error("Request failed", err, map[string]interface{}{
			"operation": operation,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Warn("Request rejected", map[string]interface{}{
		"operation": operation,
		"error":     err.Error(),
	})
}

// bindJSON binds the body and answers 400 on malformed JSON
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return false
	}
	return true
}
