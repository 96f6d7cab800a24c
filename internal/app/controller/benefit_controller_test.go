package controller

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/ikkim/bohoja-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefitController_ListByCategory(t *testing.T) {
	env := setupControllerTest(t)

	w := env.do(t, http.MethodGet, "/benefits?category="+url.QueryEscape("돌봄서비스"), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["count"])

	w = env.do(t, http.MethodGet, "/benefits?category="+url.QueryEscape("전체"), nil, "")
	assert.Equal(t, float64(7), decode(t, w)["count"])
}

func TestBenefitController_Detail(t *testing.T) {
	env := setupControllerTest(t)

	w := env.do(t, http.MethodGet, "/benefits/4", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "간병지원", body["category"])
	assert.Equal(t, false, body["applied"])
	dday := body["dday"].(map[string]interface{})
	assert.Equal(t, "D-6", dday["label"])
	assert.Equal(t, "urgent", dday["tier"])
	assert.NotNil(t, body["cost_projection"])
}

func TestBenefitController_Detail_NotFound(t *testing.T) {
	env := setupControllerTest(t)

	w := env.do(t, http.MethodGet, "/benefits/99", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BENEFIT_NOT_FOUND", decode(t, w)["error"])
}

func TestBenefitController_Apply(t *testing.T) {
	env := setupControllerTest(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/benefits/1/apply", nil, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, env.store.AppliedBenefits(), 1)

	w = env.do(t, http.MethodPost, "/benefits/1/apply", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "BENEFIT_ALREADY_APPLIED", decode(t, w)["error"])
	assert.Len(t, env.store.AppliedBenefits(), 1)

	w = env.do(t, http.MethodGet, "/benefits/1", nil, "")
	assert.Equal(t, true, decode(t, w)["applied"])
}

func TestBenefitController_Apply_RequiresLogin(t *testing.T) {
	env := setupControllerTest(t)

	w := env.do(t, http.MethodPost, "/benefits/1/apply", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.store.AppliedBenefits())
}

func TestRecommendationController_ApplyAll(t *testing.T) {
	env := setupControllerTest(t)
	token := env.login(t)

	w := env.do(t, http.MethodGet, "/recommendations", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["benefits"], 3)

	w = env.do(t, http.MethodPost, "/recommendations/apply", service.ApplyRecommendationsRequest{All: true}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, float64(3), body["applied_count"])
	assert.Equal(t, float64(2_400_000), body["total_savings"])

	// 신청 결과와 지출 분석은 같은 단위(원)
	w = env.do(t, http.MethodGet, "/expenditure", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2_400_000), decode(t, w)["total_savings"])

	// 두 번째 전체 신청은 모두 건너뜀
	w = env.do(t, http.MethodPost, "/recommendations/apply", service.ApplyRecommendationsRequest{All: true}, token)
	body = decode(t, w)
	assert.Equal(t, float64(0), body["applied_count"])
	assert.Len(t, body["skipped"], 3)
}

func TestRecommendationController_EmptySelection(t *testing.T) {
	env := setupControllerTest(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/recommendations/apply", service.ApplyRecommendationsRequest{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "신청할 항목을 선택해주세요.", decode(t, w)["message"])
}
