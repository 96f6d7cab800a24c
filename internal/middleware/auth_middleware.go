package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/internal/errors"
	"github.com/ikkim/bohoja-backend/pkg/redis"
	"github.com/ikkim/bohoja-backend/pkg/util"
)

// Context keys for session information
const (
	ClaimsKey = "claims"
	PhoneKey  = "phone"
)

type AuthMiddleware struct {
	jwtSecret string
	blacklist redis.TokenBlacklist
	store     *store.UserStore
}

func NewAuthMiddleware(jwtSecret string, blacklist redis.TokenBlacklist, userStore *store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
		blacklist: blacklist,
		store:     userStore,
	}
}

// Authenticate validates the JWT (header, or ?token= for WebSocket), rejects logged-out
// tokens and requires the store session to be active for the token's guardian
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		var token string

		// Try to get token from Authorization header first
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "인증 형식이 올바르지 않습니다")
				c.Abort()
				return
			}
			token = parts[1]
		} else {
			// If no Authorization header, try to get token from query parameter (for WebSocket)
			token = c.Query("token")
			if token == "" {
				log.Warn("Missing authorization header", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.Unauthorized(c, "로그인이 필요합니다")
				c.Abort()
				return
			}
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})

			// 토큰 만료 에러인 경우 명확히 표시
			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "로그인이 만료되었습니다")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "유효하지 않은 인증 토큰입니다")
			}
			c.Abort()
			return
		}

		revoked, err := m.blacklist.IsTokenBlacklisted(c.Request.Context(), claims.ID)
		if err != nil {
			log.Error("Failed to check token blacklist", err)
			errors.InternalError(c, "")
			c.Abort()
			return
		}
		if revoked {
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenRevoked, "로그아웃된 세션입니다. 다시 로그인해주세요")
			c.Abort()
			return
		}

		if !m.store.IsLoggedIn() {
			log.Warn("Session is not logged in", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// 토큰은 현재 저장된 보호자의 것이어야 한다
		guardian := m.store.Guardian()
		if guardian == nil || util.NormalizePhone(guardian.PhoneNumber) != claims.Phone {
			log.Warn("Token does not belong to stored guardian", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "유효하지 않은 인증 토큰입니다")
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(PhoneKey, claims.Phone)

		c.Next()
	}
}

// GetClaims retrieves the session claims set by Authenticate
func GetClaims(c *gin.Context) (*util.Claims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*util.Claims)
	return claims, ok
}
