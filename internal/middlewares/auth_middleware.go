package middlewares

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"culturefest-api/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleOrganizer = "organizer"
	RoleJudge     = "judge"

	ctxUserID  = "userID"
	ctxRole    = "role"
	ctxJudgeID = "judgeID"
)

// AuthMiddleware accepts the access token from the access_token cookie or a
// Bearer header and stores userID, role and judgeID on the context.
func AuthMiddleware() gin.HandlerFunc {
	cfg := config.LoadConfig()
	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		accessToken := tokenFromRequest(c)
		if accessToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		userID, ok := claimString(claims, "user_id")
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID"})
			c.Abort()
			return
		}

		role, _ := claimString(claims, "role")
		switch role {
		case RoleOrganizer:
		case RoleJudge:
			judgeID, _ := claimString(claims, "judge_id")
			if judgeID == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "judge token without judge_id"})
				c.Abort()
				return
			}
			c.Set(ctxJudgeID, judgeID)
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid role"})
			c.Abort()
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

func ActorID(c *gin.Context) string { return c.GetString(ctxUserID) }

func Role(c *gin.Context) string { return c.GetString(ctxRole) }

// JudgeID is empty unless the caller authenticated as a judge.
func JudgeID(c *gin.Context) string { return c.GetString(ctxJudgeID) }

func tokenFromRequest(c *gin.Context) string {
	if v, err := c.Cookie("access_token"); err == nil && v != "" {
		return v
	}
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func claimString(claims jwt.MapClaims, key string) (string, bool) {
	switch v := claims[key].(type) {
	case string:
		return strings.TrimSpace(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
