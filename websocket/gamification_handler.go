package websocket

import (
	"net/http"
	"strings"

	"leximax/db"
	"leximax/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GamificationWebSocketHandler upgrades an authenticated request and streams
// the caller's progression events until the client disconnects. The token is
// read from the Authorization header or the token query parameter.
func GamificationWebSocketHandler(hub *Hub, users db.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		if authz := c.GetHeader("Authorization"); authz != "" {
			tokenParts := strings.Split(authz, " ")
			if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
				tokenString = tokenParts[1]
			}
		}
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		claims, err := utils.ParseJWTToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if _, err := users.GetUser(c.Request.Context(), claims.UserID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.WithError(err).Warn("WebSocket upgrade error")
			return
		}

		client := &GamificationClient{Conn: conn, UserID: claims.UserID}
		hub.Register(client)
		defer hub.Unregister(client)

		client.SafeWriteJSON(gin.H{
			"type":    "connected",
			"message": "Connected to gamification updates",
			"userId":  claims.UserID,
		})

		// The feed is one-way; reading only detects the close.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.WithError(err).WithField("user", claims.UserID).Debug("Gamification WebSocket closed")
				}
				return
			}
		}
	}
}
