package cookie

import (
	"github.com/gin-gonic/gin"
)

// The identity provider's browser client stores the session under this name.
const AccessTokenCookieName = "sb-access-token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
