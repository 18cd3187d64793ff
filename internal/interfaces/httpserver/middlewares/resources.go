package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// idOwners maps the first route segment to the resource its :id names.
var idOwners = map[string]string{
	"users":    "user_id",
	"chats":    "chat_id",
	"delChats": "chat_id",
	"messages": "message_id",
}

// routeResources returns the resource ids named in the matched route, keyed
// as user_id, chat_id or message_id. Unmatched routes yield nothing.
func routeResources(c *gin.Context) map[string]string {
	route := c.FullPath()
	if route == "" || len(c.Params) == 0 {
		return nil
	}

	first, _, _ := strings.Cut(strings.TrimPrefix(route, "/"), "/")
	out := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		switch p.Key {
		case "id":
			if owner, ok := idOwners[first]; ok {
				out[owner] = p.Value
			}
		case "userId":
			out["user_id"] = p.Value
		}
	}
	return out
}
