package mid

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/records-consolidation/framework/web"
)

const tokenQueryParam = "token"

// StaticToken rejects requests whose "token" query parameter does not match
// secret. The comparison runs in constant time.
func StaticToken(secret string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			token := ctx.Query(tokenQueryParam)

			if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				return web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
