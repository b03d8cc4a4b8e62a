package httpadapter

import (
	"context"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// corsPolicy lets a browser map editor served from another origin call the
// world API. An empty origin list allows any origin.
type corsPolicy struct {
	origins []string
	maxAge  int
}

var corsMethods = strings.Join([]string{
	consts.MethodGet,
	consts.MethodPost,
	consts.MethodDelete,
	consts.MethodOptions,
}, ",")

func newCORSPolicy(origins []string) corsPolicy {
	var kept []string
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			kept = append(kept, o)
		}
	}
	return corsPolicy{origins: kept, maxAge: 600}
}

// allowedOrigin returns the value for Access-Control-Allow-Origin, or "" when
// origin may not call the API.
func (p corsPolicy) allowedOrigin(origin string) string {
	if len(p.origins) == 0 {
		return "*"
	}
	for _, o := range p.origins {
		if o == "*" {
			return "*"
		}
		if o == origin {
			return origin
		}
	}
	return ""
}

func (p corsPolicy) apply(ctx *app.RequestContext) bool {
	allow := p.allowedOrigin(string(ctx.Request.Header.Peek("Origin")))
	if allow == "" {
		return false
	}
	h := &ctx.Response.Header
	h.Set("Access-Control-Allow-Origin", allow)
	if allow != "*" {
		h.Add("Vary", "Origin")
	}
	h.Set("Access-Control-Allow-Methods", corsMethods)
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Max-Age", strconv.Itoa(p.maxAge))
	return true
}

func (p corsPolicy) middleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		allowed := p.apply(ctx)
		if string(ctx.Method()) != consts.MethodOptions {
			ctx.Next(c)
			return
		}
		if !allowed {
			ctx.AbortWithStatus(consts.StatusForbidden)
			return
		}
		ctx.AbortWithStatus(consts.StatusNoContent)
	}
}
