package adaptor

import (
	"context"
	"homework-show/biz/infrastructure/util/log"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一的响应出口。校验类错误把完整的violation列表带给调用方，
// 服务端错误只返回笼统信息，不外泄内部细节
func PostProcess(ctx context.Context, c *app.RequestContext, resp any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	st, ok := status.FromError(err)
	if !ok {
		log.CtxError(ctx, "internal error: %v", err)
		c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
		return
	}

	httpCode := httpStatusOf(st.Code())
	body := map[string]any{"error": st.Message()}
	if httpCode == http.StatusInternalServerError {
		log.CtxError(ctx, "internal error: %v", err)
		body = map[string]any{"error": "internal error"}
	}
	c.JSON(httpCode, body)
}

func httpStatusOf(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated, codes.Code(1000):
		return http.StatusUnauthorized
	case codes.Internal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
