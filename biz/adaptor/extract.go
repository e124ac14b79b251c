package adaptor

import (
	"context"
	"errors"
	"homework-show/biz/application/dto/basic"
	"homework-show/biz/infrastructure/config"
	"homework-show/biz/infrastructure/util/log"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractUserMeta 从Authorization头解析JWT，失败返回空meta，由各service判定
func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	tokenString := string(c.GetHeader("Authorization"))
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if tokenString == "" {
		err = errors.New("empty authorization header")
		return
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.GetConfig().Auth.SecretKey), nil
	})
	if err != nil {
		return
	}
	if !token.Valid {
		err = errors.New("token is not valid")
		return
	}
	if err = mapstructure.Decode(token.Claims, user); err != nil {
		return
	}
	// JWT数字claims经JSON解析后是float64
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		user.TokenVersion = cast.ToInt64(claims["tokenVersion"])
	}
	return
}

// GenerateJwtToken 签发HS256 token
func GenerateJwtToken(meta *basic.UserMeta) (string, int64, error) {
	iat := time.Now().Unix()
	exp := iat + config.GetConfig().Auth.AccessExpire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["userId"] = meta.UserId
	claims["role"] = meta.Role
	claims["tokenVersion"] = meta.TokenVersion
	token := jwt.New(jwt.SigningMethodHS256)
	token.Claims = claims
	tokenString, err := token.SignedString([]byte(config.GetConfig().Auth.SecretKey))
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}
