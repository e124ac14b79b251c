package user

import "homework-show/biz/infrastructure/repository/user"

type SignUpReq struct {
	Username    string `form:"username" json:"username"`
	DisplayName string `form:"displayName" json:"displayName"`
	Email       string `form:"email" json:"email"`
	Password    string `form:"password" json:"password"`
	VerifyCode  string `form:"verifyCode" json:"verifyCode"`
}

type SignInReq struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type SignInResp struct {
	Token    string     `json:"token"`
	ExpireAt int64      `json:"expireAt"`
	User     *user.User `json:"user"`
}

type SendCodeReq struct {
	Email string `form:"email" json:"email"`
}

type VerifyCodeReq struct {
	Email string `form:"email" json:"email"`
	Code  string `form:"code" json:"code"`
}
