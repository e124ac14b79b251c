package basic

type UserMeta struct {
	UserId       string `json:"userId" mapstructure:"userId"`
	Role         string `json:"role" mapstructure:"role"`
	TokenVersion int64  `json:"tokenVersion" mapstructure:"-"`
}

func (u *UserMeta) GetUserId() string {
	if u == nil {
		return ""
	}
	return u.UserId
}

func (u *UserMeta) GetRole() string {
	if u == nil {
		return ""
	}
	return u.Role
}

type Response struct {
	Code int64  `form:"code" json:"code" query:"code"`
	Msg  string `form:"msg" json:"msg" query:"msg"`
}
