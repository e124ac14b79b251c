package homework

import "homework-show/biz/infrastructure/repository/homework"

type CreateHomeworkReq struct {
	IsTeam      *bool    `form:"is_team" json:"is_team" query:"is_team"`
	Title       string   `form:"title" json:"title" query:"title"`
	Description string   `form:"description" json:"description" query:"description"`
	GroupName   string   `form:"group_name" json:"group_name" query:"group_name"`
	PersonName  string   `form:"person_name" json:"person_name" query:"person_name"`
	SchoolName  string   `form:"school_name" json:"school_name" query:"school_name"`
	Members     []string `form:"members" json:"members" query:"members"`
	Images      []string `form:"images" json:"images" query:"images"`
	Videos      []string `form:"videos" json:"videos" query:"videos"`
	Urls        []string `form:"urls" json:"urls" query:"urls"`
}

type CreateHomeworkResp struct {
	Homework *homework.Homework `json:"homework"`
}

type GetHomeworkReq struct {
	Id string `path:"id" json:"id"`
}

type ListHomeworksReq struct {
	Limit *int64 `form:"limit" json:"limit" query:"limit"`
}

type ListHomeworksResp struct {
	Homeworks []*homework.Homework `json:"homeworks"`
}

type ListByKeyReq struct {
	Key   string `path:"key" json:"key"`
	Limit *int64 `form:"limit" json:"limit" query:"limit"`
}

// UpdateHomeworkReq 部分更新。video_posters不接受外部写入
type UpdateHomeworkReq struct {
	Id          string    `path:"id" json:"id"`
	IsTeam      *bool     `form:"is_team" json:"is_team"`
	Title       *string   `form:"title" json:"title"`
	Description *string   `form:"description" json:"description"`
	GroupName   *string   `form:"group_name" json:"group_name"`
	PersonName  *string   `form:"person_name" json:"person_name"`
	SchoolName  *string   `form:"school_name" json:"school_name"`
	Members     *[]string `form:"members" json:"members"`
	Images      *[]string `form:"images" json:"images"`
	Videos      *[]string `form:"videos" json:"videos"`
	Urls        *[]string `form:"urls" json:"urls"`
}

type UpdateHomeworkResp struct {
	Homework *homework.Homework `json:"homework"`
}

type DeleteHomeworkReq struct {
	Id string `path:"id" json:"id"`
}
