package upload

type PresignReq struct {
	HomeworkId  string `form:"homeworkId" json:"homeworkId" query:"homeworkId"`
	Filename    string `form:"filename" json:"filename" query:"filename"`
	ContentType string `form:"contentType" json:"contentType" query:"contentType"`
	SchoolName  string `form:"schoolName" json:"schoolName" query:"schoolName"`
	GroupName   string `form:"groupName" json:"groupName" query:"groupName"`
}

type PresignResp struct {
	UploadUrl string `json:"uploadUrl"`
	FileUrl   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int64  `json:"expiresIn"`
}

// UploadedFile 单个文件的上传结果
type UploadedFile struct {
	Url         string `json:"url"`
	PosterUrl   string `json:"posterUrl,omitempty"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Compressed  bool   `json:"compressed"`
}

type UploadResp struct {
	Files []*UploadedFile `json:"files"`
}

type CreateDraftAndPresignReq struct {
	IsTeam      *bool    `form:"is_team" json:"is_team"`
	Title       string   `form:"title" json:"title"`
	Description string   `form:"description" json:"description"`
	GroupName   string   `form:"group_name" json:"group_name"`
	PersonName  string   `form:"person_name" json:"person_name"`
	SchoolName  string   `form:"school_name" json:"school_name"`
	Members     []string `form:"members" json:"members"`
	Filenames   []string `form:"filenames" json:"filenames"`
}

type CreateDraftAndPresignResp struct {
	HomeworkId string         `json:"homeworkId"`
	Presigns   []*PresignResp `json:"presigns"`
}

type DeleteFilesReq struct {
	Urls []string `form:"urls" json:"urls"`
}
