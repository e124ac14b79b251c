package homework

import (
	"homework-show/biz/infrastructure/consts"
	"strings"
)

// Homework 作业记录，主存储为DynamoDB单表。
// has_images/has_videos/has_urls 是sparse GSI属性，"1"或缺省；
// school_id/preview 同为派生字段，每次写入都重算，不允许过期。
type Homework struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"entityType" json:"-"`

	ID           string   `dynamodbav:"id" json:"id"`
	IsTeam       *bool    `dynamodbav:"is_team" json:"is_team"`
	Title        string   `dynamodbav:"title" json:"title"`
	Description  string   `dynamodbav:"description" json:"description"`
	GroupName    string   `dynamodbav:"group_name,omitempty" json:"group_name,omitempty"`
	PersonName   string   `dynamodbav:"person_name,omitempty" json:"person_name,omitempty"`
	SchoolName   string   `dynamodbav:"school_name" json:"school_name"`
	Members      []string `dynamodbav:"members,omitempty" json:"members,omitempty"`
	Images       []string `dynamodbav:"images,omitempty" json:"images,omitempty"`
	Videos       []string `dynamodbav:"videos,omitempty" json:"videos,omitempty"`
	Urls         []string `dynamodbav:"urls,omitempty" json:"urls,omitempty"`
	VideoPosters []string `dynamodbav:"video_posters,omitempty" json:"video_posters,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at" json:"created_at"`

	HasImages string `dynamodbav:"has_images,omitempty" json:"-"`
	HasVideos string `dynamodbav:"has_videos,omitempty" json:"-"`
	HasUrls   string `dynamodbav:"has_urls,omitempty" json:"-"`
	SchoolID  string `dynamodbav:"school_id,omitempty" json:"-"`
	Preview   string `dynamodbav:"preview,omitempty" json:"preview,omitempty"`
}

// Normalize 去除首尾空白并重算全部派生字段。
// videos清空时video_posters一并清空
func (h *Homework) Normalize() {
	h.Title = strings.TrimSpace(h.Title)
	h.Description = strings.TrimSpace(h.Description)

	h.PK = consts.HomeworkKeyPrefix + h.ID
	h.SK = consts.MetaKeyPrefix + h.CreatedAt
	h.EntityType = consts.EntityHomework

	h.SchoolID = h.SchoolName

	h.HasImages = sparseFlag(h.Images)
	h.HasVideos = sparseFlag(h.Videos)
	h.HasUrls = sparseFlag(h.Urls)

	if len(h.Images) > 0 {
		h.Preview = h.Images[0]
	} else {
		h.Preview = ""
	}
	if len(h.Videos) == 0 {
		h.VideoPosters = nil
	}
}

func sparseFlag(arr []string) string {
	if len(arr) > 0 {
		return "1"
	}
	return ""
}

// Patch 部分更新。指针为nil表示该字段不动。
// video_posters不开放patch，由封面生成回写维护
type Patch struct {
	IsTeam      *bool     `json:"is_team,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	GroupName   *string   `json:"group_name,omitempty"`
	PersonName  *string   `json:"person_name,omitempty"`
	SchoolName  *string   `json:"school_name,omitempty"`
	Members     *[]string `json:"members,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Videos      *[]string `json:"videos,omitempty"`
	Urls        *[]string `json:"urls,omitempty"`
}

// ApplyPatch 把patch合并到现有记录上，返回合并结果。
// 合并结果需要重新走完整校验，防止patch破坏team/personal条件约束
func ApplyPatch(existing *Homework, patch *Patch) *Homework {
	merged := *existing
	if patch.IsTeam != nil {
		merged.IsTeam = patch.IsTeam
	}
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.GroupName != nil {
		merged.GroupName = *patch.GroupName
	}
	if patch.PersonName != nil {
		merged.PersonName = *patch.PersonName
	}
	if patch.SchoolName != nil {
		merged.SchoolName = *patch.SchoolName
	}
	if patch.Members != nil {
		merged.Members = *patch.Members
	}
	if patch.Images != nil {
		merged.Images = *patch.Images
	}
	if patch.Videos != nil {
		merged.Videos = *patch.Videos
	}
	if patch.Urls != nil {
		merged.Urls = *patch.Urls
	}
	return &merged
}
