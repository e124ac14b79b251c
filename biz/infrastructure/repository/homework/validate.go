package homework

import (
	"homework-show/biz/infrastructure/consts"
	"strings"

	"github.com/samber/lo"
)

// Validate 校验记录完整性。缺失字段全部收集后一次性返回，
// 机构名不在白名单是另一类错误(值非法而非缺失)，立即返回。
// requireMedia为true时要求images/videos/urls至少一项非空
func Validate(h *Homework, requireMedia bool) error {
	var missing []string

	if h.ID == "" {
		missing = append(missing, "id")
	}
	if h.IsTeam == nil {
		missing = append(missing, "is_team")
	}
	if strings.TrimSpace(h.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(h.Description) == "" {
		missing = append(missing, "description")
	}
	if h.SchoolName == "" {
		missing = append(missing, "school_name")
	} else if !lo.Contains(consts.AllowedSchools, h.SchoolName) {
		return consts.NewInvalidSchoolErrno(consts.AllowedSchools)
	}

	// 条件约束: 团队作业要有组名和成员，个人作业要有姓名
	if h.IsTeam != nil && *h.IsTeam {
		if h.GroupName == "" {
			missing = append(missing, "group_name")
		}
		if len(h.Members) == 0 {
			missing = append(missing, "members")
		}
	} else if h.IsTeam != nil {
		if h.PersonName == "" {
			missing = append(missing, "person_name")
		}
	}

	if h.CreatedAt == "" {
		missing = append(missing, "created_at")
	}

	if len(missing) > 0 {
		return consts.NewMissingFieldsErrno(missing)
	}

	if requireMedia && len(h.Images) == 0 && len(h.Videos) == 0 && len(h.Urls) == 0 {
		return consts.ErrNoMedia
	}
	return nil
}

// InferIsTeam 请求未显式给出is_team时的兜底推断:
// 有person_name按个人，有members按团队，都没有默认团队
func InferIsTeam(isTeam *bool, personName string, members []string) bool {
	if isTeam != nil {
		return *isTeam
	}
	if personName != "" {
		return false
	}
	if len(members) > 0 {
		return true
	}
	return true
}
