package homework

import (
	"homework-show/biz/infrastructure/consts"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestNormalizeDerivedAttributes(t *testing.T) {
	h := validTeamHomework()
	h.Title = "  Rocket Build  "
	h.Videos = []string{"https://b.s3.r.amazonaws.com/v.mp4"}
	h.Urls = nil
	h.Normalize()

	if h.PK != consts.HomeworkKeyPrefix+h.ID {
		t.Errorf("PK = %q", h.PK)
	}
	if h.SK != consts.MetaKeyPrefix+h.CreatedAt {
		t.Errorf("SK = %q", h.SK)
	}
	if h.EntityType != consts.EntityHomework {
		t.Errorf("entityType = %q", h.EntityType)
	}
	if h.Title != "Rocket Build" {
		t.Errorf("title not trimmed: %q", h.Title)
	}
	if h.SchoolID != h.SchoolName {
		t.Errorf("school_id = %q, want %q", h.SchoolID, h.SchoolName)
	}
	if h.HasImages != "1" || h.HasVideos != "1" || h.HasUrls != "" {
		t.Errorf("sparse flags = %q/%q/%q", h.HasImages, h.HasVideos, h.HasUrls)
	}
	if h.Preview != h.Images[0] {
		t.Errorf("preview = %q, want first image", h.Preview)
	}
}

func TestNormalizeClearsStaleDerivedAttributes(t *testing.T) {
	h := validTeamHomework()
	h.Videos = []string{"https://b.s3.r.amazonaws.com/v.mp4"}
	h.VideoPosters = []string{"https://b.s3.r.amazonaws.com/v.png"}
	h.Normalize()

	h.Images = nil
	h.Videos = nil
	h.Normalize()

	if h.HasImages != "" || h.HasVideos != "" {
		t.Errorf("stale sparse flags kept: %q/%q", h.HasImages, h.HasVideos)
	}
	if h.Preview != "" {
		t.Errorf("stale preview kept: %q", h.Preview)
	}
	if h.VideoPosters != nil {
		t.Errorf("posters kept after videos cleared: %v", h.VideoPosters)
	}
}

func TestApplyPatchMergesOnlySetFields(t *testing.T) {
	existing := validTeamHomework()
	existing.Normalize()

	merged := ApplyPatch(existing, &Patch{
		Title:  strPtr("New Title"),
		Videos: &[]string{"https://b.s3.r.amazonaws.com/v.mp4"},
	})

	if merged.Title != "New Title" {
		t.Errorf("title = %q", merged.Title)
	}
	if merged.Description != existing.Description {
		t.Errorf("untouched description changed: %q", merged.Description)
	}
	if !reflect.DeepEqual(merged.Images, existing.Images) {
		t.Errorf("untouched images changed: %v", merged.Images)
	}
	if len(merged.Videos) != 1 {
		t.Errorf("videos = %v", merged.Videos)
	}
	// 原记录不被patch修改
	if existing.Title != "Rocket Build" {
		t.Errorf("existing mutated: %q", existing.Title)
	}
}

func TestApplyPatchCanClearSlices(t *testing.T) {
	existing := validTeamHomework()
	merged := ApplyPatch(existing, &Patch{Images: &[]string{}})

	if len(merged.Images) != 0 {
		t.Fatalf("images = %v, want cleared", merged.Images)
	}
}

func TestPatchedRecordRevalidates(t *testing.T) {
	existing := validTeamHomework()

	// 切到个人模式但没给person_name，合并结果必须被完整校验拦下
	merged := ApplyPatch(existing, &Patch{IsTeam: boolPtr(false)})
	if err := Validate(merged, true); err == nil {
		t.Fatal("patched record violating personal constraints accepted")
	}

	merged = ApplyPatch(existing, &Patch{
		IsTeam:     boolPtr(false),
		PersonName: strPtr("Ada"),
	})
	if err := Validate(merged, true); err != nil {
		t.Fatalf("valid patched record rejected: %v", err)
	}
}
