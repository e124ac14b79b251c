package homework

import (
	"homework-show/biz/infrastructure/consts"
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func validTeamHomework() *Homework {
	return &Homework{
		ID:          "hw-1",
		IsTeam:      boolPtr(true),
		Title:       "Rocket Build",
		Description: "We built a rocket",
		GroupName:   "The Rockets",
		SchoolName:  consts.AllowedSchools[0],
		Members:     []string{"Ada", "Grace"},
		Images:      []string{"https://b.s3.r.amazonaws.com/a.jpg"},
		CreatedAt:   "2026-08-30T00:00:00Z",
	}
}

func TestValidateOK(t *testing.T) {
	if err := Validate(validTeamHomework(), true); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}
}

func TestValidateCollectsAllMissingFields(t *testing.T) {
	err := Validate(&Homework{}, false)
	if err == nil {
		t.Fatal("empty record accepted")
	}
	msg := err.Error()
	for _, field := range []string{"id", "is_team", "title", "description", "school_name", "created_at"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error %q does not name missing field %q", msg, field)
		}
	}
}

func TestValidateTeamRequiresGroupAndMembers(t *testing.T) {
	h := validTeamHomework()
	h.GroupName = ""
	h.Members = nil

	err := Validate(h, true)
	if err == nil {
		t.Fatal("team record without group accepted")
	}
	msg := err.Error()
	if !strings.Contains(msg, "group_name") || !strings.Contains(msg, "members") {
		t.Fatalf("error %q should name group_name and members", msg)
	}
	if strings.Contains(msg, "person_name") {
		t.Fatalf("team record must not require person_name: %q", msg)
	}
}

func TestValidatePersonalRequiresPersonName(t *testing.T) {
	h := validTeamHomework()
	h.IsTeam = boolPtr(false)
	h.GroupName = ""
	h.Members = nil

	err := Validate(h, true)
	if err == nil {
		t.Fatal("personal record without person_name accepted")
	}
	if !strings.Contains(err.Error(), "person_name") {
		t.Fatalf("error %q should name person_name", err.Error())
	}

	h.PersonName = "Ada"
	if err := Validate(h, true); err != nil {
		t.Fatalf("valid personal record rejected: %v", err)
	}
}

func TestValidateRejectsUnknownSchool(t *testing.T) {
	h := validTeamHomework()
	h.SchoolName = "Hogwarts"

	err := Validate(h, true)
	if err == nil {
		t.Fatal("unknown school accepted")
	}
	if !strings.Contains(err.Error(), "invalid school_name") {
		t.Fatalf("want invalid-school error, got %q", err.Error())
	}
	// 值非法与字段缺失是两类错误
	if strings.Contains(err.Error(), "missing required fields") {
		t.Fatalf("invalid school must not be reported as missing: %q", err.Error())
	}
}

func TestValidateMediaRequirement(t *testing.T) {
	h := validTeamHomework()
	h.Images = nil

	// 草稿不要求媒体
	if err := Validate(h, false); err != nil {
		t.Fatalf("draft without media rejected: %v", err)
	}
	if err := Validate(h, true); err != consts.ErrNoMedia {
		t.Fatalf("got %v, want ErrNoMedia", err)
	}

	h.Urls = []string{"https://example.com/project"}
	if err := Validate(h, true); err != nil {
		t.Fatalf("record with urls rejected: %v", err)
	}
}

func TestValidateWhitespaceOnlyTitle(t *testing.T) {
	h := validTeamHomework()
	h.Title = "   "

	err := Validate(h, true)
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Fatalf("whitespace title accepted: %v", err)
	}
}

func TestInferIsTeam(t *testing.T) {
	cases := []struct {
		name     string
		explicit *bool
		person   string
		members  []string
		want     bool
	}{
		{"explicit true wins", boolPtr(true), "Ada", nil, true},
		{"explicit false wins", boolPtr(false), "", []string{"Ada"}, false},
		{"person name implies personal", nil, "Ada", nil, false},
		{"members imply team", nil, "", []string{"Ada"}, true},
		{"default is team", nil, "", nil, true},
	}
	for _, c := range cases {
		if got := InferIsTeam(c.explicit, c.person, c.members); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
