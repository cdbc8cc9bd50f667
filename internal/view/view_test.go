package view_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/yunxiao-dev/teachboard/internal/domain"
	"github.com/yunxiao-dev/teachboard/internal/i18n"
	"github.com/yunxiao-dev/teachboard/internal/view"
)

func translator(t *testing.T, locale string) view.T {
	t.Helper()
	bundle, err := i18n.Load()
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}
	return func(key string) string { return bundle.T(locale, key) }
}

func TestActivityResults_RendersList(t *testing.T) {
	tr := translator(t, "zh")
	activities := []domain.Activity{{
		ID:        "A",
		Title:     "人工智能基础入门",
		Speaker:   "张教授",
		Location:  "教学楼A座301室",
		StartTime: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC),
	}}

	var sb strings.Builder
	if err := view.ActivityResults("zh", tr, activities).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		`id="activity-results"`,
		"人工智能基础入门",
		"张教授",
		"共找到 1 个活动",
		"2026年1月15日 09:00 - 11:00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestActivityResults_EmptyState(t *testing.T) {
	tr := translator(t, "zh")

	var sb strings.Builder
	if err := view.ActivityResults("zh", tr, nil).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()

	if !strings.Contains(html, "没有找到符合条件的活动") {
		t.Error("empty state message missing")
	}
	if !strings.Contains(html, "共找到 0 个活动") {
		t.Error("zero count missing")
	}
}

func TestActivityResults_EscapesContent(t *testing.T) {
	tr := translator(t, "en")
	activities := []domain.Activity{{
		ID:        "A",
		Title:     `<script>alert("x")</script>`,
		Speaker:   "Speaker",
		Location:  "Room",
		StartTime: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC),
	}}

	var sb strings.Builder
	if err := view.ActivityResults("en", tr, activities).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()

	if strings.Contains(html, "<script>") {
		t.Error("title was not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped title missing")
	}
}

func TestHomePage_FilterBindings(t *testing.T) {
	tr := translator(t, "zh")

	var sb strings.Builder
	if err := view.HomePage("zh", tr, nil).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		"data-signals",
		`data-bind="startDate"`,
		`data-bind="endDate"`,
		`data-bind="title"`,
		`data-bind="speaker"`,
		"@get('/zh/filter')",
		"搜索活动标题...",
		"重置筛选",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

// Signal names are case sensitive on the server side but HTML attribute
// names are not: a camelCase data-bind-* suffix would be lowercased by the
// browser and bind a different signal than the one data-signals declares and
// the reset button clears. The bindings must use the case-preserving value
// form and name exactly the declared signals.
func TestHomePage_BindingsMatchDeclaredSignals(t *testing.T) {
	tr := translator(t, "zh")

	var sb strings.Builder
	if err := view.HomePage("zh", tr, nil).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()

	if !strings.Contains(html, `data-signals="{startDate:'',endDate:'',title:'',speaker:''}"`) {
		t.Fatal("declared signals changed; update the binding checks below")
	}
	for _, signal := range []string{"startDate", "endDate", "title", "speaker"} {
		if !strings.Contains(html, `data-bind="`+signal+`"`) {
			t.Errorf("no value-form binding for signal %q", signal)
		}
		if !strings.Contains(html, "$"+signal+"=''") {
			t.Errorf("reset expression does not clear signal %q", signal)
		}
	}
	if strings.Contains(html, "data-bind-") {
		t.Error("attribute-form data-bind-* found; it loses case and binds the wrong signal")
	}
}

func TestLoginPage_RendersError(t *testing.T) {
	tr := translator(t, "zh")

	var sb strings.Builder
	if err := view.LoginPage("zh", tr, "邮箱或密码错误").Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()

	if !strings.Contains(html, `action="/zh/login"`) {
		t.Error("login form action missing")
	}
	if !strings.Contains(html, "邮箱或密码错误") {
		t.Error("error message missing")
	}
}

func TestAdminPage_EditFormPrefilled(t *testing.T) {
	tr := translator(t, "zh")
	user := &domain.User{ID: 1, Email: "admin@example.com", DisplayName: "Admin"}
	editing := &domain.Activity{
		ID:        "A",
		Title:     "人工智能基础入门",
		Speaker:   "张教授",
		Location:  "教学楼A座301室",
		StartTime: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC),
	}

	var sb strings.Builder
	if err := view.AdminPage("zh", tr, user, nil, editing, false, "").Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		`action="/zh/admin/activities/A"`,
		`value="2026-01-15T09:00"`,
		`value="2026-01-15T11:00"`,
		"编辑活动",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("edit form missing %q", want)
		}
	}
}

func TestAdminPage_TableAndActions(t *testing.T) {
	tr := translator(t, "zh")
	user := &domain.User{ID: 1, Email: "admin@example.com"}
	activities := []domain.Activity{{
		ID:        "A",
		Title:     "人工智能基础入门",
		Speaker:   "张教授",
		Location:  "教学楼A座301室",
		StartTime: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC),
	}}

	var sb strings.Builder
	if err := view.AdminPage("zh", tr, user, activities, nil, false, "").Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		"+ 新增活动",
		"?edit=A",
		"/zh/admin/activities/A/delete",
		"确定要删除这个活动吗？此操作无法撤销。",
		"/zh/logout",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("admin table missing %q", want)
		}
	}
}
