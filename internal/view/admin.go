package view

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/yunxiao-dev/teachboard/internal/domain"
	"github.com/yunxiao-dev/teachboard/internal/i18n"
)

const inputTimeLayout = "2006-01-02T15:04"

// AdminPage renders the activity management panel: the activity table, or
// the create/edit form when editing is non-nil or showForm is set. errMsg is
// an already-localized message shown inline, or empty.
func AdminPage(locale string, t T, user *domain.User, activities []domain.Activity, editing *domain.Activity, showForm bool, errMsg string) templ.Component {
	return component(func(b *buf) {
		layout(b, locale, t, t("admin.title"), "/admin", false, func(b *buf) {
			b.raw(`<div style="display:flex;justify-content:space-between;align-items:center"><div><h1>`)
			b.esc(t("admin.activityManagement"))
			b.raw(`</h1><p class="muted">`)
			b.esc(t("admin.activityManagementDesc"))
			b.raw(`</p><p class="muted">`)
			b.esc(fmt.Sprintf(t("admin.welcome"), user.Email))
			b.raw(`</p></div><div>`)
			if !showForm && editing == nil {
				b.rawf(`<a class="btn" href="/%s/admin?new=1">`, attr(locale))
				b.esc(t("admin.addActivity"))
				b.raw(`</a> `)
			}
			b.rawf(`<form method="post" action="/%s/logout" style="display:inline"><button type="submit" class="danger">`, attr(locale))
			b.esc(t("common.logout"))
			b.raw(`</button></form></div></div>`)

			if errMsg != "" {
				b.raw(`<div class="error">`)
				b.esc(errMsg)
				b.raw(`</div>`)
			}

			if showForm || editing != nil {
				activityForm(b, locale, t, editing)
			} else {
				activityTable(b, locale, t, activities)
			}
		})
	})
}

func activityForm(b *buf, locale string, t T, editing *domain.Activity) {
	heading := t("admin.newActivity")
	action := fmt.Sprintf("/%s/admin/activities", attr(locale))
	a := &domain.Activity{}
	if editing != nil {
		heading = t("admin.editActivity")
		action = fmt.Sprintf("/%s/admin/activities/%s", attr(locale), attr(editing.ID))
		a = editing
	}

	b.raw(`<div class="card"><h2>`)
	b.esc(heading)
	b.rawf(`</h2><form method="post" action="%s">`, action)

	textField(b, "title", t("activity.title"), a.Title, true)

	start, end := "", ""
	if !a.StartTime.IsZero() {
		start = a.StartTime.Format(inputTimeLayout)
	}
	if !a.EndTime.IsZero() {
		end = a.EndTime.Format(inputTimeLayout)
	}
	datetimeField(b, "start_time", t("activity.startTime"), start)
	datetimeField(b, "end_time", t("activity.endTime"), end)

	textField(b, "location", t("activity.location"), a.Location, true)
	textField(b, "speaker", t("activity.speaker"), a.Speaker, true)

	b.raw(`<div style="margin-bottom:1rem"><label for="description">`)
	b.esc(t("activity.description"))
	b.raw(`</label><textarea id="description" name="description" rows="3">`)
	b.esc(a.Description)
	b.raw(`</textarea></div>`)

	b.raw(`<button type="submit">`)
	b.esc(t("admin.save"))
	b.rawf(`</button> <a class="btn secondary" href="/%s/admin">`, attr(locale))
	b.esc(t("admin.cancel"))
	b.raw(`</a></form></div>`)
}

func textField(b *buf, name, label, value string, required bool) {
	b.rawf(`<div style="margin-bottom:1rem"><label for="%s">`, attr(name))
	b.esc(label)
	b.rawf(`</label><input type="text" id="%s" name="%s" value="%s"`, attr(name), attr(name), attr(value))
	if required {
		b.raw(` required`)
	}
	b.raw(`></div>`)
}

func datetimeField(b *buf, name, label, value string) {
	b.rawf(`<div style="margin-bottom:1rem"><label for="%s">`, attr(name))
	b.esc(label)
	b.rawf(`</label><input type="datetime-local" id="%s" name="%s" value="%s" required></div>`, attr(name), attr(name), attr(value))
}

func activityTable(b *buf, locale string, t T, activities []domain.Activity) {
	b.raw(`<div class="card" style="padding:0"><table><thead><tr><th>`)
	b.esc(t("activity.title"))
	b.raw(`</th><th>`)
	b.esc(t("activity.startTime"))
	b.raw(`</th><th>`)
	b.esc(t("activity.location"))
	b.raw(`</th><th>`)
	b.esc(t("activity.speaker"))
	b.raw(`</th><th>`)
	b.esc(t("admin.actions"))
	b.raw(`</th></tr></thead><tbody>`)

	for _, a := range activities {
		b.raw(`<tr><td>`)
		b.esc(a.Title)
		b.raw(`</td><td>`)
		b.esc(i18n.FormatTimeRange(a.StartTime, a.EndTime, locale))
		b.raw(`</td><td>`)
		b.esc(a.Location)
		b.raw(`</td><td>`)
		b.esc(a.Speaker)
		b.raw(`</td><td>`)
		b.rawf(`<a href="/%s/admin?edit=%s">`, attr(locale), attr(a.ID))
		b.esc(t("admin.edit"))
		b.raw(`</a> `)
		// Delete goes through an explicit confirmation dialog.
		b.rawf(`<form method="post" action="/%s/admin/activities/%s/delete" style="display:inline" onsubmit="return confirm('%s')">`,
			attr(locale), attr(a.ID), attr(t("admin.deleteConfirm")))
		b.raw(`<button type="submit" class="danger">`)
		b.esc(t("admin.delete"))
		b.raw(`</button></form></td></tr>`)
	}

	b.raw(`</tbody></table></div>`)
}
