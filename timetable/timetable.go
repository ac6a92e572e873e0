package timetable

import (
	"fmt"
	"time"

	"github.com/artem-streltsov/esmeralde-bot/utils"
)

const baseURL = "https://edt.iut-orsay.fr/vue_invite_horizontale.php"

const (
	viewWidth  = 1920
	viewHeight = 1200
)

// Link builds the horizontal timetable view of a group for the week containing now.
// The year is the calendar year of now, not the ISO week-numbering year.
// siteGroupID goes into the query unescaped, only double quotes are dropped.
func Link(siteGroupID string, now time.Time) string {
	id := utils.RemoveChars(siteGroupID, '"')
	_, week := now.ISOWeek()

	return fmt.Sprintf("%s?current_year=%d&current_week=%d&groupes_multi%%5B%%5D=%s&lar=%d&hau=%d",
		baseURL, now.Year(), week, id, viewWidth, viewHeight)
}
