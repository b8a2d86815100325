package domain

import "fmt"

// FormatDate renders d as 2000年5月15日 (no zero padding).
func FormatDate(d BirthDate) string {
	return fmt.Sprintf("%d年%d月%d日", d.Year(), d.Month(), d.Day())
}

// TypeName is the card heading for a, e.g. 【太陽のライオン】タイプ.
func TypeName(a Archetype) string {
	return "【" + a.Title + "】タイプ"
}

// FormatMessage builds the share message used for the on-screen preview and
// the pre-filled LINE message.
func FormatMessage(a Archetype, d BirthDate) string {
	return fmt.Sprintf("診断結果：【%s】\n生年月日：%s\n\n金運開花の秘訣を詳しく教えてください！",
		a.Title, FormatDate(d))
}
