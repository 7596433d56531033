package panel

const (
	noticeEmptyPrompt = "empty_prompt"
	noticeCancelled   = "cancelled"
)

var notices = map[string]map[string]string{
	"en": {
		noticeEmptyPrompt: "prompt is required",
		noticeCancelled:   "request cancelled",
	},
	"id": {
		noticeEmptyPrompt: "prompt wajib diisi",
		noticeCancelled:   "permintaan dibatalkan",
	},
}

func notice(locale, key string) string {
	if m, ok := notices[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return notices["en"][key]
}
