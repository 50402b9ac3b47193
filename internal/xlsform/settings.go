package xlsform

// SettingsColumns is the exact, fixed column order of the settings sheet.
var SettingsColumns = []string{
	"form_id", "form_title", "default_language", "instance_name", "style", "version",
}

// Settings is the single-row settings sheet.
type Settings struct {
	FormID          string
	FormTitle       string
	DefaultLanguage string
	InstanceName    string
	Style           string
	Version         string
}

// Cells returns the row's cell values in SettingsColumns order.
func (s Settings) Cells() []string {
	return []string{s.FormID, s.FormTitle, s.DefaultLanguage, s.InstanceName, s.Style, s.Version}
}
