package filler

// Options holds the localized literals and naming rules of generated documents.
type Options struct {
	// Placeholder marks where an answer is inserted.
	Placeholder string `yaml:"placeholder"`
	// NotSpecified replaces placeholders left without an answer.
	NotSpecified string `yaml:"not_specified"`
	// NameField is the answer key naming the respondent.
	NameField string `yaml:"name_field"`
	// FallbackName is a fmt pattern receiving the 1-based respondent ordinal,
	// used when NameField is absent.
	FallbackName string `yaml:"fallback_name"`
	// FilePrefix starts every output file name.
	FilePrefix string `yaml:"file_prefix"`
	// Extension ends every output file name.
	Extension string `yaml:"extension"`
	// AutoTemplateName is the file name of a synthesized template.
	AutoTemplateName string `yaml:"auto_template_name"`
	// Title heads a synthesized template.
	Title string `yaml:"title"`
	// TitleSizePt is the title font size in points.
	TitleSizePt float64 `yaml:"title_size_pt"`
	// AnswerLabel precedes the placeholder in a synthesized template.
	AnswerLabel string `yaml:"answer_label"`
}

// DefaultOptions returns the literals of the survey certificate documents.
func DefaultOptions() Options {
	return Options{
		Placeholder:      "[ОТВЕТ]",
		NotSpecified:     "Не указано",
		NameField:        "ФИО",
		FallbackName:     "Студент_%d",
		FilePrefix:       "справка",
		Extension:        ".docx",
		AutoTemplateName: "template_auto.docx",
		Title:            "СПРАВКА О ПРОХОЖДЕНИИ ОПРОСА",
		TitleSizePt:      16,
		AnswerLabel:      "Ответ: ",
	}
}
