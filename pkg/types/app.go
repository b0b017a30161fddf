package types

import "encoding/json"

// AppInfo is the reply of GET /info.
type AppInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Mode        string   `json:"mode"`
	AuthorName  string   `json:"author_name"`
}

// Toggle is a feature switch in app parameters.
type Toggle struct {
	Enabled bool `json:"enabled"`
}

// TextToSpeechSettings configures speech output.
type TextToSpeechSettings struct {
	Enabled  bool   `json:"enabled"`
	Voice    string `json:"voice,omitempty"`
	Language string `json:"language,omitempty"`
	AutoPlay string `json:"autoPlay,omitempty"`
}

// FileUploadSettings describes which files an app accepts.
type FileUploadSettings struct {
	Image struct {
		Enabled         bool             `json:"enabled"`
		NumberLimits    int              `json:"number_limits"`
		Detail          string           `json:"detail,omitempty"`
		TransferMethods []TransferMethod `json:"transfer_methods"`
	} `json:"image"`
	Enabled                  bool             `json:"enabled,omitempty"`
	AllowedFileTypes         []FileType       `json:"allowed_file_types,omitempty"`
	AllowedFileExtensions    []string         `json:"allowed_file_extensions,omitempty"`
	AllowedFileUploadMethods []TransferMethod `json:"allowed_file_upload_methods,omitempty"`
	NumberLimits             int              `json:"number_limits,omitempty"`
}

// SystemParameters are the server side upload limits, in MB.
type SystemParameters struct {
	FileSizeLimit           int `json:"file_size_limit"`
	ImageFileSizeLimit      int `json:"image_file_size_limit"`
	AudioFileSizeLimit      int `json:"audio_file_size_limit"`
	VideoFileSizeLimit      int `json:"video_file_size_limit"`
	WorkflowFileUploadLimit int `json:"workflow_file_upload_limit"`
}

// InputField is one control of the app's input form.
type InputField struct {
	// Type is the control kind: text-input, paragraph, select, number,
	// file or file-list.
	Type      string   `json:"-"`
	Label     string   `json:"label"`
	Variable  string   `json:"variable"`
	Required  bool     `json:"required"`
	MaxLength int      `json:"max_length,omitempty"`
	Default   JSON     `json:"default,omitempty"`
	Options   []string `json:"options,omitempty"`
}

// UserInputForm is the ordered list of input controls. Dify encodes each
// control as a single-key object naming its type.
type UserInputForm []InputField

// UnmarshalJSON implements json.Unmarshaler.
func (f *UserInputForm) UnmarshalJSON(data []byte) error {
	var raw []map[string]InputField
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(UserInputForm, 0, len(raw))
	for _, item := range raw {
		for kind, field := range item {
			field.Type = kind
			out = append(out, field)
		}
	}
	*f = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f UserInputForm) MarshalJSON() ([]byte, error) {
	raw := make([]map[string]InputField, 0, len(f))
	for _, field := range f {
		raw = append(raw, map[string]InputField{field.Type: field})
	}
	return json.Marshal(raw)
}

// Required returns the variables that must be present in inputs.
func (f UserInputForm) Required() []string {
	var names []string
	for _, field := range f {
		if field.Required {
			names = append(names, field.Variable)
		}
	}
	return names
}

// AppParameters is the reply of GET /parameters.
type AppParameters struct {
	OpeningStatement              string               `json:"opening_statement"`
	SuggestedQuestions            []string             `json:"suggested_questions"`
	SuggestedQuestionsAfterAnswer Toggle               `json:"suggested_questions_after_answer"`
	SpeechToText                  Toggle               `json:"speech_to_text"`
	TextToSpeech                  TextToSpeechSettings `json:"text_to_speech"`
	RetrieverResource             Toggle               `json:"retriever_resource"`
	AnnotationReply               Toggle               `json:"annotation_reply"`
	MoreLikeThis                  Toggle               `json:"more_like_this"`
	SensitiveWordAvoidance        Toggle               `json:"sensitive_word_avoidance"`
	UserInputForm                 UserInputForm        `json:"user_input_form"`
	FileUpload                    FileUploadSettings   `json:"file_upload"`
	SystemParameters              SystemParameters     `json:"system_parameters"`
}

// ToolIcon is either an icon URL or an emoji with a background color.
type ToolIcon struct {
	URL        string `json:"-"`
	Background string `json:"background,omitempty"`
	Content    string `json:"content,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *ToolIcon) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &i.URL)
	}
	type plain ToolIcon
	return json.Unmarshal(data, (*plain)(i))
}

// AppMeta is the reply of GET /meta.
type AppMeta struct {
	ToolIcons map[string]ToolIcon `json:"tool_icons"`
}

// AppSite is the reply of GET /site, the WebApp settings.
type AppSite struct {
	Title                  string `json:"title"`
	ChatColorTheme         string `json:"chat_color_theme"`
	ChatColorThemeInverted bool   `json:"chat_color_theme_inverted"`
	IconType               string `json:"icon_type"`
	Icon                   string `json:"icon"`
	IconBackground         string `json:"icon_background"`
	IconURL                string `json:"icon_url"`
	Description            string `json:"description"`
	Copyright              string `json:"copyright"`
	PrivacyPolicy          string `json:"privacy_policy"`
	CustomDisclaimer       string `json:"custom_disclaimer"`
	DefaultLanguage        string `json:"default_language"`
	ShowWorkflowSteps      bool   `json:"show_workflow_steps"`
	UseIconAsAnswerIcon    bool   `json:"use_icon_as_answer_icon"`
}
