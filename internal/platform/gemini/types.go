package gemini

// optionsPromptData is passed to the options prompt template
type optionsPromptData struct {
	// Topic is the localized category phrase, e.g. "con vật"
	Topic string
}

// imagePromptData is passed to the image prompt template
type imagePromptData struct {
	// Subject is the correct answer the illustration must show
	Subject string
}

// OptionsSchema represents the expected structure of the options response
type OptionsSchema struct {
	// Options holds the candidate answers; the first one is the correct answer
	Options []string `json:"options"`
}
