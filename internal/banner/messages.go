package banner

// Messages is the fixed greeting text drawn for one language.
type Messages struct {
	Title   string
	Message string
	From    string
}

var birthdayMessages = map[Language]Messages{
	English: {
		Title:   "Happy Birthday",
		Message: "Wishing you a wonderful birthday filled with joy and happiness!",
		From:    "With warm wishes from",
	},
	Hindi: {
		Title:   "जन्मदिन मुबारक",
		Message: "आपको खुशियों और समृद्धि से भरा जन्मदिन की शुभकामनाएं!",
		From:    "हार्दिक शुभकामनाओं के साथ",
	},
	Marathi: {
		Title:   "वाढदिवसाच्या शुभेच्छा",
		Message: "तुम्हाला आनंद आणि समृद्धीने भरलेला वाढदिवस लाभो!",
		From:    "शुभेच्छांसह",
	},
}

// MessagesFor returns the greeting text for lang.
func MessagesFor(lang Language) (Messages, bool) {
	m, ok := birthdayMessages[lang]
	return m, ok
}
