package faq

// NoneLabel is the classifier label for prompts that match no catalog entry.
const NoneLabel = "none"

// Entry is a single canned FAQ answer with the phrasings that identify it.
type Entry struct {
	ID              string   `json:"id" yaml:"id"`
	QuestionPhrases []string `json:"questionPhrases" yaml:"questionPhrases"`
	Answer          string   `json:"answer" yaml:"answer"`
}

// UserInfo carries optional contact details supplied with a request.
type UserInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Request is the payload accepted by the generate endpoint.
type Request struct {
	Prompt    string    `json:"prompt"`
	UserInfo  *UserInfo `json:"userInfo,omitempty"`
	SessionID string    `json:"sessionId,omitempty"`
}

// Response is returned to the HTTP transport.
type Response struct {
	Text string `json:"text"`
}
