package line

// Flex message document types, limited to the subset of the LINE flex
// vocabulary the notification and webhook replies use.

type Message struct {
	Type     string  `json:"type"`
	Text     string  `json:"text,omitempty"`
	AltText  string  `json:"altText,omitempty"`
	Contents *Bubble `json:"contents,omitempty"`
}

type Bubble struct {
	Type   string `json:"type"`
	Header *Box   `json:"header,omitempty"`
	Body   *Box   `json:"body,omitempty"`
	Footer *Box   `json:"footer,omitempty"`
}

type Box struct {
	Type            string      `json:"type"`
	Layout          string      `json:"layout"`
	Contents        []Component `json:"contents"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	PaddingAll      string      `json:"paddingAll,omitempty"`
	Margin          string      `json:"margin,omitempty"`
}

// Component covers text, button, separator and nested box nodes. Type
// decides which of the remaining fields the platform reads.
type Component struct {
	Type            string      `json:"type"`
	Layout          string      `json:"layout,omitempty"`
	Contents        []Component `json:"contents,omitempty"`
	Text            string      `json:"text,omitempty"`
	Weight          string      `json:"weight,omitempty"`
	Color           string      `json:"color,omitempty"`
	Size            string      `json:"size,omitempty"`
	Align           string      `json:"align,omitempty"`
	Margin          string      `json:"margin,omitempty"`
	Flex            int         `json:"flex,omitempty"`
	Wrap            bool        `json:"wrap,omitempty"`
	Style           string      `json:"style,omitempty"`
	Action          *Action     `json:"action,omitempty"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
}

type Action struct {
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
	URI   string `json:"uri,omitempty"`
}

func NewTextMessage(text string) Message {
	return Message{Type: "text", Text: text}
}

func NewFlexMessage(altText string, bubble *Bubble) Message {
	bubble.Type = "bubble"
	return Message{Type: "flex", AltText: altText, Contents: bubble}
}

func VerticalBox(contents ...Component) *Box {
	return &Box{Type: "box", Layout: "vertical", Contents: contents}
}

func HorizontalBox(contents ...Component) Component {
	return Component{Type: "box", Layout: "horizontal", Contents: contents}
}

func Separator(margin string) Component {
	return Component{Type: "separator", Margin: margin}
}

func URIButton(label, uri, style, color, margin string) Component {
	return Component{
		Type:   "button",
		Style:  style,
		Color:  color,
		Margin: margin,
		Action: &Action{Type: "uri", Label: label, URI: uri},
	}
}
