package webhook

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/line"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/metrics"
)

// Reply kinds, also the priority order of the keyword scan.
const (
	KindBooking   = "booking"
	KindEmergency = "emergency"
	KindPrice     = "price"
	KindGreeting  = "greeting"
	KindDefault   = "default"
)

// Responder answers inbound chat messages with a templated reply chosen by
// keyword. The first rule whose keyword appears in the message wins.
type Responder struct {
	Client       *line.Client
	BaseURL      string
	ContactPhone string
	Logger       zerolog.Logger
	Metrics      *metrics.Metrics
}

type rule struct {
	kind     string
	keywords []string
	build    func(r *Responder) line.Message
}

var rules = []rule{
	{KindBooking, []string{"จอง", "booking"}, (*Responder).bookingReply},
	{KindEmergency, []string{"ฉุกเฉิน", "emergency"}, (*Responder).emergencyReply},
	{KindPrice, []string{"ราคา", "price"}, (*Responder).priceReply},
	{KindGreeting, []string{"สวัสดี", "hello", "hi"}, (*Responder).greetingReply},
}

// SelectReply picks the reply for a message text. Matching is
// case-insensitive and first-match-wins in rule order; anything
// unrecognized gets the default menu.
func (r *Responder) SelectReply(text string) (string, line.Message) {
	lowered := strings.ToLower(text)
	for _, rl := range rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lowered, kw) {
				return rl.kind, rl.build(r)
			}
		}
	}
	return KindDefault, r.defaultReply()
}

// HandleEvents replies to every text message event in the batch. The first
// delivery error aborts the batch and is returned to the HTTP layer.
func (r *Responder) HandleEvents(ctx context.Context, events []line.Event) error {
	for _, ev := range events {
		if ev.Type != "message" || ev.Message.Type != "text" {
			continue
		}
		kind, msg := r.SelectReply(ev.Message.Text)
		if r.Client == nil || r.Client.Token == "" {
			r.Logger.Debug().Str("kind", kind).Msg("line channel not configured, reply skipped")
			continue
		}
		if err := r.Client.Reply(ctx, ev.ReplyToken, []line.Message{msg}); err != nil {
			r.Logger.Error().Err(err).Str("kind", kind).Msg("webhook reply failed")
			return err
		}
		if r.Metrics != nil {
			r.Metrics.WebhookReplies.WithLabelValues(kind).Inc()
		}
		r.Logger.Info().Str("kind", kind).Str("user_id", ev.Source.UserID).Msg("webhook reply sent")
	}
	return nil
}

func (r *Responder) bookingReply() line.Message {
	bubble := &line.Bubble{
		Header: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.Component{
				{Type: "text", Text: "📅 จองบริการ", Weight: "bold", Color: "#1DB446", Size: "lg"},
			},
			BackgroundColor: "#F0F8F0",
		},
		Body: line.VerticalBox(
			line.Component{Type: "text", Text: "เลือกวิธีการจองบริการ:", Wrap: true, Margin: "md"},
		),
		Footer: line.VerticalBox(
			line.URIButton("จองออนไลน์", r.BaseURL+"/booking", "primary", "#1DB446", ""),
			line.URIButton("โทรจอง", "tel:"+r.ContactPhone, "secondary", "", "sm"),
		),
	}
	return line.NewFlexMessage("การจองบริการ - Service Booking", bubble)
}

func (r *Responder) emergencyReply() line.Message {
	bubble := &line.Bubble{
		Header: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.Component{
				{Type: "text", Text: "🚨 EMERGENCY", Weight: "bold", Color: "#FFFFFF", Size: "xl", Align: "center"},
			},
			BackgroundColor: "#FF4444",
		},
		Body: line.VerticalBox(
			line.Component{Type: "text", Text: "สำหรับเหตุฉุกเฉิน กรุณาเลือก:", Wrap: true},
		),
		Footer: line.VerticalBox(
			line.URIButton("🚨 โทรด่วน", "tel:"+r.ContactPhone, "primary", "#FF4444", ""),
			line.URIButton("แจ้งออนไลน์", r.BaseURL+"/emergency", "secondary", "", "sm"),
		),
	}
	return line.NewFlexMessage("🚨 Emergency Service", bubble)
}

func (r *Responder) priceReply() line.Message {
	bubble := &line.Bubble{
		Header: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.Component{
				{Type: "text", Text: "💰 ราคาบริการ", Weight: "bold", Color: "#1DB446", Size: "lg"},
			},
		},
		Body: line.VerticalBox(
			line.Component{Type: "text", Text: "🔧 ซ่อมแอร์: ฿800", Margin: "md"},
			line.Component{Type: "text", Text: "🧽 ล้างแอร์: ฿500", Margin: "sm"},
			line.Component{Type: "text", Text: "⚡ ซ่อมไฟฟ้า: ฿600", Margin: "sm"},
			line.Component{Type: "text", Text: "🚰 ซ่อมประปา: ฿700", Margin: "sm"},
			line.Component{Type: "text", Text: "☀️ ล้างโซล่าเซล: ฿1200", Margin: "sm"},
		),
		Footer: line.VerticalBox(
			line.URIButton("ดูรายละเอียดเพิ่มเติม", r.BaseURL+"/#services", "primary", "", ""),
		),
	}
	return line.NewFlexMessage("💰 ราคาบริการ - Service Prices", bubble)
}

func (r *Responder) greetingReply() line.Message {
	bubble := &line.Bubble{
		Header: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.Component{
				{Type: "text", Text: "👋 สวัสดีครับ!", Weight: "bold", Color: "#1DB446", Size: "lg"},
			},
		},
		Body: line.VerticalBox(
			line.Component{Type: "text", Text: "ยินดีต้อนรับสู่บริการของเรา! เราให้บริการ:", Wrap: true},
			line.Component{Type: "text", Text: "• ซ่อมแอร์และเครื่องใช้ไฟฟ้า", Margin: "md", Size: "sm"},
			line.Component{Type: "text", Text: "• ซ่อมไฟฟ้าและประปา", Margin: "sm", Size: "sm"},
			line.Component{Type: "text", Text: "• ล้างและบำรุงรักษาโซล่าเซล", Margin: "sm", Size: "sm"},
			line.Component{Type: "text", Text: "• บริการฉุกเฉิน 24/7", Margin: "sm", Size: "sm"},
		),
		Footer: line.VerticalBox(
			line.URIButton("เยี่ยมชมเว็บไซต์", r.BaseURL, "primary", "", ""),
		),
	}
	return line.NewFlexMessage("Welcome to Our Service", bubble)
}

func (r *Responder) defaultReply() line.Message {
	text := "สวัสดีครับ! 👋\n\n" +
		"ขอบคุณที่ติดต่อเรา เราให้บริการ:\n\n" +
		"🔧 จองบริการ - พิมพ์ \"จอง\"\n" +
		"🚨 เหตุฉุกเฉิน - พิมพ์ \"ฉุกเฉิน\"\n" +
		"💰 สอบถามราคา - พิมพ์ \"ราคา\"\n" +
		"📞 โทรสอบถาม: " + r.ContactPhone + "\n\n" +
		"หรือเยี่ยมชมเว็บไซต์: " + r.BaseURL
	return line.NewTextMessage(text)
}
