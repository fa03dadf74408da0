package notify

import (
	"fmt"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/line"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
)

// BookingPayload is the notification view of a booking. It doubles as the
// wire shape accepted by the internal /api/notify fan-out endpoint.
type BookingPayload struct {
	UserName  string  `json:"userName"`
	UserEmail string  `json:"userEmail"`
	Service   string  `json:"service"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Notes     string  `json:"notes"`
}

func BookingPayloadFrom(b models.Booking) BookingPayload {
	return BookingPayload{
		UserName:  b.CustomerName,
		UserEmail: b.CustomerEmail,
		Service:   b.Service,
		Price:     b.Price,
		Date:      b.Date,
		Time:      b.Time,
		Address:   b.Address,
		Phone:     b.CustomerPhone,
		Notes:     b.Notes,
	}
}

func detailRow(label, value, color string, bold bool) line.Component {
	valueWeight := ""
	if bold {
		valueWeight = "bold"
	}
	return line.HorizontalBox(
		line.Component{Type: "text", Text: label, Weight: "bold", Flex: 2},
		line.Component{Type: "text", Text: value, Flex: 3, Wrap: true, Color: color, Weight: valueWeight},
	)
}

// BuildBookingMessage assembles the green "new booking" bubble pushed to
// the operator channel.
func BuildBookingMessage(p BookingPayload) line.Message {
	body := []line.Component{
		detailRow("👤 ลูกค้า:", p.UserName, "", false),
		line.Separator("md"),
		detailRow("📧 อีเมล:", p.UserEmail, "#0066CC", false),
		detailRow("🛠️ บริการ:", p.Service, "", false),
		detailRow("💰 ราคา:", fmt.Sprintf("฿%.0f", p.Price), "#FF6B35", true),
		detailRow("📅 วันเวลา:", p.Date+" "+p.Time, "", false),
		detailRow("📍 ที่อยู่:", p.Address, "", false),
		detailRow("📞 เบอร์:", p.Phone, "#0066CC", false),
	}
	if p.Notes != "" {
		body = append(body,
			line.Separator("md"),
			line.Component{Type: "text", Text: "📝 หมายเหตุ:", Weight: "bold", Margin: "md"},
			line.Component{Type: "text", Text: p.Notes, Wrap: true, Color: "#666666", Size: "sm"},
		)
	}

	bubble := &line.Bubble{
		Header: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.Component{
				{Type: "text", Text: "🔔 การจองใหม่!", Weight: "bold", Color: "#1DB446", Size: "lg"},
			},
			BackgroundColor: "#F0F8F0",
		},
		Body: line.VerticalBox(body...),
		Footer: line.VerticalBox(
			line.URIButton("โทรหาลูกค้า", "tel:"+p.Phone, "primary", "#1DB446", ""),
			line.URIButton("ส่งอีเมล", "mailto:"+p.UserEmail, "secondary", "", "sm"),
		),
	}
	return line.NewFlexMessage("การจองใหม่ - New Booking", bubble)
}

// BuildEmergencyMessage assembles the red urgent bubble. The footer carries
// the fixed respond-within-15-minutes directive.
func BuildEmergencyMessage(e models.EmergencyRequest) line.Message {
	bubble := &line.Bubble{
		Header: &line.Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []line.Component{
				{Type: "text", Text: "🚨 EMERGENCY", Weight: "bold", Color: "#FFFFFF", Size: "xl", Align: "center"},
				{Type: "text", Text: "ขอความช่วยเหลือฉุกเฉิน", Color: "#FFFFFF", Size: "md", Align: "center"},
			},
			BackgroundColor: "#FF4444",
			PaddingAll:      "20px",
		},
		Body: line.VerticalBox(
			line.Component{Type: "text", Text: "⚡ ประเภท: " + e.Type, Weight: "bold", Size: "lg", Color: "#FF4444"},
			line.Separator("md"),
			detailRow("👤 ชื่อ:", e.Name, "", false),
			detailRow("📞 เบอร์:", e.Phone, "#0066CC", false),
			detailRow("📍 ที่อยู่:", e.Address, "", false),
			line.Separator("md"),
			line.Component{Type: "text", Text: "📝 รายละเอียด:", Weight: "bold", Margin: "md"},
			line.Component{Type: "text", Text: e.Description, Wrap: true, Color: "#666666"},
		),
		Footer: line.VerticalBox(
			line.URIButton("🚨 โทรด่วน", "tel:"+e.Phone, "primary", "#FF4444", ""),
			line.Component{Type: "text", Text: "⏰ กรุณาติดต่อภายใน 15 นาที", Align: "center", Color: "#FF4444", Weight: "bold", Margin: "md"},
		),
	}
	return line.NewFlexMessage("🚨 EMERGENCY REQUEST - ขอความช่วยเหลือฉุกเฉิน", bubble)
}
